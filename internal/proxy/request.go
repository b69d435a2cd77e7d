package proxy

import (
	"bytes"
	"fmt"
	"strings"
)

// initialReadSize bounds the single read used to capture the request line.
// A line not terminated within this many bytes is a parse failure, not
// something we re-read around.
const initialReadSize = 4096

// Method is an HTTP method from the request line, matched case-sensitively.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodConnect Method = "CONNECT"
)

var knownMethods = map[Method]bool{
	MethodGet:     true,
	MethodPost:    true,
	MethodPut:     true,
	MethodDelete:  true,
	MethodHead:    true,
	MethodOptions: true,
	MethodConnect: true,
}

// Request is the parsed first line of an accepted connection's initial read.
// Raw holds the initial bytes verbatim; plain-HTTP forwarding replays them
// to the origin unmodified.
type Request struct {
	Method Method
	Target string
	Raw    []byte
}

// ParseRequest extracts the method and target from the first
// CRLF-terminated line of raw. It never mutates raw.
func ParseRequest(raw []byte) (*Request, error) {
	head, _, found := bytes.Cut(raw, []byte("\r\n"))
	if !found {
		return nil, errMissingRequestLine
	}

	line := string(head)

	method, rest, found := strings.Cut(line, " ")
	if method == "" {
		return nil, errMissingMethod
	}
	if !found {
		return nil, errMissingTarget
	}
	target, _, _ := strings.Cut(rest, " ")
	if target == "" {
		return nil, errMissingTarget
	}

	m := Method(method)
	if !knownMethods[m] {
		return nil, fmt.Errorf("unknown method %q", method)
	}

	return &Request{Method: m, Target: target, Raw: raw}, nil
}
