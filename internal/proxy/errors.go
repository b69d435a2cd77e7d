package proxy

import (
	"errors"
)

// Kind classifies where in a connection's lifecycle a failure occurred.
// It is the structured outcome consumed by logging and metrics; every kind
// is terminal for its connection and never affects the listener.
type Kind string

const (
	KindRead      Kind = "read"
	KindParse     Kind = "parse"
	KindResolve   Kind = "resolve"
	KindDial      Kind = "dial"
	KindHandshake Kind = "handshake"
	KindRelay     Kind = "relay"
)

// ConnError wraps a per-connection failure with its Kind.
type ConnError struct {
	Kind Kind
	Err  error
}

func (e *ConnError) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *ConnError) Unwrap() error {
	return e.Err
}

func connError(kind Kind, err error) *ConnError {
	return &ConnError{Kind: kind, Err: err}
}

// Classify returns the Kind recorded on err, or KindRead if err carries
// none (a bare read error from before parsing started).
func Classify(err error) Kind {
	var ce *ConnError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindRead
}

var (
	errMissingRequestLine = errors.New("missing request line")
	errMissingMethod      = errors.New("missing method")
	errMissingTarget      = errors.New("missing target")
	errMissingHost        = errors.New("missing host")
	errMissingPort        = errors.New("missing port")
)
