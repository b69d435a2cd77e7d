package proxy

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Target is a resolved origin address.
type Target struct {
	Host string
	Port int
}

// Addr returns the host:port form suitable for dialing.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// ResolveTarget turns a parsed request into a dialable Target.
//
// CONNECT targets must be a literal host:port pair; no port is defaulted.
// All other methods carry an absolute URL whose port defaults from the
// scheme when not explicit.
func ResolveTarget(req *Request) (Target, error) {
	if req.Method == MethodConnect {
		return resolveConnectTarget(req.Target)
	}
	return resolveURLTarget(req.Target)
}

func resolveURLTarget(target string) (Target, error) {
	u, err := url.Parse(target)
	if err != nil {
		return Target{}, fmt.Errorf("malformed url %q: %w", target, err)
	}
	if u.Scheme == "" {
		return Target{}, fmt.Errorf("relative url %q", target)
	}

	host := u.Hostname()
	if host == "" {
		return Target{}, errMissingHost
	}

	if p := u.Port(); p != "" {
		port, err := parsePort(p)
		if err != nil {
			return Target{}, err
		}
		return Target{Host: host, Port: port}, nil
	}

	port := defaultPortForScheme(u.Scheme)
	if port == 0 {
		return Target{}, fmt.Errorf("no default port for scheme %q", u.Scheme)
	}
	return Target{Host: host, Port: port}, nil
}

func resolveConnectTarget(target string) (Target, error) {
	host, portStr, found := strings.Cut(target, ":")
	if !found || portStr == "" {
		return Target{}, errMissingPort
	}
	if host == "" {
		return Target{}, errMissingHost
	}
	port, err := parsePort(portStr)
	if err != nil {
		return Target{}, err
	}
	return Target{Host: host, Port: port}, nil
}

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	return n, nil
}

func defaultPortForScheme(scheme string) int {
	switch strings.ToLower(scheme) {
	case "http", "ws":
		return 80
	case "https", "wss":
		return 443
	case "ftp":
		return 21
	default:
		return 0
	}
}
