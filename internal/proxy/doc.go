package proxy

// Package proxy implements the strait listener-side servers and helpers.
//
// It contains the HTTP tunnel server (CONNECT tunneling and plain-HTTP
// forwarding driven by a raw first-line parse), the SOCKS5 server, and
// shared connection plumbing such as keepalive listeners and bidirectional
// copy.
