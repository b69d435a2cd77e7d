package socks5

// Package socks5 provides the small, shared SOCKS5 handshake layer used by
// strait.
//
// It wraps the low-level protocol types in github.com/txthinking/socks5 so
// negotiation and CONNECT parsing/writing live in one place, shared between
// the SOCKS5 listener in internal/proxy and the SOCKS5 upstream dialer in
// internal/dialer. It is not a full SOCKS5 implementation; only what strait
// needs is exposed.
