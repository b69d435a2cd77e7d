package dialer

// Package dialer provides the outbound dialing implementations used by
// strait.
//
// Dialers implement a small interface (DialContext) and are used by the
// proxy listeners to reach origins either directly or through an upstream
// proxy (HTTP CONNECT or SOCKS5).
