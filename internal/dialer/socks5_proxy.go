package dialer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/strait-net/strait/internal/socks5"
)

// SOCKS5ProxyDialer dials outbound TCP connections via an upstream SOCKS5
// proxy, using the direct dialer to reach the proxy itself so DialTimeout
// and keepalive settings apply.
type SOCKS5ProxyDialer struct {
	cfg       Config
	proxyAddr string
	auth      socks5.Auth
	direct    Dialer
}

func NewSOCKS5ProxyDialer(cfg Config, proxyAddr string, auth socks5.Auth) Dialer {
	return &SOCKS5ProxyDialer{
		cfg:       cfg,
		proxyAddr: proxyAddr,
		auth:      auth,
		direct:    NewDirectDialer(cfg),
	}
}

// DialContext connects to the proxy and negotiates a SOCKS5 CONNECT to
// address. If NegotiationTimeout is set, a deadline covers the negotiation
// and is cleared before returning.
func (d *SOCKS5ProxyDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if network != "tcp" {
		return nil, fmt.Errorf("socks5 proxy dial %s %s: unsupported network", network, address)
	}

	c, err := d.direct.DialContext(ctx, network, d.proxyAddr)
	if err != nil {
		return nil, fmt.Errorf("socks5 proxy: %w", err)
	}

	if d.cfg.NegotiationTimeout > 0 {
		_ = c.SetDeadline(time.Now().Add(d.cfg.NegotiationTimeout))
	}

	if err := socks5.ClientDial(c, d.auth, address); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("socks5 proxy dial %s %s: %w", network, address, err)
	}

	if d.cfg.NegotiationTimeout > 0 {
		_ = c.SetDeadline(time.Time{})
	}
	return c, nil
}
