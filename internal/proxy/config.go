package proxy

import (
	"net"
	"time"

	"github.com/strait-net/strait/internal/dialer"
)

type Config struct {
	// NegotiationTimeout bounds the initial request read and any protocol
	// negotiation before relay starts. Zero disables the deadline.
	NegotiationTimeout time.Duration

	// IOTimeout is an absolute deadline applied to both sides of a relay.
	// Zero means the relay may run indefinitely.
	IOTimeout time.Duration

	KeepAlive net.KeepAliveConfig

	Dialer dialer.Dialer
}
