package proxy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/strait-net/strait/internal/socks5"
)

// SOCKS5Server serves SOCKS5 CONNECT requests through the same dialer and
// relay as the HTTP tunnel server. Only the CONNECT command is supported.
type SOCKS5Server struct {
	ctx     context.Context
	cfg     Config
	auth    socks5.Auth
	verbose bool
}

func NewSOCKS5Server(ctx context.Context, cfg Config, auth socks5.Auth, verbose bool) *SOCKS5Server {
	if ctx == nil {
		ctx = context.Background()
	}
	return &SOCKS5Server{ctx: ctx, cfg: cfg, auth: auth, verbose: verbose}
}

// Serve accepts connections on ln until the listener is closed.
func (s *SOCKS5Server) Serve(ln net.Listener) error {
	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("accept: %w", err)
			}
			log.Printf("socks5: accept error: %v", err)
			time.Sleep(5 * time.Millisecond)
			continue
		}

		go func() {
			if err := s.handle(c); err != nil {
				connectionErrorsTotal.WithLabelValues(string(Classify(err))).Inc()
				if s.verbose {
					log.Printf("socks5: connection error: %v", err)
				}
			}
		}()
	}
}

func (s *SOCKS5Server) handle(conn net.Conn) error {
	defer conn.Close()
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	activeConnections.Inc()
	defer activeConnections.Dec()

	if s.cfg.NegotiationTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.cfg.NegotiationTimeout))
	}

	if err := socks5.ServerNegotiate(conn, s.auth); err != nil {
		return connError(KindHandshake, err)
	}

	req, err := socks5.ServerReadRequest(conn)
	if err != nil {
		return connError(KindParse, err)
	}
	if req.Cmd != socks5.CmdConnect {
		socks5.WriteCommandNotSupportedReply(conn, req.Atyp)
		return connError(KindParse, fmt.Errorf("unsupported command: %d", req.Cmd))
	}

	connectionsTotal.WithLabelValues("socks5").Inc()

	origin, err := s.cfg.Dialer.DialContext(ctx, "tcp", req.Address())
	if err != nil {
		socks5.WriteConnectionRefusedReply(conn, req.Atyp)
		return connError(KindDial, fmt.Errorf("origin %s unreachable: %w", req.Address(), err))
	}

	if err := socks5.WriteSuccessReply(conn, origin.LocalAddr()); err != nil {
		_ = origin.Close()
		return connError(KindHandshake, err)
	}

	if s.cfg.NegotiationTimeout > 0 {
		_ = conn.SetDeadline(time.Time{})
	}

	start := time.Now()
	err = CopyBidirectional(ctx, conn, origin, s.cfg.IOTimeout)
	relayDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return connError(KindRelay, err)
	}
	return nil
}
