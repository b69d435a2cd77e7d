package proxy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"
)

// HTTPTunnelServer serves a forward HTTP proxy over a raw accept loop.
//
// Each accepted connection is parsed, resolved, tunneled, and relayed
// independently; no failure escalates past its own connection.
type HTTPTunnelServer struct {
	ctx     context.Context
	cfg     Config
	verbose bool
}

func NewHTTPTunnelServer(ctx context.Context, cfg Config, verbose bool) *HTTPTunnelServer {
	if ctx == nil {
		ctx = context.Background()
	}
	return &HTTPTunnelServer{ctx: ctx, cfg: cfg, verbose: verbose}
}

// Serve accepts connections on ln until the listener is closed or becomes
// unusable. A failed accept is logged and the loop continues; a failed
// connection never stops the loop.
func (s *HTTPTunnelServer) Serve(ln net.Listener) error {
	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("accept: %w", err)
			}
			log.Printf("http: accept error: %v", err)
			time.Sleep(5 * time.Millisecond)
			continue
		}

		go func() {
			if err := s.handle(c); err != nil {
				connectionErrorsTotal.WithLabelValues(string(Classify(err))).Inc()
				if s.verbose {
					log.Printf("http: connection error: %v", err)
				}
			}
		}()
	}
}

// handle runs one connection from initial read through relay. The client
// connection is always closed on return; the origin connection, if opened,
// is closed by CopyBidirectional.
func (s *HTTPTunnelServer) handle(conn net.Conn) error {
	defer conn.Close()
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	activeConnections.Inc()
	defer activeConnections.Dec()

	if s.cfg.NegotiationTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.cfg.NegotiationTimeout))
	}

	buf := make([]byte, initialReadSize)
	n, err := conn.Read(buf)
	if err != nil {
		return connError(KindRead, fmt.Errorf("read request: %w", err))
	}

	if s.cfg.NegotiationTimeout > 0 {
		_ = conn.SetReadDeadline(time.Time{})
	}

	req, err := ParseRequest(buf[:n])
	if err != nil {
		return connError(KindParse, err)
	}

	target, err := ResolveTarget(req)
	if err != nil {
		return connError(KindResolve, err)
	}

	mode := "http"
	if req.Method == MethodConnect {
		mode = "connect"
	}
	connectionsTotal.WithLabelValues(mode).Inc()

	origin, err := s.establish(ctx, conn, req, target)
	if err != nil {
		return err
	}

	start := time.Now()
	err = CopyBidirectional(ctx, conn, origin, s.cfg.IOTimeout)
	relayDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return connError(KindRelay, err)
	}
	return nil
}
