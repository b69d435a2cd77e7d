package proxy

import (
	"context"
	"fmt"
	"net"
)

// connectEstablished is the acknowledgment a CONNECT client receives once
// the origin dial succeeds. The bytes are load-bearing: clients match on
// this exact line before starting TLS.
const connectEstablished = "HTTP/1.1 200 Connection established\r\n\r\n"

// establish dials the resolved target and performs the pre-relay handshake.
//
// In CONNECT mode the client is sent the acknowledgment only after a
// successful dial; on dial failure the client observes nothing but closure.
// In HTTP mode the raw initial bytes already read from the client are
// replayed to the origin verbatim; whatever part of the request the initial
// read did not capture streams through the relay afterwards.
func (s *HTTPTunnelServer) establish(ctx context.Context, client net.Conn, req *Request, target Target) (net.Conn, error) {
	origin, err := s.cfg.Dialer.DialContext(ctx, "tcp", target.Addr())
	if err != nil {
		return nil, connError(KindDial, fmt.Errorf("origin %s unreachable: %w", target.Addr(), err))
	}

	if req.Method == MethodConnect {
		if _, err := client.Write([]byte(connectEstablished)); err != nil {
			_ = origin.Close()
			return nil, connError(KindHandshake, fmt.Errorf("write established: %w", err))
		}
		return origin, nil
	}

	if _, err := origin.Write(req.Raw); err != nil {
		_ = origin.Close()
		return nil, connError(KindHandshake, fmt.Errorf("replay request: %w", err))
	}
	return origin, nil
}
