package proxy

import (
	"context"
	"io"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type closeWriter interface {
	CloseWrite() error
}

// CopyBidirectional relays bytes between client and origin until both
// directions have terminated.
//
// Each direction copies until its source reaches EOF or errors. On EOF the
// destination is half-closed (CloseWrite when the transport supports it) so
// the peer observes termination promptly while the opposite direction keeps
// flowing. On error or context cancellation both connections are closed to
// unblock the other direction. The first non-nil error is returned for
// diagnostics only; both connections are closed by the time it returns.
func CopyBidirectional(ctx context.Context, client, origin net.Conn, ioTimeout time.Duration) error {
	if ioTimeout > 0 {
		dl := time.Now().Add(ioTimeout)
		_ = client.SetDeadline(dl)
		_ = origin.SetDeadline(dl)
	}

	var closeOnce sync.Once
	closeBoth := func() {
		closeOnce.Do(func() {
			_ = client.Close()
			_ = origin.Close()
		})
	}
	defer closeBoth()

	g, gctx := errgroup.WithContext(ctx)

	// If the context is canceled or either direction errors, close both
	// sides to unblock the other Copy.
	stop := context.AfterFunc(gctx, closeBoth)
	defer stop()

	g.Go(func() error {
		return copyHalf(origin, client, directionOut)
	})

	g.Go(func() error {
		return copyHalf(client, origin, directionIn)
	})

	return g.Wait()
}

func copyHalf(dst, src net.Conn, direction string) error {
	n, err := io.Copy(dst, src)
	relayBytesTotal.WithLabelValues(direction).Add(float64(n))
	if err != nil {
		return err
	}

	// Source hit EOF; half-close so the peer sees it without cutting off
	// the opposite direction.
	if cw, ok := dst.(closeWriter); ok {
		_ = cw.CloseWrite()
	} else {
		_ = dst.Close()
	}
	return nil
}
