package proxy

import (
	"context"
	"net"
	"testing"
	"time"

	txsocks5 "github.com/txthinking/socks5"

	"github.com/strait-net/strait/internal/dialer"
	"github.com/strait-net/strait/internal/socks5"
	"github.com/strait-net/strait/internal/testutil"
)

func TestSOCKS5ConnectDirect(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	echoLn := testutil.StartEchoTCPServer(t, ctx)

	cfg := Config{
		Dialer: dialer.NewDirectDialer(dialer.Config{DialTimeout: 2 * time.Second}),
	}

	ln, err := ListenTCP("tcp", "127.0.0.1:0", net.KeepAliveConfig{Enable: false})
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	srv := NewSOCKS5Server(context.Background(), cfg, socks5.Auth{}, false)
	go func() { _ = srv.Serve(ln) }()

	client, err := txsocks5.NewClient(ln.Addr().String(), "", "", 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	c, err := client.Dial("tcp", echoLn.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	testutil.AssertEcho(t, c, c, []byte("hello"))
}

func TestSOCKS5UserPassAuth(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	echoLn := testutil.StartEchoTCPServer(t, ctx)

	cfg := Config{
		Dialer: dialer.NewDirectDialer(dialer.Config{DialTimeout: 2 * time.Second}),
	}

	ln, err := ListenTCP("tcp", "127.0.0.1:0", net.KeepAliveConfig{Enable: false})
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	auth := socks5.Auth{Username: "user", Password: "pass"}
	srv := NewSOCKS5Server(context.Background(), cfg, auth, false)
	go func() { _ = srv.Serve(ln) }()

	client, err := txsocks5.NewClient(ln.Addr().String(), "user", "pass", 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	c, err := client.Dial("tcp", echoLn.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	testutil.AssertEcho(t, c, c, []byte("authed"))

	bad, err := txsocks5.NewClient(ln.Addr().String(), "user", "wrong", 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c, err := bad.Dial("tcp", echoLn.Addr().String()); err == nil {
		_ = c.Close()
		t.Fatal("expected auth failure")
	}
}
