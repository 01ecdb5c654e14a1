package server_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spaserver/core/server"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = io.WriteString(w, "ok")
})

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServerServesAndStops(t *testing.T) {
	t.Parallel()

	listening := make(chan net.Addr, 1)
	var logs syncBuffer

	srv := server.New("127.0.0.1:0",
		server.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		server.WithShutdownTimeout(time.Second),
		server.WithOnListen(func(addr net.Addr) { listening <- addr }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler)() }()

	var addr net.Addr
	select {
	case addr = <-listening:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	assert.Equal(t, addr.String(), srv.Addr().String())

	resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Nil(t, srv.Addr())
	assert.Contains(t, logs.String(), "server listening")
	assert.Contains(t, logs.String(), "server shutdown complete")
}

func TestServerBindError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	called := false
	srv := server.New(ln.Addr().String(), server.WithOnListen(func(net.Addr) { called = true }))

	err = srv.Start(context.Background(), okHandler)
	require.ErrorIs(t, err, server.ErrBind)
	assert.Contains(t, err.Error(), ln.Addr().String())
	assert.False(t, called, "listen hook must not run when bind fails")

	err = srv.Run(context.Background(), okHandler)()
	assert.ErrorIs(t, err, server.ErrBind)
}

func TestServerAlreadyRunning(t *testing.T) {
	t.Parallel()

	listening := make(chan struct{})
	srv := server.New("127.0.0.1:0", server.WithOnListen(func(net.Addr) { close(listening) }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = srv.Start(ctx, okHandler) }()
	<-listening

	err := srv.Start(ctx, okHandler)
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)
	assert.NoError(t, srv.Stop())
}

func TestServerStopWhenNotRunning(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	assert.NoError(t, srv.Stop())
	assert.Nil(t, srv.Addr())
}

func TestServerStartWithCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := server.New("127.0.0.1:0")
	assert.ErrorIs(t, srv.Start(ctx, okHandler), context.Canceled)
	assert.NoError(t, srv.Run(ctx, okHandler)())
}

func TestOptionsAcceptNilValues(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		srv := server.New("127.0.0.1:0",
			server.WithLogger(nil),
			server.WithOnListen(nil),
			server.WithReadTimeout(time.Second),
			server.WithReadHeaderTimeout(time.Second),
			server.WithWriteTimeout(time.Second),
			server.WithIdleTimeout(time.Second),
			server.WithMaxHeaderBytes(4096),
		)
		assert.NoError(t, srv.Stop())
	})
}
