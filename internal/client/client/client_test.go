package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/common"
	"github.com/dmitrijs2005/gophclip/internal/logging"
	gs "github.com/dmitrijs2005/gophclip/internal/server/grpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubService struct {
	code    string
	content string
	err     error

	gotContent, gotExpiry, gotCode string
}

func (s *stubService) Issue(_ context.Context, content, expiry string) (string, error) {
	s.gotContent, s.gotExpiry = content, expiry
	return s.code, s.err
}

func (s *stubService) Resolve(_ context.Context, code string) (string, error) {
	s.gotCode = code
	return s.content, s.err
}

func newTestClient(t *testing.T, svc *stubService) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := gs.NewGRPCServer("bufconn", logging.Nop{}, svc, svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = srv.Serve(ctx, lis)
		close(done)
	}()

	c, err := NewGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	})
	return c
}

func TestShareAndFetch(t *testing.T) {
	svc := &stubService{code: "1234", content: "hello"}
	c := newTestClient(t, svc)
	ctx := context.Background()

	code, err := c.Share(ctx, "hello", "7d")
	require.NoError(t, err)
	assert.Equal(t, "1234", code)
	assert.Equal(t, "hello", svc.gotContent)
	assert.Equal(t, "7d", svc.gotExpiry)

	content, err := c.Fetch(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
	assert.Equal(t, "1234", svc.gotCode)
}

func TestErrorsMapBackToSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validation", common.ErrorValidation, common.ErrorValidation},
		{"not found", common.ErrorNotFound, common.ErrorNotFound},
		{"capacity", common.ErrorCapacityExhausted, common.ErrorCapacityExhausted},
		{"internal", errors.New("db exploded"), common.ErrorInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, &stubService{err: tt.err})

			_, err := c.Share(context.Background(), "x", "1h")
			assert.ErrorIs(t, err, tt.want)

			_, err = c.Fetch(context.Background(), "1234")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(status.Error(codes.Unavailable, "connection refused")), ErrUnavailable)
	assert.ErrorIs(t, mapError(status.Error(codes.DeadlineExceeded, "slow")), ErrUnavailable)

	plain := errors.New("plain")
	assert.Equal(t, plain, mapError(plain))
}

func TestUnreachableServer(t *testing.T) {
	c, err := NewGRPCClient("passthrough:///nowhere",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return nil, errors.New("dial refused")
		}))
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = c.Fetch(ctx, "1234")
	assert.ErrorIs(t, err, ErrUnavailable)
}
