package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophclip/internal/common"
	pb "github.com/dmitrijs2005/gophclip/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Client interface {
	// Share stores content for the given expiry class and returns its code.
	Share(ctx context.Context, content, expiry string) (string, error)
	// Fetch returns the content behind code.
	Fetch(ctx context.Context, code string) (string, error)
	Close() error
}

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.ClipboardClient
}

// NewGRPCClient connects lazily to endpoint. Extra dial options are appended
// after the insecure transport credentials.
func NewGRPCClient(endpoint string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, client: pb.NewClipboardClient(conn)}, nil
}

func requestIDInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if md, ok := metadata.FromOutgoingContext(ctx); !ok || len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Share(ctx context.Context, content, expiry string) (string, error) {
	resp, err := c.client.Issue(ctx, pb.NewIssueRequest(content, expiry))
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetValue(), nil
}

func (c *GRPCClient) Fetch(ctx context.Context, code string) (string, error) {
	resp, err := c.client.Resolve(ctx, wrapperspb.String(code))
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetValue(), nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unavailable:
		// Unavailable covers both a busy code space and a dead connection.
		if st.Message() == common.CapacityExhaustedMessage {
			return common.ErrorCapacityExhausted
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("%w: %s", common.ErrorInternal, st.Message())
	}
}
