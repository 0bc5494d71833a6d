// Package grpc exposes the issuer and resolver as the gophclip.v1.Clipboard
// gRPC service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophclip/internal/logging"
	pb "github.com/dmitrijs2005/gophclip/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Issuer interface {
	Issue(ctx context.Context, content, expiry string) (string, error)
}

type Resolver interface {
	Resolve(ctx context.Context, code string) (string, error)
}

type GRPCServer struct {
	address  string
	issuer   Issuer
	resolver Resolver
	logger   logging.Logger
	health   *health.Server
}

func NewGRPCServer(address string, l logging.Logger, issuer Issuer, resolver Resolver) *GRPCServer {
	return &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		issuer:   issuer,
		resolver: resolver,
		health:   health.NewServer(),
	}
}

// NewServer builds the grpc.Server with interceptors, the clipboard service
// and the standard health service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.recoveryInterceptor,
		s.requestIDInterceptor,
		s.loggingInterceptor,
	))

	pb.RegisterClipboardServer(srv, s)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, s.health)

	return srv
}

// Serve runs the server on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}
