package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophclip/internal/common"
	pb "github.com/dmitrijs2005/gophclip/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Issue(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	content, expiresAt := pb.IssueFields(req)

	code, err := s.issuer.Issue(ctx, content, expiresAt)
	if err != nil {
		return nil, s.toStatus(ctx, "Issue", err)
	}
	return wrapperspb.String(code), nil
}

func (s *GRPCServer) Resolve(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	content, err := s.resolver.Resolve(ctx, req.GetValue())
	if err != nil {
		return nil, s.toStatus(ctx, "Resolve", err)
	}
	return wrapperspb.String(content), nil
}

// toStatus maps service errors to gRPC codes. Infrastructure details are
// logged, never returned.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.NotFoundMessage)
	case errors.Is(err, common.ErrorCapacityExhausted):
		return status.Error(codes.Unavailable, common.CapacityExhaustedMessage)
	default:
		s.logger.Error(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
