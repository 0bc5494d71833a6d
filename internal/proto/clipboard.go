// Package proto declares the gophclip.v1.Clipboard gRPC service. Messages
// are protobuf well-known types, so no generated code is needed:
//
//	rpc Issue(google.protobuf.Struct) returns (google.protobuf.StringValue);
//	rpc Resolve(google.protobuf.StringValue) returns (google.protobuf.StringValue);
//
// The Issue request struct carries "content" and "expiresAt" string fields.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "gophclip.v1.Clipboard"

	IssueMethod   = "/" + ServiceName + "/Issue"
	ResolveMethod = "/" + ServiceName + "/Resolve"

	FieldContent   = "content"
	FieldExpiresAt = "expiresAt"
)

// ClipboardServer is the server API for the Clipboard service.
type ClipboardServer interface {
	Issue(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Resolve(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// NewIssueRequest builds the Issue request message.
func NewIssueRequest(content, expiresAt string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldContent:   structpb.NewStringValue(content),
		FieldExpiresAt: structpb.NewStringValue(expiresAt),
	}}
}

// IssueFields extracts content and expiresAt from an Issue request. Missing
// or non-string fields read as empty.
func IssueFields(req *structpb.Struct) (content, expiresAt string) {
	f := req.GetFields()
	return f[FieldContent].GetStringValue(), f[FieldExpiresAt].GetStringValue()
}

func RegisterClipboardServer(s grpc.ServiceRegistrar, srv ClipboardServer) {
	s.RegisterService(&ClipboardServiceDesc, srv)
}

func issueHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClipboardServer).Issue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IssueMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClipboardServer).Issue(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func resolveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClipboardServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ResolveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClipboardServer).Resolve(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var ClipboardServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClipboardServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Issue", Handler: issueHandler},
		{MethodName: "Resolve", Handler: resolveHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophclip/v1/clipboard.proto",
}

// ClipboardClient is the client API for the Clipboard service.
type ClipboardClient interface {
	Issue(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type clipboardClient struct {
	cc grpc.ClientConnInterface
}

func NewClipboardClient(cc grpc.ClientConnInterface) ClipboardClient {
	return &clipboardClient{cc: cc}
}

func (c *clipboardClient) Issue(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, IssueMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clipboardClient) Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ResolveMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
