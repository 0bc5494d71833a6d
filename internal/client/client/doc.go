// Package client talks to the gophclip gRPC service.
//
// GRPCClient implements Client. It attaches a request id to every call and
// maps gRPC status codes back to the sentinel errors in internal/common and
// ErrUnavailable, so callers can match them with errors.Is.
package client
