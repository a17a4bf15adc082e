// Package client talks to the recmarket registry over gRPC.
//
// GRPCClient manages the connection, attaches the caller's identity token to
// every call through an interceptor and maps gRPC status codes to sentinel
// errors (ErrUnavailable, ErrUnauthorized, ErrRateLimited) that callers match
// with errors.Is. Rejected certificate submissions surface as ErrRejected.
package client
