package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recmarket/internal/common"
	pb "github.com/dmitrijs2005/recmarket/internal/proto"
	"github.com/dmitrijs2005/recmarket/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "requestID"
)

const requestIDHeaderName = "x-request-id"

var mutatingMethods = map[string]bool{
	pb.CertificateRegistry_AddCertificate_FullMethodName:    true,
	pb.CertificateRegistry_Login_FullMethodName:             true,
	pb.CertificateRegistry_Logout_FullMethodName:            true,
	pb.CertificateRegistry_GetImageUploadURL_FullMethodName: true,
}

// callerFromContext returns the principal stored by identityInterceptor,
// or the anonymous principal.
func callerFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(callerKey).(string); ok && p != "" {
		return p
	}
	return common.AnonymousPrincipal
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	id := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeaderName, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request",
		"request_id", id,
		"method", info.FullMethod,
		"duration", time.Since(start).String(),
		"code", status.Code(err).String(),
	)

	return resp, err
}

func (s *GRPCServer) identityInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.IdentityTokenHeaderName)
		if len(values) > 0 {
			token = values[0]
		}
	}

	caller := common.AnonymousPrincipal
	if len(token) > 0 {
		principal, err := auth.PrincipalFromToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(ctx, "identity token rejected", "request_id", requestIDFromContext(ctx), "error", err)
			return nil, status.Error(codes.Unauthenticated, "invalid identity token")
		}
		caller = principal
	}

	return handler(context.WithValue(ctx, callerKey, caller), req)
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if mutatingMethods[info.FullMethod] && !s.limiter.allow(callerFromContext(ctx)) {
		return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}

	return handler(ctx, req)
}
