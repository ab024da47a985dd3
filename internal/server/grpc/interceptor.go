package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/avoronov/usersvc/internal/common"
	"github.com/avoronov/usersvc/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const callerIDKey ctxKey = "callerID"

// accessTokenInterceptor guards every UsersService method: the call must
// carry "authorization: Bearer <jwt>" metadata signed with the shared
// secret, or it is rejected before the handler runs.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var authorization string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AuthorizationHeaderName)
		if len(values) > 0 {
			authorization = values[0]
		}
	}
	if authorization == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	token := strings.TrimPrefix(authorization, common.BearerPrefix)

	claims, err := auth.VerifyToken(token, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, callerIDKey, claims.UserID)

	return handler(ctx, req)
}

// metricsInterceptor records a counter and latency observation per call.
func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	if s.metrics != nil {
		s.metrics.RecordRequest(info.FullMethod, status.Code(err).String())
		s.metrics.RecordLatency(time.Since(start))
	}

	return resp, err
}
