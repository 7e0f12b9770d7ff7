package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const accessTokenKey ctxKey = "accessToken"

// publicMethods need no access token.
var publicMethods = map[string]bool{
	fullMethod("Ping"):     true,
	fullMethod("Login"):    true,
	fullMethod("Register"): true,
}

// tokenFromMetadata reads "authorization: Bearer <token>" and falls back to a
// bare "access_token" entry.
func tokenFromMetadata(md metadata.MD) string {
	for _, v := range md.Get(common.AuthorizationHeaderName) {
		if len(v) > len(common.BearerScheme) && strings.EqualFold(v[:len(common.BearerScheme)], common.BearerScheme) {
			return strings.TrimSpace(v[len(common.BearerScheme):])
		}
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return values[0]
	}
	return ""
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}

// accessTokenInterceptor stores the caller's token in ctx for every
// non-public method. Validation happens in the services.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !publicMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			accessToken = tokenFromMetadata(md)
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		ctx = context.WithValue(ctx, accessTokenKey, accessToken)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "request failed", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start))
	} else {
		s.logger.Debug(ctx, "request", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start))
	}

	return resp, err
}
