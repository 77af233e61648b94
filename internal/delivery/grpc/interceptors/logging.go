package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/wolfeidau/node-quotas/internal/logger"
)

// запросы, адресованные конкретному счётчику
type subjectRequest interface{ GetSubject() string }

type categoryRequest interface{ GetCategory() string }

// UnaryLoggingInterceptor пишет одну запись на вызов. Ошибки клиента (невалидный запрос,
// исчерпанная квота, неизвестная категория) - WARN, остальные - ERROR.
func UnaryLoggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		fields := []any{
			"method", info.FullMethod,
			"duration", time.Since(start).String(),
			"grpc_code", code.String(),
		}
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			fields = append(fields, "remote_addr", p.Addr.String())
		}
		if r, ok := req.(categoryRequest); ok {
			fields = append(fields, "category", r.GetCategory())
		}
		if r, ok := req.(subjectRequest); ok {
			fields = append(fields, "subject", r.GetSubject())
		}

		switch {
		case err == nil:
			log.InfoContext(ctx, "gRPC request handled", fields...)
		case clientFault(code):
			log.WarnContext(ctx, "gRPC request rejected", append(fields, "error", err)...)
		default:
			log.ErrorContext(ctx, "gRPC request failed", append(fields, "error", err)...)
		}

		return resp, err
	}
}

func clientFault(c codes.Code) bool {
	switch c {
	case codes.InvalidArgument, codes.ResourceExhausted, codes.FailedPrecondition, codes.Canceled, codes.Unimplemented:
		return true
	}
	return false
}
