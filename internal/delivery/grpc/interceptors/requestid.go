package interceptors

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/wolfeidau/node-quotas/internal/ctxmeta"
)

const (
	RequestIDHeader = "x-request-id"
	// длиннее - не доверяем и генерируем свой
	maxRequestIDLen = 128
)

// UnaryRequestIDInterceptor берёт x-request-id клиента или выдаёт новый uuid,
// кладёт его в ctx (логгер подхватывает) и возвращает в заголовке ответа.
func UnaryRequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := incomingRequestID(ctx)
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx = ctxmeta.WithRequestID(ctx, rid)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, rid))

		return handler(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(RequestIDHeader)
	if len(vals) == 0 || len(vals[0]) > maxRequestIDLen {
		return ""
	}
	return vals[0]
}
