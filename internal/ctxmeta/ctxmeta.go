package ctxmeta

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID кладёт request id в контекст.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// RequestID возвращает request id из контекста или пустую строку.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}
