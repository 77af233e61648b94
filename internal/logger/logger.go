package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/wolfeidau/node-quotas/internal/config"
	"github.com/wolfeidau/node-quotas/internal/ctxmeta"
)

// Logger - тонкая обёртка над slog.Logger с настройкой из config.Logger.
type Logger struct {
	*slog.Logger
}

// New создаёт логгер с выводом в stdout.
func New(cfg *config.Logger) *Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter создаёт логгер с выводом в w (файл, буфер в тестах).
func NewWithWriter(w io.Writer, cfg *config.Logger) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return &Logger{Logger: slog.New(&requestIDHandler{Handler: h})}
}

// Discard - логгер для тестов и мест, где логирование не настроено.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// requestIDHandler добавляет request_id из контекста к каждой записи.
type requestIDHandler struct {
	slog.Handler
}

func (h *requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid := ctxmeta.RequestID(ctx); rid != "" {
		r.AddAttrs(slog.String("request_id", rid))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &requestIDHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *requestIDHandler) WithGroup(name string) slog.Handler {
	return &requestIDHandler{Handler: h.Handler.WithGroup(name)}
}
