package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wolfeidau/node-quotas/internal/logger"
)

const healthTimeout = 2 * time.Second

// Pinger - проверка доступности хранилища счётчиков.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewRouter - служебные эндпоинты: метрики Prometheus и проверка здоровья.
func NewRouter(metrics http.Handler, store Pinger, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", metrics)
	r.Get("/healthz", healthHandler(store, log))

	return r
}

func healthHandler(store Pinger, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		code := http.StatusOK
		if err := store.Ping(ctx); err != nil {
			log.WarnContext(ctx, "health check failed", "error", err)
			resp = healthResponse{Status: "unavailable", Error: err.Error()}
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
