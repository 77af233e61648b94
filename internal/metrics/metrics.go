package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quotas"

const (
	ResultOK        = "ok"
	ResultExhausted = "exhausted"
	ResultError     = "error"
)

// Метки категории для отклонённых проверок: имя категории от клиента в метку не попадает.
const (
	CategoryInvalid = "invalid"
	CategoryUnknown = "unknown"
)

// Metrics — коллекторы сервиса на собственном реестре (не глобальном), чтобы тесты не конфликтовали.
type Metrics struct {
	registry *prometheus.Registry

	checks       *prometheus.CounterVec
	opDuration   *prometheus.HistogramVec
	flushedKeys  prometheus.Counter
	reloads      *prometheus.CounterVec
	categories   prometheus.Gauge
	grpcRequests *prometheus.CounterVec
	grpcDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		checks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Total number of check-and-decrement calls by category and result",
		}, []string{"category", "result"}),
		opDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of quota operations against the counter store",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs .. ~1.6s
		}, []string{"operation"}),
		flushedKeys: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flushed_keys_total",
			Help:      "Total number of counters removed by flush",
		}),
		reloads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_reloads_total",
			Help:      "Total number of category reloads by result",
		}, []string{"result"}),
		categories: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "categories",
			Help:      "Number of categories in the live configuration",
		}),
		grpcRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Total number of gRPC requests by method and status code",
		}, []string{"method", "code"}),
		grpcDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "Duration of gRPC requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

func (m *Metrics) RecordCheck(category, result string) {
	m.checks.WithLabelValues(category, result).Inc()
}

func (m *Metrics) ObserveOperation(op string, d time.Duration) {
	m.opDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (m *Metrics) RecordFlush(keys int) {
	m.flushedKeys.Add(float64(keys))
}

func (m *Metrics) RecordReload(ok bool, categories int) {
	if !ok {
		m.reloads.WithLabelValues(ResultError).Inc()
		return
	}
	m.reloads.WithLabelValues(ResultOK).Inc()
	m.categories.Set(float64(categories))
}

func (m *Metrics) RecordRequest(method, code string, d time.Duration) {
	m.grpcRequests.WithLabelValues(method, code).Inc()
	m.grpcDuration.WithLabelValues(method).Observe(d.Seconds())
}
