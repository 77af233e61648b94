package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/wolfeidau/node-quotas/internal/config"
	"github.com/wolfeidau/node-quotas/internal/logger"
	"github.com/wolfeidau/node-quotas/internal/metrics"
	"github.com/wolfeidau/node-quotas/internal/ports"
	"github.com/wolfeidau/node-quotas/internal/quota"
)

var ErrNoCategories = errors.New("no quota categories configured")

type QuotaUseCase interface {
	Check(ctx context.Context, subject, category string) (Decision, error)
	Inspect(ctx context.Context, subject, category string) (quota.Counter, error)
	Reset(ctx context.Context, subject, category string) error
	Flush(ctx context.Context) (int, error)
	Expiry(ctx context.Context, category string) (time.Duration, error)
	Categories() map[string]quota.Category
	Ping(ctx context.Context) error
}

// Проверка реализации интерфейсов на этапе компиляции.
var (
	_ QuotaUseCase         = (*QuotaService)(nil)
	_ ports.CategoryHolder = (*QuotaService)(nil)
)

// Decision - результат списания.
type Decision struct {
	Remaining int64
	// Exhausted = Remaining <= 0
	Exhausted bool
}

// QuotaService держит действующий quota.Manager и пересобирает его при изменении категорий.
// Менеджер неизменяем, замена - атомарная подмена указателя.
type QuotaService struct {
	store   ports.CounterStore
	repo    ports.CategoryRepo
	cfg     config.Quotas
	log     *logger.Logger
	metrics *metrics.Metrics

	manager atomic.Pointer[quota.Manager]
}

// NewQuotaService: repo может быть nil - тогда категории берутся только из конфига.
func NewQuotaService(
	store ports.CounterStore,
	repo ports.CategoryRepo,
	cfg config.Quotas,
	log *logger.Logger,
	m *metrics.Metrics,
) *QuotaService {
	if log == nil {
		log = logger.Discard()
	}
	if m == nil {
		m = metrics.New()
	}
	return &QuotaService{
		store:   store,
		repo:    repo,
		cfg:     cfg,
		log:     log,
		metrics: m,
	}
}

func (s *QuotaService) Init(ctx context.Context) error {
	if err := s.ReloadCategories(ctx); err != nil {
		return fmt.Errorf("initial categories load: %w", err)
	}
	return nil
}

// ReloadCategories собирает категории из конфига и репозитория (репозиторий важнее)
// и подменяет менеджер. При ошибке продолжает работать прежний.
func (s *QuotaService) ReloadCategories(ctx context.Context) error {
	quotas, err := s.loadCategories(ctx)
	if err != nil {
		s.metrics.RecordReload(false, 0)
		return err
	}

	m := quota.NewManager(quota.Options{
		Quotas:     quotas,
		Store:      s.store,
		Prefix:     s.cfg.Prefix,
		Expires:    s.cfg.Expires,
		Exhaustion: quota.ExhaustionPolicy(s.cfg.Exhaustion),
	})
	if err := m.Initialize(); err != nil {
		s.metrics.RecordReload(false, 0)
		return err
	}

	s.manager.Store(m)
	s.metrics.RecordReload(true, len(quotas))
	s.log.InfoContext(ctx, "quota categories loaded", "count", len(quotas))
	return nil
}

func (s *QuotaService) loadCategories(ctx context.Context) (map[string]quota.Category, error) {
	quotas := make(map[string]quota.Category, len(s.cfg.Categories))
	for name, c := range s.cfg.Categories {
		quotas[name] = quota.Category{Limit: c.Limit, Expires: c.Expires}
	}

	if s.repo != nil {
		cats, err := s.repo.ListCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		for _, c := range cats {
			quotas[c.Name] = quota.Category{Limit: c.Limit, Expires: c.Expires}
		}
	}

	if len(quotas) == 0 {
		return nil, ErrNoCategories
	}
	return quotas, nil
}

// current возвращает действующий менеджер. До Init - неинициализированный, он отвечает ConfigurationError.
func (s *QuotaService) current() *quota.Manager {
	if m := s.manager.Load(); m != nil {
		return m
	}
	return quota.NewManager(quota.Options{})
}

func (s *QuotaService) Check(ctx context.Context, subject, category string) (Decision, error) {
	start := time.Now()
	remaining, err := s.current().CheckAndDecrement(ctx, subject, category)
	s.metrics.ObserveOperation("check", time.Since(start))

	switch {
	case err == nil:
		d := Decision{Remaining: remaining, Exhausted: remaining <= 0}
		if d.Exhausted {
			s.metrics.RecordCheck(category, metrics.ResultExhausted)
		} else {
			s.metrics.RecordCheck(category, metrics.ResultOK)
		}
		return d, nil
	case errors.Is(err, quota.ErrQuotaExhausted):
		s.metrics.RecordCheck(category, metrics.ResultExhausted)
		s.log.DebugContext(ctx, "quota exhausted", "subject", subject, "category", category, "remaining", remaining)
		return Decision{Remaining: remaining, Exhausted: true}, err
	default:
		s.metrics.RecordCheck(checkLabel(category, err), metrics.ResultError)
		if quota.IsStoreError(err) {
			s.log.ErrorContext(ctx, "quota check failed", "subject", subject, "category", category, "error", err)
		}
		return Decision{}, err
	}
}

// checkLabel - метка категории для ошибки проверки. Настоящее имя - только если менеджер его принял.
func checkLabel(category string, err error) string {
	switch {
	case quota.IsValidationError(err):
		return metrics.CategoryInvalid
	case quota.IsConfigurationError(err):
		return metrics.CategoryUnknown
	default:
		return category
	}
}

func (s *QuotaService) Inspect(ctx context.Context, subject, category string) (quota.Counter, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation("inspect", time.Since(start)) }()
	return s.current().Inspect(ctx, subject, category)
}

func (s *QuotaService) Reset(ctx context.Context, subject, category string) error {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation("reset", time.Since(start)) }()

	if err := s.current().Reset(ctx, subject, category); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "quota counter reset", "subject", subject, "category", category)
	return nil
}

func (s *QuotaService) Flush(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation("flush", time.Since(start)) }()

	n, err := s.current().Flush(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "quota flush failed", "error", err)
		return 0, err
	}
	s.metrics.RecordFlush(n)
	s.log.InfoContext(ctx, "quota counters flushed", "keys", n)
	return n, nil
}

// Expiry возвращает окно категории. Неизвестная категория - ConfigurationError.
func (s *QuotaService) Expiry(_ context.Context, category string) (time.Duration, error) {
	m := s.current()
	if category == "" {
		return 0, &quota.ValidationError{Field: "category"}
	}
	if _, ok := m.Categories()[category]; !ok {
		return 0, &quota.ConfigurationError{Reason: fmt.Sprintf("category %q is not configured", category)}
	}
	return m.ExpiryFor(category), nil
}

func (s *QuotaService) Ping(ctx context.Context) error {
	return s.current().Ping(ctx)
}

// Categories - категории действующего менеджера.
func (s *QuotaService) Categories() map[string]quota.Category {
	return s.current().Categories()
}
