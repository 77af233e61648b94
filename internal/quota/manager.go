package quota

import (
	"context"
	"io"
	"maps"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wolfeidau/node-quotas/internal/ports"
	"github.com/wolfeidau/node-quotas/internal/storage/redisdb"
)

// flushParallelism - сколько DEL одновременно выполняет Flush.
const flushParallelism = 16

// Manager считает квоты по паре (субъект, категория) в хранилище с TTL.
// После Initialize конфигурация неизменна, методы безопасны для конкурентного вызова.
// Состояния счётчиков в процессе нет, несколько менеджеров могут делить одно хранилище.
type Manager struct {
	opts Options

	quotas     map[string]Category
	prefix     string
	expires    time.Duration
	exhaustion ExhaustionPolicy

	store ports.CounterStore
	// closer != nil, только если хранилище создано самим менеджером
	closer      io.Closer
	initialized bool
}

func NewManager(opts Options) *Manager {
	return &Manager{opts: opts}
}

// Initialize проверяет конфигурацию и привязывает хранилище.
// Сетевых обращений не делает: клиент по RedisURL подключается при первом запросе.
// Повторный вызов после успешного ничего не меняет.
func (m *Manager) Initialize() error {
	if m.initialized {
		return nil
	}

	o := m.opts
	if len(o.Quotas) == 0 {
		return configErrorf("quotas are required")
	}
	if o.Store == nil && o.RedisURL == "" {
		return configErrorf("either a store or a redis url is required")
	}
	if o.Expires < 0 {
		return configErrorf("default expiry must not be negative, got %s", o.Expires)
	}
	if o.Expires > 0 && o.Expires < MinExpires {
		return configErrorf("default expiry must be at least %s, got %s", MinExpires, o.Expires)
	}
	for name, c := range o.Quotas {
		if name == "" {
			return configErrorf("category with empty name")
		}
		if c.Expires < 0 {
			return configErrorf("category %q: expiry must not be negative, got %s", name, c.Expires)
		}
		if c.Expires > 0 && c.Expires < MinExpires {
			return configErrorf("category %q: expiry must be at least %s, got %s", name, MinExpires, c.Expires)
		}
	}

	exhaustion := o.Exhaustion
	if exhaustion == "" {
		exhaustion = ExhaustionAllowNegative
	}
	if !exhaustion.valid() {
		return configErrorf("unknown exhaustion policy %q", exhaustion)
	}

	prefix := o.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	expires := o.Expires
	if expires == 0 {
		expires = DefaultExpires
	}

	store := o.Store
	var closer io.Closer
	if store == nil {
		rs, err := redisdb.Dial(o.RedisURL)
		if err != nil {
			return configErrorf("redis url: %v", err)
		}
		store, closer = rs, rs
	}

	m.quotas = maps.Clone(o.Quotas)
	m.prefix = prefix
	m.expires = expires
	m.exhaustion = exhaustion
	m.store = store
	m.closer = closer
	m.initialized = true
	return nil
}

func (m *Manager) ready() error {
	if !m.initialized {
		return configErrorf("manager is not initialized")
	}
	return nil
}

// ExpiryFor возвращает окно категории, а если оно не задано - окно по умолчанию.
func (m *Manager) ExpiryFor(category string) time.Duration {
	if c, ok := m.quotas[category]; ok && c.Expires > 0 {
		return c.Expires
	}
	if m.expires > 0 {
		return m.expires
	}
	// до Initialize
	if m.opts.Expires > 0 {
		return m.opts.Expires
	}
	return DefaultExpires
}

func (m *Manager) Prefix() string {
	return m.prefix
}

func (m *Manager) Exhaustion() ExhaustionPolicy {
	return m.exhaustion
}

// Key - ключ счётчика {prefix}:{subject}:{category}.
func (m *Manager) Key(subject, category string) string {
	return m.prefix + ":" + subject + ":" + category
}

// resolve проверяет аргументы и возвращает категорию. Хранилище не трогает.
func (m *Manager) resolve(subject, category string) (Category, error) {
	if err := m.ready(); err != nil {
		return Category{}, err
	}
	if subject == "" {
		return Category{}, &ValidationError{Field: "subject"}
	}
	if category == "" {
		return Category{}, &ValidationError{Field: "category"}
	}
	c, ok := m.quotas[category]
	if !ok {
		return Category{}, configErrorf("category %q is not configured", category)
	}
	if c.Limit <= 0 {
		return Category{}, configErrorf("category %q has no positive limit", category)
	}
	return c, nil
}

// CheckAndDecrement списывает единицу квоты субъекта в категории и возвращает остаток.
// Первый вызов в окне возвращает лимит, каждый следующий - предыдущее значение минус один.
// В режиме ExhaustionReject при остатке <= 0 вместе с ним возвращается ошибка ErrQuotaExhausted,
// счётчик при этом всё равно уменьшен.
func (m *Manager) CheckAndDecrement(ctx context.Context, subject, category string) (int64, error) {
	c, err := m.resolve(subject, category)
	if err != nil {
		return 0, err
	}

	key := m.Key(subject, category)
	remaining, err := m.store.InitOrDecrement(ctx, key, c.Limit, m.ExpiryFor(category))
	if err != nil {
		return 0, &StoreError{Op: "check-and-decrement", Key: key, Err: err}
	}

	if m.exhaustion == ExhaustionReject && remaining <= 0 {
		return remaining, &ExhaustedError{Subject: subject, Category: category, Remaining: remaining}
	}
	return remaining, nil
}

// Counter - состояние счётчика без списания.
type Counter struct {
	Remaining int64
	TTL       time.Duration
	// Active=false - счётчика нет, Remaining равен лимиту, TTL - полному окну
	Active bool
}

func (m *Manager) Inspect(ctx context.Context, subject, category string) (Counter, error) {
	c, err := m.resolve(subject, category)
	if err != nil {
		return Counter{}, err
	}

	key := m.Key(subject, category)
	v, ttl, found, err := m.store.Get(ctx, key)
	if err != nil {
		return Counter{}, &StoreError{Op: "get", Key: key, Err: err}
	}
	if !found {
		return Counter{Remaining: c.Limit, TTL: m.ExpiryFor(category)}, nil
	}
	return Counter{Remaining: v, TTL: ttl, Active: true}, nil
}

// Reset удаляет счётчик субъекта в категории, следующий вызов начнёт окно заново.
func (m *Manager) Reset(ctx context.Context, subject, category string) error {
	if _, err := m.resolve(subject, category); err != nil {
		return err
	}

	key := m.Key(subject, category)
	if err := m.store.Delete(ctx, key); err != nil {
		return &StoreError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Flush удаляет все счётчики в пространстве имён префикса и возвращает их количество.
// Перечисление и удаление не атомарны: ключи, созданные во время SCAN, могут уцелеть.
func (m *Manager) Flush(ctx context.Context) (int, error) {
	if err := m.ready(); err != nil {
		return 0, err
	}

	pattern := escapeGlob(m.prefix) + ":*"
	keys, err := m.store.Keys(ctx, pattern)
	if err != nil {
		return 0, &StoreError{Op: "scan", Key: pattern, Err: err}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(flushParallelism)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := m.store.Delete(gctx, key); err != nil {
				return &StoreError{Op: "delete", Key: key, Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Categories возвращает копию действующих категорий.
func (m *Manager) Categories() map[string]Category {
	return maps.Clone(m.quotas)
}

func (m *Manager) Ping(ctx context.Context) error {
	if err := m.ready(); err != nil {
		return err
	}
	if err := m.store.Ping(ctx); err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	return nil
}

// Close закрывает хранилище, если менеджер создал его сам. Переданное через Options.Store не трогает.
func (m *Manager) Close() error {
	if m.closer == nil {
		return nil
	}
	err := m.closer.Close()
	m.closer = nil
	return err
}

// escapeGlob экранирует спецсимволы шаблона Redis MATCH.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
