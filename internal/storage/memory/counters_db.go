package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/wolfeidau/node-quotas/internal/ports"
)

var _ ports.CounterStore = (*CountersDB)(nil)

var ErrNonPositiveTTL = errors.New("ttl must be positive")

type counter struct {
	value     int64
	expiresAt time.Time
}

// CountersDB — in-memory хранилище счётчиков для локального режима и тестов.
// Один мьютекс на всё хранилище: проверка наличия и изменение счётчика - одна критическая секция.
type CountersDB struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

func NewCountersDB() *CountersDB {
	return NewCountersDBWithClock(time.Now)
}

func NewCountersDBWithClock(now func() time.Time) *CountersDB {
	return &CountersDB{
		counters: make(map[string]*counter),
		now:      now,
	}
}

// get возвращает живой счётчик, просроченный удаляет. Вызывать под mu.
func (db *CountersDB) get(key string, now time.Time) (*counter, bool) {
	c, ok := db.counters[key]
	if !ok {
		return nil, false
	}
	if !now.Before(c.expiresAt) {
		delete(db.counters, key)
		return nil, false
	}
	return c, true
}

func (db *CountersDB) InitOrDecrement(_ context.Context, key string, initial int64, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, ErrNonPositiveTTL
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.now()
	if c, ok := db.get(key, now); ok {
		c.value--
		return c.value, nil
	}

	db.counters[key] = &counter{value: initial, expiresAt: now.Add(ttl)}
	return initial, nil
}

func (db *CountersDB) Get(_ context.Context, key string) (int64, time.Duration, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.now()
	c, ok := db.get(key, now)
	if !ok {
		return 0, 0, false, nil
	}
	return c.value, c.expiresAt.Sub(now), true, nil
}

// Keys поддерживает только литерал или литерал с завершающим '*', см. parsePattern.
func (db *CountersDB) Keys(_ context.Context, pattern string) ([]string, error) {
	p, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.now()
	keys := make([]string, 0, len(db.counters))
	for k := range db.counters {
		if _, ok := db.get(k, now); !ok {
			continue
		}
		if p.match(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (db *CountersDB) Delete(_ context.Context, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.counters, key)
	return nil
}

func (db *CountersDB) Ping(_ context.Context) error {
	return nil
}
