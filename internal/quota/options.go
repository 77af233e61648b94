package quota

import (
	"time"

	"github.com/wolfeidau/node-quotas/internal/ports"
)

const (
	DefaultPrefix  = "quotas"
	DefaultExpires = 86400 * time.Second
	// MinExpires - точность TTL в хранилище (PX, миллисекунды)
	MinExpires = time.Millisecond
)

// ExhaustionPolicy определяет поведение при исчерпании квоты.
type ExhaustionPolicy string

const (
	// ExhaustionAllowNegative - остаток уходит в минус, интерпретация за вызывающим.
	ExhaustionAllowNegative ExhaustionPolicy = "allow-negative"
	// ExhaustionReject - при остатке <= 0 вместе со значением возвращается ErrQuotaExhausted.
	ExhaustionReject ExhaustionPolicy = "reject"
)

func (p ExhaustionPolicy) valid() bool {
	switch p {
	case ExhaustionAllowNegative, ExhaustionReject:
		return true
	}
	return false
}

// Category — лимит и окно одной категории. Expires == 0 - окно по умолчанию.
type Category struct {
	Limit   int64
	Expires time.Duration
}

type Options struct {
	Quotas map[string]Category

	// Store - готовое хранилище. Если не задано, при Initialize подключаемся по RedisURL.
	Store    ports.CounterStore
	RedisURL string

	Prefix     string
	Expires    time.Duration
	Exhaustion ExhaustionPolicy
}
