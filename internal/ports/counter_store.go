package ports

import (
	"context"
	"time"
)

// CounterStore — абстракция хранилища счётчиков квот с TTL.
type CounterStore interface {
	// InitOrDecrement атомарно: если ключа нет - создаёт его со значением initial и временем жизни ttl
	// и возвращает initial, иначе уменьшает значение на 1 и возвращает результат.
	InitOrDecrement(ctx context.Context, key string, initial int64, ttl time.Duration) (int64, error)
	// Get читает счётчик без изменения. found=false, если ключа нет.
	Get(ctx context.Context, key string) (value int64, ttl time.Duration, found bool, err error)
	// Keys перечисляет ключи по glob-шаблону (как в Redis SCAN MATCH).
	// Обязателен только вид "<экранированный литерал>*", его строит Flush.
	Keys(ctx context.Context, pattern string) ([]string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
