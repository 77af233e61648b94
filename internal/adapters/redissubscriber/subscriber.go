package redissubscriber

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/wolfeidau/node-quotas/internal/logger"
	"github.com/wolfeidau/node-quotas/internal/ports"
)

var ErrChannelClosed = errors.New("redis pubsub channel closed")

// CategoryUpdatesSubscriber слушает канал нотификаций и перечитывает категории квот.
type CategoryUpdatesSubscriber struct {
	rdb     *redis.Client
	channel string
	holder  ports.CategoryHolder
	log     *logger.Logger
}

func NewCategoryUpdatesSubscriber(
	rdb *redis.Client,
	holder ports.CategoryHolder,
	channel string,
	log *logger.Logger,
) *CategoryUpdatesSubscriber {
	if log == nil {
		log = logger.Discard()
	}
	return &CategoryUpdatesSubscriber{rdb: rdb, channel: channel, holder: holder, log: log}
}

// Start блокируется до отмены ctx или закрытия канала.
// Ошибка перезагрузки не останавливает подписку: продолжает работать прежний набор категорий.
func (s *CategoryUpdatesSubscriber) Start(ctx context.Context) error {
	pubsub := s.rdb.Subscribe(ctx, s.channel)
	defer pubsub.Close()
	ch := pubsub.Channel()

	s.log.InfoContext(ctx, "subscribed to category updates", "channel", s.channel)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ch: // в любом сообщении перезагружаем все категории
			if !ok {
				return ErrChannelClosed
			}

			if err := s.holder.ReloadCategories(ctx); err != nil {
				s.log.ErrorContext(ctx, "reload quota categories", "error", err)
			}
		}
	}
}
