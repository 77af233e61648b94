package categoryupdatepublisher

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/wolfeidau/node-quotas/internal/ports"
)

var _ ports.CategoryUpdatesPublisher = (*RedisCategoryUpdatesPublisher)(nil)

// ReloadMessage - содержимое сообщения не важно, подписчики перечитывают все категории.
const ReloadMessage = "reload"

type RedisCategoryUpdatesPublisher struct {
	rdb     *redis.Client
	channel string
}

func (p *RedisCategoryUpdatesPublisher) PublishCategoriesUpdated(ctx context.Context) error {
	return p.rdb.Publish(ctx, p.channel, ReloadMessage).Err()
}

func NewRedisCategoryUpdatesPublisher(
	rdb *redis.Client,
	channel string,
) *RedisCategoryUpdatesPublisher {
	return &RedisCategoryUpdatesPublisher{rdb: rdb, channel: channel}
}
