package categoryupdatepublisher

import (
	"context"

	"github.com/wolfeidau/node-quotas/internal/ports"
)

var _ ports.CategoryUpdatesPublisher = (*LocalCategoryUpdatesPublisher)(nil)

// LocalCategoryUpdatesPublisher - для локального режима: один экземпляр, перечитываем сразу.
type LocalCategoryUpdatesPublisher struct {
	holder ports.CategoryHolder
}

func (p *LocalCategoryUpdatesPublisher) PublishCategoriesUpdated(ctx context.Context) error {
	return p.holder.ReloadCategories(ctx)
}

func NewLocalCategoryUpdatesPublisher(
	holder ports.CategoryHolder,
) *LocalCategoryUpdatesPublisher {
	return &LocalCategoryUpdatesPublisher{
		holder: holder,
	}
}
