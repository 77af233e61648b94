package ports

import "context"

type CategoryUpdatesPublisher interface {
	PublishCategoriesUpdated(ctx context.Context) error
}
