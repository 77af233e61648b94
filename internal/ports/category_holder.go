package ports

import "context"

// CategoryHolder — тот, кто держит действующий набор категорий и умеет его перечитать.
type CategoryHolder interface {
	ReloadCategories(ctx context.Context) error
}
