package ports

import (
	"context"

	"github.com/wolfeidau/node-quotas/internal/domain"
)

// CategoryRepo — абстракция для хранения категорий квот (лимит и время жизни счётчика).
type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpsertCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, name string) error
}
