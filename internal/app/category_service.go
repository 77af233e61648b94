package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wolfeidau/node-quotas/internal/domain"
	"github.com/wolfeidau/node-quotas/internal/ports"
	"github.com/wolfeidau/node-quotas/internal/quota"
)

type CategoryUseCase interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	SetCategory(ctx context.Context, name string, limit int64, expires time.Duration) error
	DeleteCategory(ctx context.Context, name string) error
}

// Проверка реализации интерфейса CategoryUseCase на этапе компиляции.
var _ CategoryUseCase = (*CategoryService)(nil)

type CategoryService struct {
	categoryRepo    ports.CategoryRepo
	updatePublisher ports.CategoryUpdatesPublisher
}

func NewCategoryService(
	categoryRepo ports.CategoryRepo,
	updatePublisher ports.CategoryUpdatesPublisher,
) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		updatePublisher: updatePublisher,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *CategoryService) SetCategory(ctx context.Context, name string, limit int64, expires time.Duration) error {
	c := domain.Category{Name: name, Limit: limit, Expires: expires}
	if err := c.Validate(); err != nil {
		return validationError(err)
	}
	if err := s.categoryRepo.UpsertCategory(ctx, c); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	// Сообщаем всем экземплярам об изменении категорий
	if err := s.updatePublisher.PublishCategoriesUpdated(ctx); err != nil {
		return fmt.Errorf("publish categories update: %w", err)
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, name string) error {
	if name == "" {
		return &quota.ValidationError{Field: "name"}
	}
	if err := s.categoryRepo.DeleteCategory(ctx, name); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if err := s.updatePublisher.PublishCategoriesUpdated(ctx); err != nil {
		return fmt.Errorf("publish categories update: %w", err)
	}
	return nil
}

// validationError переводит ошибки domain.Category.Validate в ValidationError с именем поля.
func validationError(err error) error {
	field := "category"
	switch err {
	case domain.ErrEmptyCategoryName, domain.ErrCategoryNameCase:
		field = "name"
	case domain.ErrInvalidLimit:
		field = "limit"
	case domain.ErrInvalidExpiry:
		field = "expires"
	}
	return &quota.ValidationError{Field: field, Reason: err.Error()}
}
