package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wolfeidau/node-quotas/internal/domain"
	"github.com/wolfeidau/node-quotas/internal/ports"
)

var _ ports.CategoryRepo = (*CategoriesDB)(nil)

type CategoriesDB struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
}

func NewCategoriesDB() *CategoriesDB {
	return &CategoriesDB{categories: make(map[string]domain.Category)}
}

func (db *CategoriesDB) ListCategories(_ context.Context) ([]domain.Category, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]domain.Category, 0, len(db.categories))
	for _, c := range db.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (db *CategoriesDB) UpsertCategory(_ context.Context, c domain.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.categories[c.Name] = c
	return nil
}

// DeleteCategory не считает ошибкой удаление несуществующей категории.
func (db *CategoriesDB) DeleteCategory(_ context.Context, name string) error {
	if name == "" {
		return domain.ErrEmptyCategoryName
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.categories, name)
	return nil
}
