package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wolfeidau/node-quotas/internal/domain"
)

func TestCategoriesDB(t *testing.T) {
	db := NewCategoriesDB()
	ctx := context.Background()

	if err := db.UpsertCategory(ctx, domain.Category{Name: "sms", Limit: 5}); err != nil {
		t.Fatalf("UpsertCategory: %v", err)
	}
	if err := db.UpsertCategory(ctx, domain.Category{Name: "emails", Limit: 100, Expires: time.Hour}); err != nil {
		t.Fatalf("UpsertCategory: %v", err)
	}
	if err := db.UpsertCategory(ctx, domain.Category{Name: "sms", Limit: 7}); err != nil {
		t.Fatalf("UpsertCategory overwrite: %v", err)
	}

	got, err := db.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(got) != 2 || got[0].Name != "emails" || got[1].Name != "sms" || got[1].Limit != 7 {
		t.Fatalf("unexpected categories: %+v", got)
	}

	if err := db.DeleteCategory(ctx, "sms"); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	got, _ = db.ListCategories(ctx)
	if len(got) != 1 {
		t.Fatalf("expected one category after delete, got %+v", got)
	}
}

func TestCategoriesDB_Validation(t *testing.T) {
	db := NewCategoriesDB()
	ctx := context.Background()

	if err := db.UpsertCategory(ctx, domain.Category{Name: "x", Limit: 0}); !errors.Is(err, domain.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
	if err := db.DeleteCategory(ctx, ""); !errors.Is(err, domain.ErrEmptyCategoryName) {
		t.Fatalf("expected ErrEmptyCategoryName, got %v", err)
	}
}
