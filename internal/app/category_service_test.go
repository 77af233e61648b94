package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wolfeidau/node-quotas/internal/quota"
)

type fakePublisher struct {
	called bool
	err    error
}

func (f *fakePublisher) PublishCategoriesUpdated(_ context.Context) error {
	f.called = true
	return f.err
}

func TestCategoryService_SetDelete(t *testing.T) {
	tests := []struct {
		name string
		call func(s *CategoryService) error
	}{
		{"SetCategory", func(s *CategoryService) error {
			return s.SetCategory(context.Background(), "emails", 100, time.Hour)
		}},
		{"DeleteCategory", func(s *CategoryService) error {
			return s.DeleteCategory(context.Background(), "emails")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCategoryRepo{}
			pub := &fakePublisher{}
			s := NewCategoryService(repo, pub)

			if err := tc.call(s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.upserted == nil && repo.deleted == "" {
				t.Fatalf("expected repo to be called")
			}
			if !pub.called {
				t.Fatalf("expected publisher to be called")
			}
		})
	}
}

func TestCategoryService_SetCategoryStoresValues(t *testing.T) {
	repo := &fakeCategoryRepo{}
	s := NewCategoryService(repo, &fakePublisher{})

	if err := s.SetCategory(context.Background(), "sms", 5, 0); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if repo.upserted.Name != "sms" || repo.upserted.Limit != 5 || repo.upserted.Expires != 0 {
		t.Fatalf("unexpected category stored: %+v", repo.upserted)
	}
}

func TestCategoryService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cat     string
		limit   int64
		expires time.Duration
		field   string
	}{
		{"empty name", "", 1, 0, "name"},
		{"zero limit", "sms", 0, 0, "limit"},
		{"negative expiry", "sms", 1, -time.Second, "expires"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCategoryRepo{}
			pub := &fakePublisher{}
			s := NewCategoryService(repo, pub)

			err := s.SetCategory(context.Background(), tc.cat, tc.limit, tc.expires)
			var ve *quota.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected ValidationError on %q, got %v", tc.field, err)
			}
			if repo.upserted != nil || pub.called {
				t.Fatalf("invalid input must not reach the repo or publisher")
			}
		})
	}

	s := NewCategoryService(&fakeCategoryRepo{}, &fakePublisher{})
	if err := s.DeleteCategory(context.Background(), ""); !quota.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCategoryService_Errors(t *testing.T) {
	repoErr := errors.New("repo error")
	pubErr := errors.New("publish error")

	t.Run("repo error skips publish", func(t *testing.T) {
		pub := &fakePublisher{}
		s := NewCategoryService(&fakeCategoryRepo{err: repoErr}, pub)
		if err := s.SetCategory(context.Background(), "sms", 1, 0); !errors.Is(err, repoErr) {
			t.Fatalf("expected repo error, got %v", err)
		}
		if pub.called {
			t.Fatalf("publisher must not be called after repo failure")
		}
	})

	t.Run("publish error", func(t *testing.T) {
		s := NewCategoryService(&fakeCategoryRepo{}, &fakePublisher{err: pubErr})
		if err := s.DeleteCategory(context.Background(), "sms"); !errors.Is(err, pubErr) {
			t.Fatalf("expected publish error, got %v", err)
		}
	})

	t.Run("list error", func(t *testing.T) {
		s := NewCategoryService(&fakeCategoryRepo{listErr: repoErr}, &fakePublisher{})
		if _, err := s.ListCategories(context.Background()); !errors.Is(err, repoErr) {
			t.Fatalf("expected list error, got %v", err)
		}
	})
}
