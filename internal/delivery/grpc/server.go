package grpcserver

import (
	"context"
	"sort"
	"time"

	quotasv1 "github.com/wolfeidau/node-quotas/api/quotas/v1"
	"github.com/wolfeidau/node-quotas/internal/app"
)

var _ quotasv1.QuotasServer = (*Server)(nil)

type Server struct {
	quotasv1.UnimplementedQuotasServer
	quotas     app.QuotaUseCase
	categories app.CategoryUseCase
}

// NewServer: categories может быть nil - тогда методы администрирования категорий недоступны.
func NewServer(quotas app.QuotaUseCase, categories app.CategoryUseCase) *Server {
	return &Server{
		quotas:     quotas,
		categories: categories,
	}
}

func (s *Server) Check(ctx context.Context, req *quotasv1.CheckRequest) (*quotasv1.CheckResponse, error) {
	if s.quotas == nil {
		return nil, toStatus(ErrQuotasNotConfigured)
	}

	d, err := s.quotas.Check(ctx, req.Subject, req.Category)
	if err != nil {
		return nil, toStatus(err)
	}
	return &quotasv1.CheckResponse{Remaining: d.Remaining, Exhausted: d.Exhausted}, nil
}

func (s *Server) Inspect(ctx context.Context, req *quotasv1.InspectRequest) (*quotasv1.InspectResponse, error) {
	if s.quotas == nil {
		return nil, toStatus(ErrQuotasNotConfigured)
	}

	c, err := s.quotas.Inspect(ctx, req.Subject, req.Category)
	if err != nil {
		return nil, toStatus(err)
	}
	return &quotasv1.InspectResponse{
		Remaining: c.Remaining,
		TtlMs:     c.TTL.Milliseconds(),
		Active:    c.Active,
	}, nil
}

func (s *Server) Reset(ctx context.Context, req *quotasv1.ResetRequest) (*quotasv1.ResetResponse, error) {
	if s.quotas == nil {
		return nil, toStatus(ErrQuotasNotConfigured)
	}

	if err := s.quotas.Reset(ctx, req.Subject, req.Category); err != nil {
		return nil, toStatus(err)
	}
	return &quotasv1.ResetResponse{}, nil
}

func (s *Server) Flush(ctx context.Context, _ *quotasv1.FlushRequest) (*quotasv1.FlushResponse, error) {
	if s.quotas == nil {
		return nil, toStatus(ErrQuotasNotConfigured)
	}

	n, err := s.quotas.Flush(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &quotasv1.FlushResponse{Deleted: int64(n)}, nil
}

func (s *Server) Expiry(ctx context.Context, req *quotasv1.ExpiryRequest) (*quotasv1.ExpiryResponse, error) {
	if s.quotas == nil {
		return nil, toStatus(ErrQuotasNotConfigured)
	}

	d, err := s.quotas.Expiry(ctx, req.Category)
	if err != nil {
		return nil, toStatus(err)
	}
	return &quotasv1.ExpiryResponse{Seconds: int64(d / time.Second)}, nil
}

// ListCategories отдаёт действующие категории с окном, подставленным по умолчанию,
// и отмечает те, что хранятся в БД.
func (s *Server) ListCategories(
	ctx context.Context,
	_ *quotasv1.ListCategoriesRequest,
) (*quotasv1.ListCategoriesResponse, error) {
	if s.quotas == nil {
		return nil, toStatus(ErrQuotasNotConfigured)
	}

	managed := make(map[string]bool)
	if s.categories != nil {
		stored, err := s.categories.ListCategories(ctx)
		if err != nil {
			return nil, toStatus(err)
		}
		for _, c := range stored {
			managed[c.Name] = true
		}
	}

	live := s.quotas.Categories()
	resp := &quotasv1.ListCategoriesResponse{Categories: make([]*quotasv1.Category, 0, len(live))}
	for name, c := range live {
		exp, err := s.quotas.Expiry(ctx, name)
		if err != nil {
			return nil, toStatus(err)
		}
		resp.Categories = append(resp.Categories, &quotasv1.Category{
			Name:           name,
			Limit:          c.Limit,
			ExpiresSeconds: int64(exp / time.Second),
			Managed:        managed[name],
		})
	}
	sort.Slice(resp.Categories, func(i, j int) bool {
		return resp.Categories[i].Name < resp.Categories[j].Name
	})
	return resp, nil
}

func (s *Server) SetCategory(
	ctx context.Context,
	req *quotasv1.SetCategoryRequest,
) (*quotasv1.SetCategoryResponse, error) {
	if s.categories == nil {
		return nil, toStatus(ErrCategoriesNotConfigured)
	}

	expires := time.Duration(req.ExpiresSeconds) * time.Second
	if err := s.categories.SetCategory(ctx, req.Name, req.Limit, expires); err != nil {
		return nil, toStatus(err)
	}
	return &quotasv1.SetCategoryResponse{}, nil
}

func (s *Server) DeleteCategory(
	ctx context.Context,
	req *quotasv1.DeleteCategoryRequest,
) (*quotasv1.DeleteCategoryResponse, error) {
	if s.categories == nil {
		return nil, toStatus(ErrCategoriesNotConfigured)
	}

	if err := s.categories.DeleteCategory(ctx, req.Name); err != nil {
		return nil, toStatus(err)
	}
	return &quotasv1.DeleteCategoryResponse{}, nil
}
