package quotaclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	quotasv1 "github.com/wolfeidau/node-quotas/api/quotas/v1"
)

type Client struct {
	conn   *grpc.ClientConn
	client quotasv1.QuotasClient
}

// Decision - ответ Check.
type Decision struct {
	Remaining int64
	Exhausted bool
}

// Counter - ответ Inspect.
type Counter struct {
	Remaining int64
	TTL       time.Duration
	Active    bool
}

type Category struct {
	Name    string
	Limit   int64
	Expires time.Duration
	Managed bool
}

// New создает новый gRPC-клиент для сервиса квот.
//
// address — например, "localhost:50051".
func New(address string) (*Client, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("quotaclient: dial %s: %w", address, err)
	}
	return NewFromConn(conn), nil
}

// NewFromConn - клиент поверх готового соединения. Close закроет и его.
func NewFromConn(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:   conn,
		client: quotasv1.NewQuotasClient(conn),
	}
}

// Close закрывает gRPC-соединение.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) Check(ctx context.Context, subject, category string) (Decision, error) {
	resp, err := c.client.Check(ctx, &quotasv1.CheckRequest{Subject: subject, Category: category})
	if err != nil {
		return Decision{}, err
	}
	return Decision{Remaining: resp.Remaining, Exhausted: resp.Exhausted}, nil
}

func (c *Client) Inspect(ctx context.Context, subject, category string) (Counter, error) {
	resp, err := c.client.Inspect(ctx, &quotasv1.InspectRequest{Subject: subject, Category: category})
	if err != nil {
		return Counter{}, err
	}
	return Counter{
		Remaining: resp.Remaining,
		TTL:       time.Duration(resp.TtlMs) * time.Millisecond,
		Active:    resp.Active,
	}, nil
}

func (c *Client) Reset(ctx context.Context, subject, category string) error {
	_, err := c.client.Reset(ctx, &quotasv1.ResetRequest{Subject: subject, Category: category})
	return err
}

// Flush возвращает количество удалённых счётчиков.
func (c *Client) Flush(ctx context.Context) (int64, error) {
	resp, err := c.client.Flush(ctx, &quotasv1.FlushRequest{})
	if err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

func (c *Client) Expiry(ctx context.Context, category string) (time.Duration, error) {
	resp, err := c.client.Expiry(ctx, &quotasv1.ExpiryRequest{Category: category})
	if err != nil {
		return 0, err
	}
	return time.Duration(resp.Seconds) * time.Second, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	resp, err := c.client.ListCategories(ctx, &quotasv1.ListCategoriesRequest{})
	if err != nil {
		return nil, err
	}
	cats := make([]Category, 0, len(resp.Categories))
	for _, pc := range resp.Categories {
		cats = append(cats, Category{
			Name:    pc.Name,
			Limit:   pc.Limit,
			Expires: time.Duration(pc.ExpiresSeconds) * time.Second,
			Managed: pc.Managed,
		})
	}
	return cats, nil
}

func (c *Client) SetCategory(ctx context.Context, name string, limit int64, expires time.Duration) error {
	_, err := c.client.SetCategory(ctx, &quotasv1.SetCategoryRequest{
		Name:           name,
		Limit:          limit,
		ExpiresSeconds: int64(expires / time.Second),
	})
	return err
}

func (c *Client) DeleteCategory(ctx context.Context, name string) error {
	_, err := c.client.DeleteCategory(ctx, &quotasv1.DeleteCategoryRequest{Name: name})
	return err
}
