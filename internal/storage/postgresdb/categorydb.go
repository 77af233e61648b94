package postgresdb

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib" // register pgx driver
	"github.com/jmoiron/sqlx"

	"github.com/wolfeidau/node-quotas/internal/config"
	"github.com/wolfeidau/node-quotas/internal/domain"
	"github.com/wolfeidau/node-quotas/internal/ports"
)

var _ ports.CategoryRepo = (*CategoryDB)(nil)

type categoryRow struct {
	Name           string `db:"name"`
	QuotaLimit     int64  `db:"quota_limit"`
	ExpiresSeconds int64  `db:"expires_seconds"`
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{
		Name:    r.Name,
		Limit:   r.QuotaLimit,
		Expires: time.Duration(r.ExpiresSeconds) * time.Second,
	}
}

type CategoryDB struct {
	db *sqlx.DB
}

func (s *CategoryDB) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const query = `
	SELECT name, quota_limit, expires_seconds
	FROM quota_categories
	ORDER BY name`
	var rows []categoryRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	cats := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		cats = append(cats, r.toDomain())
	}
	return cats, nil
}

func (s *CategoryDB) UpsertCategory(ctx context.Context, c domain.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	const query = `
    INSERT INTO quota_categories (name, quota_limit, expires_seconds)
    VALUES (:name, :quota_limit, :expires_seconds)
    ON CONFLICT (name) DO UPDATE
    SET quota_limit = EXCLUDED.quota_limit,
        expires_seconds = EXCLUDED.expires_seconds,
        updated_at = now()`

	_, err := s.db.NamedExecContext(ctx, query, categoryRow{
		Name:           c.Name,
		QuotaLimit:     c.Limit,
		ExpiresSeconds: int64(c.Expires / time.Second),
	})
	return err
}

func (s *CategoryDB) DeleteCategory(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	const query = `
    DELETE FROM quota_categories
    WHERE name = $1`

	// На количество строк не проверяем, факт непосредственного удаления не важен
	_, err := s.db.ExecContext(ctx, query, name)
	return err
}

func (s *CategoryDB) Close() error {
	return s.db.Close()
}

func NewCategoryDB(cfg config.Database) (*CategoryDB, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	// Настраиваем пул соединений
	db.SetMaxOpenConns(cfg.Postgresql.Pool.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgresql.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgresql.Pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Postgresql.Pool.ConnMaxIdleTime)

	return &CategoryDB{db: db}, nil
}

// DSN собирает строку подключения. Если в конфиге задан dsn, остальные поля игнорируются.
func DSN(cfg config.Database) (string, error) {
	pg := cfg.Postgresql
	if pg.Dsn != "" {
		return pg.Dsn, nil
	}
	if pg.Host == "" {
		return "", ErrEmptyDSN
	}

	u := url.URL{Scheme: "postgres", Host: pg.Host, Path: "/" + pg.Name}
	if pg.Port != 0 {
		u.Host = net.JoinHostPort(pg.Host, strconv.Itoa(pg.Port))
	}
	// пароль экранируется: '@', ':' и '/' в нём не ломают строку
	switch {
	case pg.Password != "":
		u.User = url.UserPassword(pg.User, pg.Password)
	case pg.User != "":
		u.User = url.User(pg.User)
	}
	return u.String(), nil
}

func OpenDB(cfg config.Database) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
