package postgresdb

import "errors"

var (
	// ErrEmptyDSN - не задан ни dsn, ни хост подключения.
	ErrEmptyDSN = errors.New("empty DSN")
	// ErrEmptyName обозначает пустое имя категории.
	ErrEmptyName = errors.New("category name is empty")
)
