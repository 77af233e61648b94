package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyCategoryName = errors.New("category name is empty")
	ErrInvalidLimit      = errors.New("category limit must be positive")
	ErrInvalidExpiry     = errors.New("category expiry must be zero or at least 1ms")
	// Конфиг (viper) приводит ключи к нижнему регистру, поэтому имена с заглавными недостижимы
	ErrCategoryNameCase = errors.New("category name must be lower case")
)

// Category — именованный класс действий со своим лимитом и окном.
// Expires == 0 означает "использовать время жизни по умолчанию".
type Category struct {
	Name    string
	Limit   int64
	Expires time.Duration
}

func (c Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if c.Name != strings.ToLower(c.Name) {
		return ErrCategoryNameCase
	}
	if c.Limit <= 0 {
		return ErrInvalidLimit
	}
	if c.Expires < 0 || (c.Expires > 0 && c.Expires < time.Millisecond) {
		return ErrInvalidExpiry
	}
	return nil
}
