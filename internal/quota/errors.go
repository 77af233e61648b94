package quota

import (
	"errors"
	"fmt"
)

// ErrQuotaExhausted возвращается в режиме ExhaustionReject, когда остаток после списания <= 0.
var ErrQuotaExhausted = errors.New("quota exhausted")

// ConfigurationError — ошибка конфигурации менеджера. Возникает синхронно, до обращения к хранилищу.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "quota configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationError — пустой или недопустимый аргумент операции.
type ValidationError struct {
	Field string
	// Reason пуст для отсутствующего обязательного аргумента
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return "quota validation: " + e.Field + " is required"
	}
	return "quota validation: " + e.Field + ": " + e.Reason
}

// StoreError оборачивает любую ошибку хранилища счётчиков.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("quota store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("quota store %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ExhaustedError несёт остаток, на котором сработал отказ.
type ExhaustedError struct {
	Subject   string
	Category  string
	Remaining int64
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s for %s/%s (remaining %d)", ErrQuotaExhausted, e.Subject, e.Category, e.Remaining)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrQuotaExhausted
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
