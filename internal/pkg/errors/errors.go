package errors

import (
	"errors"
	"strings"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, нет прав).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов данных (например, занятый email).
	ErrConflict = errors.New("resource conflict")

	// ErrInvalidCredentials используется при неверной паре email/пароль.
	// Намеренно не различаем "нет такого пользователя" и "неверный пароль".
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError агрегирует все нарушения полей одного запроса.
// По контракту API клиент получает полный список сообщений, а не только первое.
type ValidationError struct {
	Messages []string
}

// NewValidationError создает ValidationError из списка сообщений
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Is позволяет errors.Is(err, ErrValidation) срабатывать для ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
