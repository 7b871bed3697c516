// Package validation contains local checks applied to user input before
// anything is sent to the server.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput оборачивает все ошибки валидации
var ErrInvalidInput = errors.New("invalid input")

// ValidateRequired проверяет, что обязательное поле заполнено.
// Формат username проверяет сервер, локально он только обязателен.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s cannot be empty", field)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
