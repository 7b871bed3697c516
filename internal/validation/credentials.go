package validation

import (
	"regexp"
	"strings"
)

// EmailPattern упрощенная проверка формы email: local@domain.tld
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail проверяет форму email
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return invalid("email %q is not a valid address", email)
	}

	return nil
}

// ValidatePassword проверяет, что пароль задан.
// Требования к сложности проверяет сервер.
func ValidatePassword(password string) error {
	if password == "" {
		return invalid("password cannot be empty")
	}
	return nil
}

// ValidatePasswordConfirmation проверяет совпадение пароля и подтверждения
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return invalid("passwords do not match")
	}
	return nil
}
