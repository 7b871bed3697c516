package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsValid проверяет форму JWT: ровно три непустых сегмента, разделенных точкой.
// Подпись и срок действия не проверяются.
func IsValid(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// TokenExpiry читает claim exp без проверки подписи.
// Возвращает false, если claims не разбираются или exp отсутствует.
func TokenExpiry(token string) (time.Time, bool) {
	if !IsValid(token) {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// Expired сообщает, что у токена есть exp и он наступил к моменту now
func Expired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	return ok && !now.Before(exp)
}
