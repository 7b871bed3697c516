package auth

import (
	"context"

	"github.com/iudanet/fitkeeper/internal/models"
)

//go:generate moq -out session_store_mock.go . SessionStore

// SessionStore is the part of TokenStore used by the profile cache,
// the mutation dispatcher and the session guard
type SessionStore interface {
	// CurrentToken returns the access token, rehydrating from storage
	// when the in-memory copy is missing
	CurrentToken(ctx context.Context) string

	// Session returns a copy of the current session
	Session(ctx context.Context) models.Session

	// SetSession atomically replaces the persisted and in-memory session
	SetSession(ctx context.Context, user *models.User, accessToken, refreshToken string) error

	// ClearSession removes every session key. Idempotent.
	ClearSession(ctx context.Context) error
}
