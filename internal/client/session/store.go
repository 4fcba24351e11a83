// Package session persists the authentication session (token + username)
// across process restarts. It is a plain key-value cache: nothing in here
// validates the token, and a broken or missing store is always treated by
// callers as "no session", never as a fatal condition.
package session

import (
	"context"

	"storyline/internal/client/models"
)

// Fixed keys under which the two session values are stored. They are
// written and cleared as a pair, never independently.
const (
	keyToken    = "token"
	keyUsername = "username"
)

// Store defines session persistence operations.
type Store interface {
	// Save persists the token/username pair, replacing any previous one.
	Save(ctx context.Context, token, username string) error

	// Load returns the stored session, or (nil, nil) when none exists.
	Load(ctx context.Context) (*models.Session, error)

	// Clear removes the stored pair. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
