// Package api is the typed gateway to the remote story service. It exposes
// one operation per server action and translates transport and status
// failures into the sentinel errors of this package. There are no retries;
// failures surface immediately and the caller decides what to do.
package api

import (
	"context"

	"storyline/internal/client/models"
)

// AuthResult is the payload of a successful login or signup: the issued
// session token plus the full profile, with favorites and own stories
// already populated.
type AuthResult struct {
	Token string
	User  *models.User
}

// StoryDraft carries the user-entered fields of a new submission. The
// server assigns the story id and the owning username.
type StoryDraft struct {
	Author string
	Title  string
	URL    string
}

// Client defines the remote operations the client depends on.
//
// All methods honor context cancellation. Errors are values from errors.go
// (possibly wrapped); match with errors.Is.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Signup(ctx context.Context, username, password, name string) (*AuthResult, error)
	GetUser(ctx context.Context, token, username string) (*models.User, error)
	ListStories(ctx context.Context) ([]models.Story, error)
	CreateStory(ctx context.Context, token string, draft StoryDraft) (models.Story, error)
	DeleteStory(ctx context.Context, token, storyID string) error
	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
