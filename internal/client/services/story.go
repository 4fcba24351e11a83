package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storyline/internal/client/api"
	"storyline/internal/client/models"
	"storyline/internal/logging"
)

// ErrToggleInFlight is returned when a favorite toggle is requested for a
// story whose previous toggle has not settled yet. Callers should leave
// the star as is and try again once the first request resolves.
var ErrToggleInFlight = errors.New("favorite toggle already in flight")

// ErrNotLoggedIn is returned by operations that require an authenticated
// session when none is active.
var ErrNotLoggedIn = errors.New("not logged in")

// StoryService keeps the story collection and the per-user views in sync
// with the server. State is mutated only after the server confirms an
// action; a failed call leaves the state exactly as it was.
type StoryService interface {
	// RefreshAll replaces the feed with a fresh snapshot. Never incremental.
	RefreshAll(ctx context.Context, st *State) error

	// Submit creates a story and, on confirmation, inserts the returned
	// story (with its server-assigned id) into the feed and OwnStories.
	Submit(ctx context.Context, st *State, draft api.StoryDraft) (models.Story, error)

	// Remove deletes an own story and, on confirmation, removes it from
	// the feed, OwnStories and Favorites.
	Remove(ctx context.Context, st *State, storyID string) error

	// AddFavorite and RemoveFavorite mutate Favorites only on confirmed
	// success; on failure Favorites is untouched and the error propagates.
	AddFavorite(ctx context.Context, st *State, storyID string) error
	RemoveFavorite(ctx context.Context, st *State, storyID string) error

	// ToggleFavorite settles a speculative star flip. starred is the
	// view's pre-toggle belief. The returned value is the state the star
	// must show after settling: the flipped state on success, the
	// original one on failure (together with the error).
	ToggleFavorite(ctx context.Context, st *State, storyID string, starred bool) (bool, error)
}

type storyService struct {
	client api.Client
	log    logging.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewStoryService constructs a StoryService over the given gateway.
func NewStoryService(client api.Client, log logging.Logger) StoryService {
	return &storyService{
		client:   client,
		log:      log,
		inFlight: make(map[string]struct{}),
	}
}

func (s *storyService) RefreshAll(ctx context.Context, st *State) error {
	stories, err := s.client.ListStories(ctx)
	if err != nil {
		return fmt.Errorf("refreshing stories: %w", err)
	}
	st.Stories.Replace(stories)
	s.log.Debug(ctx, "feed refreshed", "stories", len(stories))
	return nil
}

func (s *storyService) Submit(ctx context.Context, st *State, draft api.StoryDraft) (models.Story, error) {
	if !st.LoggedIn() {
		return models.Story{}, fmt.Errorf("submit: %w", ErrNotLoggedIn)
	}

	story, err := s.client.CreateStory(ctx, st.Session.Token, draft)
	if err != nil {
		return models.Story{}, fmt.Errorf("submit: %w", err)
	}

	st.Stories.Prepend(story)
	st.User.AddOwnStory(story)
	s.log.Info(ctx, "story submitted", "storyId", story.StoryID, "title", story.Title)
	return story, nil
}

func (s *storyService) Remove(ctx context.Context, st *State, storyID string) error {
	if !st.LoggedIn() {
		return fmt.Errorf("remove story: %w", ErrNotLoggedIn)
	}

	if err := s.client.DeleteStory(ctx, st.Session.Token, storyID); err != nil {
		return fmt.Errorf("remove story %s: %w", storyID, err)
	}

	st.Stories.Remove(storyID)
	st.User.RemoveOwnStory(storyID)
	s.log.Info(ctx, "story removed", "storyId", storyID)
	return nil
}

func (s *storyService) AddFavorite(ctx context.Context, st *State, storyID string) error {
	if !st.LoggedIn() {
		return fmt.Errorf("add favorite: %w", ErrNotLoggedIn)
	}

	// The favorite must reference a story from the current snapshot;
	// a stale id is reported the same way the server would report it.
	story, ok := st.Stories.ByID(storyID)
	if !ok {
		return fmt.Errorf("add favorite: story %s not in current feed: %w", storyID, api.ErrNotFound)
	}

	if err := s.client.AddFavorite(ctx, st.Session.Token, st.User.Username, storyID); err != nil {
		return fmt.Errorf("add favorite %s: %w", storyID, err)
	}

	st.User.AddFavorite(story)
	s.log.Debug(ctx, "favorite added", "storyId", storyID)
	return nil
}

func (s *storyService) RemoveFavorite(ctx context.Context, st *State, storyID string) error {
	if !st.LoggedIn() {
		return fmt.Errorf("remove favorite: %w", ErrNotLoggedIn)
	}

	// Removing a story that is not favorited is rejected locally; the
	// favorites list is left untouched either way.
	if !st.User.IsFavorite(storyID) {
		return fmt.Errorf("remove favorite: story %s not favorited: %w", storyID, api.ErrNotFound)
	}

	if err := s.client.RemoveFavorite(ctx, st.Session.Token, st.User.Username, storyID); err != nil {
		return fmt.Errorf("remove favorite %s: %w", storyID, err)
	}

	st.User.RemoveFavorite(storyID)
	s.log.Debug(ctx, "favorite removed", "storyId", storyID)
	return nil
}

// ToggleFavorite serializes toggles per story id: while one request for a
// story is unsettled, further toggles for the same story are rejected with
// ErrToggleInFlight so a slow response can never overwrite a newer state.
func (s *storyService) ToggleFavorite(ctx context.Context, st *State, storyID string, starred bool) (bool, error) {
	if !s.acquire(storyID) {
		return starred, fmt.Errorf("toggle favorite %s: %w", storyID, ErrToggleInFlight)
	}
	defer s.release(storyID)

	var err error
	if starred {
		err = s.RemoveFavorite(ctx, st, storyID)
	} else {
		err = s.AddFavorite(ctx, st, storyID)
	}
	if err != nil {
		// Model and server are still consistent; the caller reverts the
		// speculative star to the pre-toggle state.
		return starred, err
	}
	return !starred, nil
}

func (s *storyService) acquire(storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[storyID]; busy {
		return false
	}
	s.inFlight[storyID] = struct{}{}
	return true
}

func (s *storyService) release(storyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, storyID)
}
