// Package services contains the application services of the storyline
// client: session lifecycle (auth) and story-collection synchronization.
// Together they own the application state and guarantee that in-memory
// state only ever reflects server-confirmed mutations.
package services

import "storyline/internal/client/models"

// State is the explicit application state for one run of the client.
// Login/signup populate Session and User; logout resets both. Stories is
// the shared feed snapshot and is always present (possibly empty), because
// logged-out browsing is allowed.
type State struct {
	Session *models.Session
	User    *models.User
	Stories *models.StoryCollection
}

// NewState returns an anonymous state with an empty feed.
func NewState() *State {
	return &State{Stories: models.NewStoryCollection(nil)}
}

// LoggedIn reports whether a confirmed session is active.
func (s *State) LoggedIn() bool {
	return s.Session != nil && s.User != nil
}

// Reset drops the authenticated identity, keeping the feed snapshot so the
// story list stays browsable after logout.
func (s *State) Reset() {
	s.Session = nil
	s.User = nil
}
