package models

// Session is a persisted authentication identity: an opaque token plus the
// username it was issued for. A new login always produces a new Session;
// the token never mutates in place.
type Session struct {
	Token    string
	Username string
}

// User is the profile of the currently authenticated account, including the
// per-user story views the server maintains. At most one live User exists
// per session; it is mutated in place only after the server has confirmed
// the corresponding action.
type User struct {
	Username  string
	Name      string
	CreatedAt string

	// Favorites holds the user's favorited stories in server order.
	Favorites []Story

	// OwnStories holds the stories submitted by this user, server order.
	OwnStories []Story
}

// FavoriteIDs returns the set of favorited story ids. It is rebuilt on
// every call; membership is always derived from current state, never from
// a cached set that could go stale.
func (u *User) FavoriteIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(u.Favorites))
	for _, s := range u.Favorites {
		ids[s.StoryID] = struct{}{}
	}
	return ids
}

// IsFavorite reports whether the story with the given id is currently a
// favorite. Identity is the story id, never object equality, because the
// feed and the favorites view are fetched independently.
func (u *User) IsFavorite(storyID string) bool {
	if u == nil {
		return false
	}
	_, ok := u.FavoriteIDs()[storyID]
	return ok
}

// AddFavorite appends s to Favorites unless a story with the same id is
// already present. Call only after the server confirmed the addition.
func (u *User) AddFavorite(s Story) {
	if u.IsFavorite(s.StoryID) {
		return
	}
	u.Favorites = append(u.Favorites, s)
}

// RemoveFavorite deletes the story with the given id from Favorites, if
// present. Call only after the server confirmed the removal.
func (u *User) RemoveFavorite(storyID string) {
	for i, s := range u.Favorites {
		if s.StoryID == storyID {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return
		}
	}
}

// AddOwnStory records a confirmed submission by this user.
func (u *User) AddOwnStory(s Story) {
	u.OwnStories = append(u.OwnStories, s)
}

// RemoveOwnStory deletes a confirmed-deleted story from OwnStories and,
// should it also have been favorited, from Favorites.
func (u *User) RemoveOwnStory(storyID string) {
	for i, s := range u.OwnStories {
		if s.StoryID == storyID {
			u.OwnStories = append(u.OwnStories[:i], u.OwnStories[i+1:]...)
			break
		}
	}
	u.RemoveFavorite(storyID)
}

// Owns reports whether the user submitted the story with the given id.
func (u *User) Owns(storyID string) bool {
	if u == nil {
		return false
	}
	for _, s := range u.OwnStories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}
