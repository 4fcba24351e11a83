// Package view projects domain state into render instructions. Projection
// is always a full rebuild from the current state, so a rendered list can
// never drift from what the model holds. The package knows nothing about
// terminals or markup; renderers consume the instruction values.
package view

import (
	"storyline/internal/client/models"
)

// Star is the favorite marker state of a list item.
type Star int

const (
	// StarNone means the item renders without a favorite marker
	// (logged-out feed, or the marker is replaced by another affordance).
	StarNone Star = iota
	// StarUnstarred renders an empty star.
	StarUnstarred
	// StarStarred renders a filled star.
	StarStarred
)

// Affordance is the action attached to a list item.
type Affordance int

const (
	// AffordanceToggleFavorite lets the user flip the story's star.
	AffordanceToggleFavorite Affordance = iota
	// AffordanceDelete replaces the star with a delete control on the
	// own-stories view.
	AffordanceDelete
)

// Item is one renderable story row.
type Item struct {
	StoryID    string
	Title      string
	URL        string
	Host       string
	Author     string
	PostedBy   string
	Star       Star
	Affordance Affordance
}

// List is a complete render instruction set for one story view. When
// Placeholder is non-empty the Items slice is empty and the placeholder
// text renders instead of a list.
type List struct {
	Title       string
	Items       []Item
	Placeholder string
}

// Profile is the render instruction set for the user-profile view.
// AccountDate carries only the date part of the creation timestamp.
type Profile struct {
	Name        string
	Username    string
	AccountDate string
}

// ProjectFeed builds the main feed view. Star state is derived fresh from
// the user's favorites by story id; a nil user renders without stars.
func ProjectFeed(col *models.StoryCollection, user *models.User) List {
	items := make([]Item, 0, col.Len())
	for _, s := range col.Stories {
		items = append(items, storyItem(s, user))
	}
	return List{Title: "All Stories", Items: items}
}

// ProjectFavorites builds the favorites view. An empty favorites set
// renders a placeholder instead of an empty list.
func ProjectFavorites(user *models.User) List {
	if user == nil || len(user.Favorites) == 0 {
		return List{Title: "Favorites", Placeholder: "No Favorites added!"}
	}
	items := make([]Item, 0, len(user.Favorites))
	for _, s := range user.Favorites {
		items = append(items, storyItem(s, user))
	}
	return List{Title: "Favorites", Items: items}
}

// ProjectOwnStories builds the my-stories view, where the star is replaced
// by a delete affordance.
func ProjectOwnStories(user *models.User) List {
	if user == nil || len(user.OwnStories) == 0 {
		return List{Title: "My Stories", Placeholder: "No Stories added by user yet"}
	}
	items := make([]Item, 0, len(user.OwnStories))
	for _, s := range user.OwnStories {
		item := storyItem(s, user)
		item.Star = StarNone
		item.Affordance = AffordanceDelete
		items = append(items, item)
	}
	return List{Title: "My Stories", Items: items}
}

// ProjectProfile builds the profile view for a logged-in user.
func ProjectProfile(user *models.User) Profile {
	date := user.CreatedAt
	if len(date) > 10 {
		date = date[:10]
	}
	return Profile{Name: user.Name, Username: user.Username, AccountDate: date}
}

func storyItem(s models.Story, user *models.User) Item {
	star := StarNone
	if user != nil {
		if user.IsFavorite(s.StoryID) {
			star = StarStarred
		} else {
			star = StarUnstarred
		}
	}
	return Item{
		StoryID:    s.StoryID,
		Title:      s.Title,
		URL:        s.URL,
		Host:       s.Host(),
		Author:     s.Author,
		PostedBy:   s.Username,
		Star:       star,
		Affordance: AffordanceToggleFavorite,
	}
}
