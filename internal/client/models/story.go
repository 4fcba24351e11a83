// Package models defines client-side data models for the storyline CLI.
package models

import "strings"

// Story is a single submitted link as returned by the server.
// It is immutable once created; StoryID is the server-assigned identity
// and the only key used for membership tests anywhere in the client.
type Story struct {
	// StoryID is the globally unique, server-assigned identifier.
	StoryID string

	// Author is the free-form author credit entered on submission.
	Author string

	// Title is the headline shown in story lists.
	Title string

	// URL is the submitted link.
	URL string

	// Username is the account that submitted the story.
	Username string

	// CreatedAt is the server-side creation timestamp, RFC 3339.
	CreatedAt string
}

// Host returns the display host of the story URL ("example.com" for
// "https://www.example.com/a"). An empty URL yields an empty string.
func (s Story) Host() string {
	return HostName(s.URL)
}

// HostName derives the display host from a URL: the authority part with a
// leading "www." stripped.
func HostName(url string) string {
	var host string
	if strings.Contains(url, "://") {
		parts := strings.SplitN(url, "/", 4)
		if len(parts) < 3 {
			return ""
		}
		host = parts[2]
	} else {
		host = strings.SplitN(url, "/", 2)[0]
	}
	return strings.TrimPrefix(host, "www.")
}

// StoryCollection is the shared "all stories" feed. It is only ever
// replaced wholesale by a fetch, never merged, so its contents are always
// a consistent snapshot as of the last fetch.
type StoryCollection struct {
	Stories []Story
}

// NewStoryCollection returns a collection over the given snapshot.
func NewStoryCollection(stories []Story) *StoryCollection {
	return &StoryCollection{Stories: stories}
}

// Replace swaps in a freshly fetched snapshot.
func (c *StoryCollection) Replace(stories []Story) {
	c.Stories = stories
}

// ByID returns the story with the given id, or false if absent.
func (c *StoryCollection) ByID(storyID string) (Story, bool) {
	for _, s := range c.Stories {
		if s.StoryID == storyID {
			return s, true
		}
	}
	return Story{}, false
}

// Prepend inserts a story at the head of the feed. New submissions land
// here so they render first, matching the feed order of a full fetch.
func (c *StoryCollection) Prepend(s Story) {
	c.Stories = append([]Story{s}, c.Stories...)
}

// Remove deletes the story with the given id, if present.
func (c *StoryCollection) Remove(storyID string) {
	for i, s := range c.Stories {
		if s.StoryID == storyID {
			c.Stories = append(c.Stories[:i], c.Stories[i+1:]...)
			return
		}
	}
}

// Len returns the number of stories in the snapshot.
func (c *StoryCollection) Len() int {
	return len(c.Stories)
}
