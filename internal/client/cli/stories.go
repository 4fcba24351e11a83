package cli

import (
	"context"
	"errors"
	"os"

	"storyline/internal/client/api"
	"storyline/internal/client/view"
)

// Names of the story views, recorded so a settled action can re-project
// whatever the user is currently looking at.
const (
	viewFeed      = "feed"
	viewFavorites = "favorites"
	viewMyStories = "mystories"
)

// ShowStories fetches a fresh feed snapshot and renders it.
func (a *App) ShowStories(ctx context.Context) error {
	if err := a.storyService.RefreshAll(ctx, a.state); err != nil {
		a.surface(ctx, err, "refreshing stories")
		return err
	}
	a.lastView = viewFeed
	a.renderList(view.ProjectFeed(a.state.Stories, a.state.User))
	return nil
}

// Submit prompts for the story fields and submits them. On success the
// feed is re-fetched so the new story renders with server data.
func (a *App) Submit(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Enter author", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "Enter url", os.Stdout)
	if err != nil {
		return err
	}

	draft := api.StoryDraft{Title: title, Author: author, URL: url}
	story, err := a.storyService.Submit(ctx, a.state, draft)
	if err != nil {
		a.surface(ctx, err, "submitting story")
		return err
	}
	printlnFn("Submitted story", story.StoryID)

	return a.ShowStories(ctx)
}

// ShowFavorites renders the favorites view from current user state.
func (a *App) ShowFavorites(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return nil
	}
	a.lastView = viewFavorites
	a.renderList(view.ProjectFavorites(a.state.User))
	return nil
}

// ShowMyStories renders the own-stories view from current user state.
func (a *App) ShowMyStories(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return nil
	}
	a.lastView = viewMyStories
	a.renderList(view.ProjectOwnStories(a.state.User))
	return nil
}

// Star toggles a story's favorite state using the two-phase protocol: the
// star flips immediately from the view's cached belief, the request
// settles in the background of the user's attention, and a failure flips
// it back so the view never stays divergent from the model.
func (a *App) Star(ctx context.Context, storyID string) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return nil
	}

	starred := a.starBelief[storyID]

	// Speculative flip for instant feedback.
	a.starBelief[storyID] = !starred
	printlnFn(starMarker(!starred), storyID)

	confirmed, err := a.storyService.ToggleFavorite(ctx, a.state, storyID, starred)

	// Commit on success, revert on failure; confirmed is the state the
	// star must show either way.
	a.starBelief[storyID] = confirmed
	if err != nil {
		if confirmed != !starred {
			printlnFn(starMarker(confirmed), storyID, "(reverted)")
		}
		a.surface(ctx, err, "toggling favorite")
		if errors.Is(err, api.ErrNotFound) {
			return a.refreshAfterStale(ctx)
		}
		return err
	}

	if a.lastView == viewFavorites {
		a.renderList(view.ProjectFavorites(a.state.User))
	}
	return nil
}

// Delete removes one of the user's own stories.
func (a *App) Delete(ctx context.Context, storyID string) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return nil
	}

	if err := a.storyService.Remove(ctx, a.state, storyID); err != nil {
		a.surface(ctx, err, "deleting story")
		if errors.Is(err, api.ErrNotFound) {
			return a.refreshAfterStale(ctx)
		}
		return err
	}

	printlnFn("Deleted story", storyID)
	a.lastView = viewMyStories
	a.renderList(view.ProjectOwnStories(a.state.User))
	return nil
}

// refreshAfterStale re-fetches the feed after acting on a stale story id
// and re-renders the view the user was last looking at.
func (a *App) refreshAfterStale(ctx context.Context) error {
	if err := a.storyService.RefreshAll(ctx, a.state); err != nil {
		a.surface(ctx, err, "refreshing stories")
		return err
	}
	switch a.lastView {
	case viewFavorites:
		a.renderList(view.ProjectFavorites(a.state.User))
	case viewMyStories:
		a.renderList(view.ProjectOwnStories(a.state.User))
	default:
		a.renderList(view.ProjectFeed(a.state.Stories, a.state.User))
	}
	return nil
}
