package cli

import (
	"fmt"

	"storyline/internal/client/view"
)

// starMarker renders the terminal stand-in for the star icon.
func starMarker(starred bool) string {
	if starred {
		return "[*]"
	}
	return "[ ]"
}

// renderList prints a projected story list and refreshes the star-belief
// cache from what was actually shown.
func (a *App) renderList(l view.List) {
	printlnFn(fmt.Sprintf("== %s ==", l.Title))

	if l.Placeholder != "" {
		printlnFn(l.Placeholder)
		return
	}

	for _, item := range l.Items {
		marker := ""
		switch {
		case item.Affordance == view.AffordanceDelete:
			marker = "[d]"
		case item.Star == view.StarStarred:
			marker = starMarker(true)
			a.starBelief[item.StoryID] = true
		case item.Star == view.StarUnstarred:
			marker = starMarker(false)
			a.starBelief[item.StoryID] = false
		case item.Star == view.StarNone:
			marker = "   "
		}

		line := fmt.Sprintf("%s %s  %s (%s) by %s | posted by %s",
			marker, item.StoryID, item.Title, item.Host, item.Author, item.PostedBy)
		printlnFn(line)
	}
}

// renderProfile prints the user-profile view.
func (a *App) renderProfile(p view.Profile) {
	printlnFn("Name:", p.Name)
	printlnFn("Username:", p.Username)
	printlnFn("Account Created:", p.AccountDate)
}
