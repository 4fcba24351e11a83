package cli

import (
	"context"
	"fmt"
	"os"

	"storyline/internal/client/view"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the feed is
// re-rendered so the stars reflect the user's favorites.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, a.state, username, password); err != nil {
		a.surface(ctx, err, "login")
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s.", a.state.User.Username))
	a.renderList(view.ProjectFeed(a.state.Stories, a.state.User))
	return nil
}

// Signup prompts for account details and creates a new account, leaving
// the user logged in. A fresh account starts with no favorites and no
// submissions.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Signup(ctx, a.state, username, password, name); err != nil {
		a.surface(ctx, err, "signup")
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Logged in as %s.", a.state.User.Username))
	return nil
}

// Logout clears the stored session and returns to the logged-out state.
// The feed stays browsable.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx, a.state); err != nil {
		a.surface(ctx, err, "logout")
		return err
	}
	a.starBelief = make(map[string]bool)
	printlnFn("Logged out.")
	return nil
}

// Profile shows the account details of the logged-in user.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return nil
	}
	a.renderProfile(view.ProjectProfile(a.state.User))
	return nil
}
