package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ShowStories(ctx context.Context) error
	Submit(ctx context.Context) error
	ShowFavorites(ctx context.Context) error
	ShowMyStories(ctx context.Context) error
	Star(ctx context.Context, storyID string) error
	Delete(ctx context.Context, storyID string) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL is the storyline read-eval-print loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands:
//
//	Not logged in:
//	  - help            — show available commands
//	  - stories         — show the story feed
//	  - login           — authenticate
//	  - signup          — create an account
//	  - exit | quit     — leave the program
//
//	Logged in, additionally:
//	  - submit          — submit a new story
//	  - favorites       — show favorited stories
//	  - mystories       — show own submissions
//	  - star <storyId>  — toggle a story's favorite star
//	  - delete <storyId> — delete an own story
//	  - profile         — show account details
//	  - logout          — log out
//
// Errors returned by command handlers are ignored here; handlers surface
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("storyline %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: stories, submit, favorites, mystories, star <storyId>, delete <storyId>, profile, logout, exit")
			} else {
				printlnFn("Available commands: stories, login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "s", "stories":
			_ = a.ShowStories(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "favorites":
			_ = a.ShowFavorites(ctx)

		case "mystories":
			_ = a.ShowMyStories(ctx)

		case "star":
			if len(args) == 0 {
				printlnFn("Usage: star <storyId>")
				continue
			}
			_ = a.Star(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <storyId>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
