package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"storyline/internal/client/api"
	"storyline/internal/client/config"
	"storyline/internal/client/services"
	"storyline/internal/client/session"
	"storyline/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services to the interactive terminal client. It owns the
// application state plus the star-belief cache: the last star state shown
// per story, which plays the role the icon class plays in a browser UI.
type App struct {
	config       *config.Config
	log          logging.Logger
	authService  services.AuthService
	storyService services.StoryService

	state *services.State

	// starBelief is the view's cached belief about each story's star, as
	// last rendered or speculatively flipped. Display only; membership
	// decisions are always recomputed from the model.
	starBelief map[string]bool

	// lastView names the story view most recently rendered, so settled
	// actions can re-project it.
	lastView string

	reader *bufio.Reader
}

// NewApp builds a fully wired App from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	db, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)

	as := services.NewAuthService(apiClient, store, log)
	ss := services.NewStoryService(apiClient, log)

	return &App{
		config:       cfg,
		log:          log,
		authService:  as,
		storyService: ss,
		state:        services.NewState(),
		starBelief:   make(map[string]bool),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a previous session if possible, fetches the feed, and
// hands control to the REPL. Stories are shown whether or not a session
// was restored; browsing works logged out.
func (a *App) Run(ctx context.Context) {
	if a.authService.Restore(ctx, a.state) {
		printlnFn(fmt.Sprintf("Welcome back, %s!", a.state.User.Username))
	}

	if err := a.ShowStories(ctx); err != nil {
		a.surface(ctx, err, "fetching stories")
	}

	printlnFn("Welcome to storyline (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.state.LoggedIn()
}

func (a *App) getStatus() string {
	if a.state.LoggedIn() {
		return "(" + a.state.User.Username + ")"
	}
	return ""
}

// surface reports an error per the client's error-handling policy:
// everything is logged, the user sees a category-appropriate message, and
// an unauthorized response drops the local session.
func (a *App) surface(ctx context.Context, err error, doing string) {
	a.log.Error(ctx, doing+" failed", "error", err)

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		printlnFn("Your session is no longer valid. Please log in again.")
		if logoutErr := a.authService.Logout(ctx, a.state); logoutErr != nil {
			a.log.Warn(ctx, "clearing session failed", "error", logoutErr)
		}
	case errors.Is(err, api.ErrValidation):
		printlnFn("Invalid input:", err.Error())
	case errors.Is(err, api.ErrNotFound):
		printlnFn("That story no longer exists; refreshing.")
	case errors.Is(err, services.ErrToggleInFlight):
		printlnFn("That star is still being updated, try again in a moment.")
	case errors.Is(err, services.ErrNotLoggedIn):
		printlnFn("You need to log in first.")
	default:
		printlnFn("The story service could not be reached. Please try again later.")
	}
}
