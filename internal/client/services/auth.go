package services

import (
	"context"
	"errors"
	"fmt"

	"storyline/internal/client/api"
	"storyline/internal/client/models"
	"storyline/internal/client/session"
	"storyline/internal/logging"
)

// AuthService owns the session lifecycle.
//
// Contract:
//   - Login/Signup: exchange credentials for a session and full profile,
//     set them on the state, and persist the session for later restarts.
//   - Restore: soft-recovery from a previously persisted session; never
//     returns an error to the caller, only whether a user was restored.
//   - Logout: clear persisted and in-memory session state.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, st *State, username, password string) error
	Signup(ctx context.Context, st *State, username, password, name string) error
	Restore(ctx context.Context, st *State) bool
	Logout(ctx context.Context, st *State) error
}

type authService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway,
// session store and logger.
func NewAuthService(client api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login exchanges credentials for a session. On success the state holds
// the new session and profile, and the pair is persisted. A store write
// failure is logged but not fatal: the session still works for this run.
func (a *authService) Login(ctx context.Context, st *State, username, password string) error {
	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.activate(ctx, st, res)
	return nil
}

// Signup creates a new account and logs it in, with the same state and
// persistence behavior as Login.
func (a *authService) Signup(ctx context.Context, st *State, username, password, name string) error {
	res, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	a.activate(ctx, st, res)
	return nil
}

func (a *authService) activate(ctx context.Context, st *State, res *api.AuthResult) {
	st.Session = &models.Session{Token: res.Token, Username: res.User.Username}
	st.User = res.User

	if err := a.store.Save(ctx, res.Token, res.User.Username); err != nil {
		a.log.Warn(ctx, "session not persisted, login will not survive restart", "error", err)
	}
	a.log.Info(ctx, "logged in", "username", res.User.Username)
}

// Restore tries to hydrate a user from a previously persisted session.
// Every failure is soft: an unreadable store or an unreachable server
// just means starting logged out. A rejected token additionally clears
// the persisted pair, since it can never work again.
func (a *authService) Restore(ctx context.Context, st *State) bool {
	sess, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "session store unreadable, starting logged out", "error", err)
		return false
	}
	if sess == nil {
		return false
	}

	user, err := a.client.GetUser(ctx, sess.Token, sess.Username)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.log.Info(ctx, "stored session rejected, clearing it", "username", sess.Username)
			if clearErr := a.store.Clear(ctx); clearErr != nil {
				a.log.Warn(ctx, "clearing rejected session failed", "error", clearErr)
			}
		} else {
			a.log.Warn(ctx, "session restore failed, starting logged out", "error", err)
		}
		return false
	}

	st.Session = sess
	st.User = user
	a.log.Info(ctx, "session restored", "username", user.Username)
	return true
}

// Logout clears the persisted pair and resets the in-memory identity.
// The state is reset even if the store refuses to clear.
func (a *authService) Logout(ctx context.Context, st *State) error {
	err := a.store.Clear(ctx)
	st.Reset()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}
