package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storyline/internal/client/models"
)

// HTTPClient implements Client over the story service's JSON HTTP API.
// Requests share one underlying http.Client whose timeout bounds every
// call, so no operation can block indefinitely.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a gateway bound to baseURL. timeout caps each
// request end to end; pass 0 to rely on context deadlines alone.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Close releases idle connections held by the transport.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Wire DTOs. Field lists follow the service contract; only fields the
// client consumes are declared.

type storyPayload struct {
	StoryID   string `json:"storyId"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

type userPayload struct {
	Username   string         `json:"username"`
	Name       string         `json:"name"`
	CreatedAt  string         `json:"createdAt"`
	Favorites  []storyPayload `json:"favorites"`
	OwnStories []storyPayload `json:"ownStories"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type credentialsRequest struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name,omitempty"`
	} `json:"user"`
}

func (s storyPayload) toModel() models.Story {
	return models.Story{
		StoryID:   s.StoryID,
		Author:    s.Author,
		Title:     s.Title,
		URL:       s.URL,
		Username:  s.Username,
		CreatedAt: s.CreatedAt,
	}
}

func storiesToModel(payloads []storyPayload) []models.Story {
	stories := make([]models.Story, 0, len(payloads))
	for _, p := range payloads {
		stories = append(stories, p.toModel())
	}
	return stories
}

func (u userPayload) toModel() *models.User {
	return &models.User{
		Username:   u.Username,
		Name:       u.Name,
		CreatedAt:  u.CreatedAt,
		Favorites:  storiesToModel(u.Favorites),
		OwnStories: storiesToModel(u.OwnStories),
	}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	var req credentialsRequest
	req.User.Username = username
	req.User.Password = password

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &AuthResult{Token: resp.Token, User: resp.User.toModel()}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (*AuthResult, error) {
	var req credentialsRequest
	req.User.Username = username
	req.User.Password = password
	req.User.Name = name

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	return &AuthResult{Token: resp.Token, User: resp.User.toModel()}, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, token, username string) (*models.User, error) {
	query := url.Values{"token": {token}}

	var resp struct {
		User userPayload `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User.toModel(), nil
}

func (c *HTTPClient) ListStories(ctx context.Context) ([]models.Story, error) {
	var resp struct {
		Stories []storyPayload `json:"stories"`
	}
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return storiesToModel(resp.Stories), nil
}

func (c *HTTPClient) CreateStory(ctx context.Context, token string, draft StoryDraft) (models.Story, error) {
	req := struct {
		Token string `json:"token"`
		Story struct {
			Author string `json:"author"`
			Title  string `json:"title"`
			URL    string `json:"url"`
		} `json:"story"`
	}{Token: token}
	req.Story.Author = draft.Author
	req.Story.Title = draft.Title
	req.Story.URL = draft.URL

	var resp struct {
		Story storyPayload `json:"story"`
	}
	if err := c.do(ctx, http.MethodPost, "/stories", nil, req, &resp); err != nil {
		return models.Story{}, err
	}
	return resp.Story.toModel(), nil
}

func (c *HTTPClient) DeleteStory(ctx context.Context, token, storyID string) error {
	req := struct {
		Token string `json:"token"`
	}{Token: token}
	return c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), nil, req, nil)
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	req := struct {
		Token string `json:"token"`
	}{Token: token}
	path := favoritePath(username, storyID)
	return c.do(ctx, http.MethodPost, path, nil, req, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	req := struct {
		Token string `json:"token"`
	}{Token: token}
	path := favoritePath(username, storyID)
	return c.do(ctx, http.MethodDelete, path, nil, req, nil)
}

func favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

// do issues one JSON request and decodes the response into out (if non-nil).
// Status codes >= 400 are translated through mapStatus.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return mapStatus(resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrServerError, err)
		}
	}
	return nil
}

// mapStatus translates an HTTP error status into the package taxonomy.
func mapStatus(code int, detail string) error {
	var sentinel error
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case code == http.StatusNotFound:
		sentinel = ErrNotFound
	case code == http.StatusBadRequest || code == http.StatusConflict || code == http.StatusUnprocessableEntity:
		sentinel = ErrValidation
	default:
		sentinel = ErrServerError
	}
	if detail == "" {
		return fmt.Errorf("%w (status %d)", sentinel, code)
	}
	return fmt.Errorf("%w (status %d): %s", sentinel, code, detail)
}
