package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL, 2*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLogin_DecodesTokenAndProfile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice", req.User.Username)
		require.Equal(t, "pw123456", req.User.Password)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user": map[string]any{
				"username":  "alice",
				"name":      "Alice A",
				"createdAt": "2024-01-02T10:00:00Z",
				"favorites": []map[string]any{
					{"storyId": "story-1", "title": "Fav", "url": "https://x.com"},
				},
				"ownStories": []map[string]any{},
			},
		})
	}))

	res, err := c.Login(context.Background(), "alice", "pw123456")
	require.NoError(t, err)

	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "Alice A", res.User.Name)
	require.Len(t, res.User.Favorites, 1)
	assert.Equal(t, "story-1", res.User.Favorites[0].StoryID)
	assert.Empty(t, res.User.OwnStories)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSignup_SendsName(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/signup", r.URL.Path)

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Alice A", req.User.Name)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-2",
			"user": map[string]any{
				"username":   req.User.Username,
				"name":       req.User.Name,
				"createdAt":  "2024-01-02T10:00:00Z",
				"favorites":  []any{},
				"ownStories": []any{},
			},
		})
	}))

	res, err := c.Signup(context.Background(), "alice", "pw123456", "Alice A")
	require.NoError(t, err)
	assert.Empty(t, res.User.Favorites)
	assert.Empty(t, res.User.OwnStories)
}

func TestGetUser_SendsTokenAsQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/alice", r.URL.Path)
		require.Equal(t, "tok-1", r.URL.Query().Get("token"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"username": "alice", "name": "Alice A"},
		})
	}))

	user, err := c.GetUser(context.Background(), "tok-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestListStories(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stories", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"stories": []map[string]any{
				{"storyId": "s1", "title": "First"},
				{"storyId": "s2", "title": "Second"},
			},
		})
	}))

	stories, err := c.ListStories(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "s1", stories[0].StoryID, "feed order is server order")
}

func TestCreateStory_ReturnsServerAssignedID(t *testing.T) {
	assigned := uuid.NewString()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Token string `json:"token"`
			Story struct {
				Author string `json:"author"`
				Title  string `json:"title"`
				URL    string `json:"url"`
			} `json:"story"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "tok-1", req.Token)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"story": map[string]any{
				"storyId":   assigned,
				"author":    req.Story.Author,
				"title":     req.Story.Title,
				"url":       req.Story.URL,
				"username":  "alice",
				"createdAt": "2024-01-02T10:00:00Z",
			},
		})
	}))

	story, err := c.CreateStory(context.Background(), "tok-1", StoryDraft{Title: "T", URL: "http://x.com", Author: "A"})
	require.NoError(t, err)
	assert.Equal(t, assigned, story.StoryID)
	assert.Equal(t, "alice", story.Username)
}

func TestDeleteStory_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		http.NotFound(w, r)
	}))

	err := c.DeleteStory(context.Background(), "tok-1", "gone")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteEndpoints_UsePerUserPath(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.AddFavorite(context.Background(), "tok-1", "alice", "story-42"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/users/alice/favorites/story-42", gotPath)

	require.NoError(t, c.RemoveFavorite(context.Background(), "tok-1", "alice", "story-42"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/users/alice/favorites/story-42", gotPath)
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusConflict, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrServerError},
		{http.StatusBadGateway, ErrServerError},
		{http.StatusTeapot, ErrServerError},
	}

	for _, tt := range tests {
		err := mapStatus(tt.code, "")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.code)
	}
}

func TestTransportFailure_IsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.ListStories(context.Background())
	require.ErrorIs(t, err, ErrNetwork)
}

func TestUndecodableBody_IsServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := c.ListStories(context.Background())
	require.ErrorIs(t, err, ErrServerError)
}
