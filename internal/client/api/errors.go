package api

import "errors"

var (
	// ErrUnauthorized covers bad credentials and invalid or expired tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers unknown or not-owned story ids.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers rejected input: duplicate username, missing
	// fields, malformed story submissions.
	ErrValidation = errors.New("validation failed")

	// ErrNetwork covers transport failures and timed-out requests.
	ErrNetwork = errors.New("network error")

	// ErrServerError covers 5xx responses and undecodable payloads.
	ErrServerError = errors.New("server error")
)
