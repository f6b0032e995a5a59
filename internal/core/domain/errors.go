package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for console operations.
var (
	// ErrSessionNotFound indicates the session cookie does not match a stored session.
	// HTTP Status: redirect to the login page
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired indicates the access token carried by the session has expired.
	// HTTP Status: redirect to the login page
	ErrSessionExpired = errors.New("session expired")

	// ErrUnauthorized indicates the actor is not allowed to open the page.
	// HTTP Status: 403 Forbidden
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrUpstream indicates the backend API could not be reached or answered with
	// something that is not JSON.
	ErrUpstream = errors.New("backend api unavailable")

	// ErrInvalidLine indicates a textarea line that does not follow the expected layout.
	ErrInvalidLine = errors.New("invalid line")
)

// APIError is the `{ error: true, message }` envelope returned by the backend API.
// Validation, authorization, not-found and server errors all look the same to the console.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status=%d", e.Status)
	}
	return e.Message
}

// MessageOf returns the text shown to the user for err.
// API messages are shown verbatim, everything else gets a generic message.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}
