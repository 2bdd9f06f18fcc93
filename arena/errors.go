package arena

import (
	"errors"
	"fmt"
)

// AuthenticationError indicates the API key is malformed or was rejected
// by the server (HTTP 401/403).
type AuthenticationError struct {
	Message string
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// CompetitionNotFoundError indicates the server returned HTTP 404 for a
// competition, agent, or endpoint.
type CompetitionNotFoundError struct {
	Message string
}

// Error implements the error interface
func (e *CompetitionNotFoundError) Error() string {
	return fmt.Sprintf("competition not found: %s", e.Message)
}

// SubmissionError indicates invalid submit arguments, a missing local file,
// a rejected submission, or a missing session default.
type SubmissionError struct {
	Message string
}

// Error implements the error interface
func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %s", e.Message)
}

// APIError represents an unmapped non-success response from the ML Arena API.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("ml-arena API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsAuthenticationError reports whether err is an *AuthenticationError.
func IsAuthenticationError(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsCompetitionNotFound reports whether err is a *CompetitionNotFoundError.
func IsCompetitionNotFound(err error) bool {
	var ne *CompetitionNotFoundError
	return errors.As(err, &ne)
}

// IsSubmissionError reports whether err is a *SubmissionError.
func IsSubmissionError(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se)
}
