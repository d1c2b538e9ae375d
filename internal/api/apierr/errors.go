package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusUnauthorized, APIError{CodeSessionNotFound, "Session not found or expired"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}

	case errors.Is(err, gateway.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, gateway.ErrUnauthenticated):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
	case errors.Is(err, gateway.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeInvalidRequest, "Resource not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewBackendUnavailableError creates an error for failed backend calls
func NewBackendUnavailableError() error {
	return &httpError{http.StatusBadGateway, APIError{CodeBackendUnavailable, "League backend is unavailable"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
