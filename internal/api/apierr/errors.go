package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/betdesk/internal/model"
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
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeDuplicateUsername = "DUPLICATE_USERNAME"
	CodeUnknownUser       = "UNKNOWN_USER"
	CodeInvalidRole       = "INVALID_ROLE"
	CodeWrongPassword     = "WRONG_PASSWORD"
	CodeBanned            = "BANNED"
	CodeAlreadyBanned     = "ALREADY_BANNED"
	CodeNotLoggedIn       = "NOT_LOGGED_IN"
	CodeRoleNotRegular    = "ROLE_NOT_REGULAR"
	CodeRoleNotAdmin      = "ROLE_NOT_ADMIN"
	CodeInternalError     = "INTERNAL_ERROR"
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
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map engine errors
	switch {
	case errors.Is(err, model.ErrDuplicateUsername):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateUsername, "Username already exists"}}
	case errors.Is(err, model.ErrUnknownUser):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownUser, "Unknown user"}}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRole, "Role must be admin or regular"}}
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusUnauthorized, APIError{CodeWrongPassword, "Wrong password"}}
	case errors.Is(err, model.ErrBanned):
		return &httpError{http.StatusForbidden, APIError{CodeBanned, "User is banned"}}
	case errors.Is(err, model.ErrAlreadyBanned):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyBanned, "User is already banned"}}
	case errors.Is(err, model.ErrNotLoggedIn):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotLoggedIn, "No active session"}}
	case errors.Is(err, model.ErrNotRegular):
		return &httpError{http.StatusForbidden, APIError{CodeRoleNotRegular, "Requires a regular user session"}}
	case errors.Is(err, model.ErrNotAdmin):
		return &httpError{http.StatusForbidden, APIError{CodeRoleNotAdmin, "Requires an admin session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotLoggedInError creates a no-active-session error
func NewNotLoggedInError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeNotLoggedIn, "No active session"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
