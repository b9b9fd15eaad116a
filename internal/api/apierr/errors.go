package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vladia/corretora-go/internal/model"
)

// ErrorResponse is the JSON body of every error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// httpError combines an HTTP status code with a client-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// New creates an error with an explicit status and message
func New(status int, message string) error {
	return &httpError{status, message}
}

// NewValidationError creates a 400 for missing or malformed input
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthenticatedError creates a 401
func NewUnauthenticatedError(message string) error {
	return &httpError{http.StatusUnauthorized, message}
}

// NewInternalError creates a 500 with no internal detail
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "internal server error"}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: he.message})
}

// toHTTPError converts an error to an httpError.
// Unrecognized errors collapse into a generic 500; the detail is for
// server-side logs only.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Validation and conflicts (the API reports conflicts as 400)
	case errors.Is(err, model.ErrEmailTaken):
		return &httpError{http.StatusBadRequest, "email already registered"}
	case errors.Is(err, model.ErrUnknownRole):
		return &httpError{http.StatusBadRequest, "unknown role"}
	case errors.Is(err, model.ErrCurrentPasswordRequired):
		return &httpError{http.StatusBadRequest, "current password is required to change the password"}
	case errors.Is(err, model.ErrUnknownListingKind):
		return &httpError{http.StatusBadRequest, "unknown listing kind"}
	case errors.Is(err, model.ErrUnknownListingStatus):
		return &httpError{http.StatusBadRequest, "unknown listing status"}

	// Credentials and tokens
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "invalid email or password"}
	case errors.Is(err, model.ErrTokenExpired):
		return &httpError{http.StatusUnauthorized, "token expired"}
	case errors.Is(err, model.ErrTokenMalformed):
		return &httpError{http.StatusUnauthorized, "malformed token"}
	case errors.Is(err, model.ErrTokenInvalid):
		return &httpError{http.StatusUnauthorized, "invalid token"}

	// Missing records
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, "account not found"}
	case errors.Is(err, model.ErrListingNotFound):
		return &httpError{http.StatusNotFound, "listing not found"}
	case errors.Is(err, model.ErrAddressNotFound):
		return &httpError{http.StatusNotFound, "address not found"}

	default:
		return &httpError{http.StatusInternalServerError, "internal server error"}
	}
}
