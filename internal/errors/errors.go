package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrDuplicateUsername is returned when registering a username that is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthenticated is returned when there is no valid session.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the session's role does not allow the action.
	ErrForbidden = errors.New("you do not have permission to access this resource")
	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrGatePassNotFound is returned when a gate pass is not found.
	ErrGatePassNotFound = errors.New("gate pass request not found")
	// ErrValidation is returned when input is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidDecision is returned when a decision is neither Accepted nor Rejected.
	ErrInvalidDecision = errors.New("invalid decision")
	// ErrAlreadyResolved is returned when a non-pending gate pass is resolved again.
	ErrAlreadyResolved = errors.New("gate pass request already resolved")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Notice   string `json:"notice"`
	Redirect string `json:"redirect,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Redirect   string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// WithRedirect sets the path the client should fall back to.
func (e *HTTPError) WithRedirect(path string) *HTTPError {
	e.Redirect = path
	return e
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:    e.Message,
		Code:     e.Code,
		Notice:   e.Message,
		Redirect: e.Redirect,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Authorization failures carry a redirect to the landing page.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateUsername):
		return NewHTTPError(http.StatusConflict, ErrDuplicateUsername.Error(), "DUPLICATE_USERNAME")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED").WithRedirect("/")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN").WithRedirect("/")
	case errors.Is(err, ErrGatePassNotFound):
		return NewHTTPError(http.StatusNotFound, ErrGatePassNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrAlreadyResolved):
		return NewHTTPError(http.StatusConflict, ErrAlreadyResolved.Error(), "ALREADY_RESOLVED")
	case errors.Is(err, ErrInvalidDecision), errors.Is(err, ErrValidation):
		// The wrapped message names the offending field.
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// ToEcho converts e into the error Echo renders. cause is kept as the internal error so server
// failures show up in the request log without leaking to the client.
func (e *HTTPError) ToEcho(cause error) *echo.HTTPError {
	httpErr := echo.NewHTTPError(e.StatusCode, e.ToErrorResponse())
	if e.StatusCode >= http.StatusInternalServerError && cause != nil {
		httpErr = httpErr.SetInternal(cause)
	}
	return httpErr
}

// ToEchoError maps a domain error straight to an Echo error.
func ToEchoError(err error) *echo.HTTPError {
	return MapErrorToHTTP(err).ToEcho(err)
}
