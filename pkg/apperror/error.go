package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an HTTP-facing error carrying a stable machine-readable code.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// Body returns the JSON envelope written to clients.
func (e *Error) Body() map[string]any {
	errBody := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		errBody["details"] = e.Details
	}
	return map[string]any{"error": errBody}
}

// WithInternal returns a copy with the cause attached.
func (e *Error) WithInternal(err error) *Error {
	c := *e
	c.Internal = err
	return &c
}

// WithMessage returns a copy with a custom message.
func (e *Error) WithMessage(message string) *Error {
	c := *e
	c.Message = message
	return &c
}

// WithDetails returns a copy with details attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	c := *e
	c.Details = details
	return &c
}

func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrNotFound         = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrServiceNotFound  = New(http.StatusNotFound, "service_not_found", "Service not found")
	ErrSolutionNotFound = New(http.StatusNotFound, "solution_not_found", "Solution not found")
	ErrUnknownCatalog   = New(http.StatusNotFound, "unknown_catalog", "Unknown catalog kind")

	ErrBadRequest      = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrTooManyRequests = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")

	ErrInternal = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// ToHTTPError maps any error to a status and JSON body. Unknown errors
// become internal errors so causes never leak to clients.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr.Body()
	}
	return ErrInternal.HTTPStatus, ErrInternal.Body()
}

func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}
