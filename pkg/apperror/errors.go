package apperror

import (
	"errors"
	"net/http"
)

// AppError represents a console error. For errors originating from the POS
// backend, Code carries the upstream HTTP status code.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Session expired, please sign in again"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "You do not have permission to perform this action"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid username or password. Please try again."}
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrUpstream           = &AppError{Code: http.StatusBadGateway, Message: "Something went wrong. Please check your connection."}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewUpstreamError creates an error for a non-2xx backend response. When the
// backend supplied no user-displayable message, a generic fallback is used.
func NewUpstreamError(code int, message string) *AppError {
	if message == "" {
		message = ErrUpstream.Message
	}
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsUnauthorized reports whether err carries an upstream 401
func IsUnauthorized(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
