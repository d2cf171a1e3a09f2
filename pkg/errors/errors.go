package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes. DuplicateIdentity is reported as 400 to match the existing
// web client, which treats every signup failure the same way.
const (
	CodeValidationError       = "VALIDATION_ERROR"
	CodeDuplicateIdentity     = "DUPLICATE_IDENTITY"
	CodeNotFound              = "NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeInvalidToken          = "INVALID_TOKEN"
	CodeInvalidOrExpiredToken = "INVALID_OR_EXPIRED_TOKEN"
	CodeForbidden             = "FORBIDDEN"
	CodeTooManyRequests       = "TOO_MANY_REQUESTS"
	CodeInternalError         = "INTERNAL_ERROR"
	CodeServiceUnavailable    = "SERVICE_UNAVAILABLE"
)

// Common application errors
var (
	ErrValidation            = &AppError{Code: CodeValidationError, Message: "validation failed", Status: http.StatusBadRequest}
	ErrDuplicateIdentity     = &AppError{Code: CodeDuplicateIdentity, Message: "identity already in use", Status: http.StatusBadRequest}
	ErrNotFound              = &AppError{Code: CodeNotFound, Message: "resource not found", Status: http.StatusNotFound}
	ErrUnauthorized          = &AppError{Code: CodeUnauthorized, Message: "unauthorized", Status: http.StatusUnauthorized}
	ErrInvalidToken          = &AppError{Code: CodeInvalidToken, Message: "Invalid token.", Status: http.StatusBadRequest}
	ErrInvalidOrExpiredToken = &AppError{Code: CodeInvalidOrExpiredToken, Message: "Invalid or expired reset token", Status: http.StatusBadRequest}
	ErrForbidden             = &AppError{Code: CodeForbidden, Message: "forbidden", Status: http.StatusForbidden}
	ErrTooManyRequests       = &AppError{Code: CodeTooManyRequests, Message: "too many requests", Status: http.StatusTooManyRequests}
	ErrInternalError         = &AppError{Code: CodeInternalError, Message: "internal server error", Status: http.StatusInternalServerError}
	ErrServiceUnavailable    = &AppError{Code: CodeServiceUnavailable, Message: "service unavailable", Status: http.StatusServiceUnavailable}
)

// New creates a new AppError
func New(code string, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// Wrap wraps an error with an AppError
func Wrap(err error, appErr *AppError) *AppError {
	return &AppError{
		Code:    appErr.Code,
		Message: appErr.Message,
		Status:  appErr.Status,
		Err:     err,
	}
}

// WithMessage returns a new AppError with a custom message
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Err:     e.Err,
	}
}

// WithMessagef is WithMessage with formatting
func (e *AppError) WithMessagef(format string, args ...any) *AppError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithError returns a new AppError with a wrapped error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.Status,
		Err:     err,
	}
}

// Is checks if the error is a specific AppError
func Is(err error, target *AppError) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == target.Code
	}
	return false
}

// As extracts the first AppError in err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetStatus returns the HTTP status from an error
func GetStatus(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// GetMessage returns the client-facing message of an error. Anything that
// is not an AppError is reported generically.
func GetMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return ErrInternalError.Message
}
