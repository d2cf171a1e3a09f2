package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "error without wrapped error",
			appErr:   &AppError{Code: CodeNotFound, Message: "Bin not found"},
			expected: "Bin not found",
		},
		{
			name: "error with wrapped error",
			appErr: &AppError{
				Code:    CodeInternalError,
				Message: "internal error",
				Err:     errors.New("geocoder unreachable"),
			},
			expected: "internal error: geocoder unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	original := errors.New("connection timeout")
	wrapped := Wrap(original, ErrInternalError)

	if wrapped.Code != CodeInternalError {
		t.Errorf("Wrap() Code = %v, want %v", wrapped.Code, CodeInternalError)
	}
	if wrapped.Status != http.StatusInternalServerError {
		t.Errorf("Wrap() Status = %v, want 500", wrapped.Status)
	}
	if !errors.Is(wrapped, original) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if ErrInternalError.Err != nil {
		t.Error("Wrap() modified the template error")
	}
}

func TestAppError_WithMessage(t *testing.T) {
	withMsg := ErrNotFound.WithMessagef("No bins found in area: %s", "Ward 7")

	if withMsg.Message != "No bins found in area: Ward 7" {
		t.Errorf("WithMessagef() Message = %v", withMsg.Message)
	}
	if withMsg.Code != CodeNotFound || withMsg.Status != http.StatusNotFound {
		t.Errorf("WithMessagef() changed code/status: %v %v", withMsg.Code, withMsg.Status)
	}
	if ErrNotFound.Message != "resource not found" {
		t.Error("Original error was modified")
	}
}

func TestAppError_WithError(t *testing.T) {
	cause := errors.New("database error")
	withErr := ErrDuplicateIdentity.WithMessage("This email or mobile number is already in use.").WithError(cause)

	if withErr.Err != cause {
		t.Errorf("WithError() Err = %v, want %v", withErr.Err, cause)
	}
	if withErr.Message != "This email or mobile number is already in use." {
		t.Errorf("WithError() dropped the message: %v", withErr.Message)
	}
	if ErrDuplicateIdentity.Err != nil {
		t.Error("Original error was modified")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   *AppError
		expected bool
	}{
		{"same error", ErrNotFound, ErrNotFound, true},
		{"custom message keeps identity", ErrValidation.WithMessage("Invalid status"), ErrValidation, true},
		{"wrapped error with same code", Wrap(errors.New("original"), ErrNotFound), ErrNotFound, true},
		{"different error codes", ErrInvalidToken, ErrInvalidOrExpiredToken, false},
		{"non-AppError", errors.New("plain error"), ErrNotFound, false},
		{"nil error", nil, ErrNotFound, false},
		{"wrapped in fmt.Errorf", fmt.Errorf("wrapped: %w", ErrUnauthorized), ErrUnauthorized, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetStatusAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", ErrValidation, http.StatusBadRequest, "validation failed"},
		{"duplicate identity is a bad request", ErrDuplicateIdentity, http.StatusBadRequest, "identity already in use"},
		{"not found", ErrNotFound, http.StatusNotFound, "resource not found"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"invalid token", ErrInvalidToken, http.StatusBadRequest, "Invalid token."},
		{"expired reset token", ErrInvalidOrExpiredToken, http.StatusBadRequest, "Invalid or expired reset token"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "forbidden"},
		{"rate limited", ErrTooManyRequests, http.StatusTooManyRequests, "too many requests"},
		{"wrapped AppError", fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound, "resource not found"},
		{"plain error is hidden", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "internal server error"},
		{"nil error", nil, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetStatus(tt.err); got != tt.status {
				t.Errorf("GetStatus() = %v, want %v", got, tt.status)
			}
			if got := GetMessage(tt.err); got != tt.message {
				t.Errorf("GetMessage() = %v, want %v", got, tt.message)
			}
		})
	}
}

func TestAs(t *testing.T) {
	if _, ok := As(errors.New("plain")); ok {
		t.Error("As() should be false for a plain error")
	}
	appErr, ok := As(fmt.Errorf("ctx: %w", ErrForbidden))
	if !ok || appErr.Code != CodeForbidden {
		t.Errorf("As() = %v, %v", appErr, ok)
	}
}

func BenchmarkIs(b *testing.B) {
	err := Wrap(errors.New("test"), ErrNotFound)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Is(err, ErrNotFound)
	}
}
