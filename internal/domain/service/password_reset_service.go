package service

import (
	"context"
	"time"
)

// ResetTokenTTL is how long a password reset link stays valid
const ResetTokenTTL = time.Hour

// Notifier delivers the password reset emails
type Notifier interface {
	SendPasswordReset(ctx context.Context, to, resetURL string, ttl time.Duration) error
	SendResetSuccessful(ctx context.Context, to string) error
}

// PasswordResetService defines the interface for the user password reset flow
type PasswordResetService interface {
	// Forgot issues a reset token for email and mails the reset link
	Forgot(ctx context.Context, email string) error

	// Reset redeems token and replaces the password
	Reset(ctx context.Context, token, newPassword string) error
}
