package impl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/security"
	"github.com/jrjohn/smart-waste-go/internal/testutil/mocks"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

type resetFixture struct {
	svc      *passwordResetService
	users    *mocks.MockUserRepository
	notifier *mocks.MockNotifier
	hasher   *security.PasswordHasher
	clock    time.Time
}

func setupPasswordReset(t *testing.T) *resetFixture {
	t.Helper()
	f := &resetFixture{
		users:    mocks.NewMockUserRepository(),
		notifier: mocks.NewMockNotifier(),
		hasher:   security.NewPasswordHasher(),
		clock:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewPasswordResetService(f.users, security.NewResetTokenGenerator(), f.hasher, f.notifier,
		"http://localhost:5173/", zap.NewNop()).(*passwordResetService)
	f.svc.now = func() time.Time { return f.clock }

	hashed, _ := f.hasher.Hash("original")
	_ = f.users.Create(context.Background(), &entity.User{Name: "Asha", Email: "asha@example.com", Password: hashed, Mobile: "9876543210"})
	return f
}

func (f *resetFixture) requestToken(t *testing.T) string {
	t.Helper()
	if err := f.svc.Forgot(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("Forgot() error = %v", err)
	}
	sent := f.notifier.Sent()
	link := sent[len(sent)-1].ResetURL
	const prefix = "http://localhost:5173/reset-password/"
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("reset link = %q", link)
	}
	return strings.TrimPrefix(link, prefix)
}

func (f *resetFixture) password(t *testing.T) string {
	t.Helper()
	u, _ := f.users.GetByEmail(context.Background(), "asha@example.com")
	return u.Password
}

func TestPasswordReset_Forgot(t *testing.T) {
	f := setupPasswordReset(t)
	token := f.requestToken(t)

	if len(token) != 64 {
		t.Errorf("token length = %d, want 64", len(token))
	}
	sent := f.notifier.Sent()
	if len(sent) != 1 || sent[0].To != "asha@example.com" || sent[0].TTL != service.ResetTokenTTL {
		t.Errorf("sent = %+v", sent)
	}

	u, _ := f.users.GetByEmail(context.Background(), "asha@example.com")
	if u.ResetTokenHash == nil || *u.ResetTokenHash == token {
		t.Error("reset token must be stored as a digest")
	}
	if !u.ResetTokenExpiry.Equal(f.clock.Add(time.Hour)) {
		t.Errorf("expiry = %v, want %v", u.ResetTokenExpiry, f.clock.Add(time.Hour))
	}
}

func TestPasswordReset_ForgotUnknownEmail(t *testing.T) {
	f := setupPasswordReset(t)

	err := f.svc.Forgot(context.Background(), "ghost@example.com")
	if apperrors.GetStatus(err) != 404 || apperrors.GetMessage(err) != "User not found" {
		t.Errorf("Forgot() error = %v", err)
	}
	if len(f.notifier.Sent()) != 0 {
		t.Error("mail sent for unknown email")
	}
}

func TestPasswordReset_ForgotMailFailure(t *testing.T) {
	f := setupPasswordReset(t)
	f.notifier.ResetErr = errors.New("smtp down")

	if err := f.svc.Forgot(context.Background(), "asha@example.com"); apperrors.GetStatus(err) != 500 {
		t.Errorf("Forgot() error = %v, want 500", err)
	}
}

func TestPasswordReset_Reset(t *testing.T) {
	f := setupPasswordReset(t)
	token := f.requestToken(t)

	f.clock = f.clock.Add(59 * time.Minute)
	if err := f.svc.Reset(context.Background(), token, "brand-new"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if !f.hasher.Verify("brand-new", f.password(t)) {
		t.Error("password was not changed")
	}

	u, _ := f.users.GetByEmail(context.Background(), "asha@example.com")
	if u.ResetTokenHash != nil || u.ResetTokenExpiry != nil {
		t.Error("reset token was not cleared")
	}

	sent := f.notifier.Sent()
	if sent[len(sent)-1].Kind != "success" {
		t.Errorf("last mail = %+v, want success confirmation", sent[len(sent)-1])
	}

	if err := f.svc.Reset(context.Background(), token, "again-new"); !apperrors.Is(err, apperrors.ErrInvalidOrExpiredToken) {
		t.Errorf("second Reset() error = %v", err)
	}
}

func TestPasswordReset_ExpiredToken(t *testing.T) {
	f := setupPasswordReset(t)
	token := f.requestToken(t)
	before := f.password(t)

	f.clock = f.clock.Add(time.Hour + time.Second)
	err := f.svc.Reset(context.Background(), token, "brand-new")
	if !apperrors.Is(err, apperrors.ErrInvalidOrExpiredToken) {
		t.Fatalf("Reset() error = %v", err)
	}
	if apperrors.GetMessage(err) != "Invalid or expired reset token" {
		t.Errorf("message = %q", apperrors.GetMessage(err))
	}
	if f.password(t) != before {
		t.Error("password changed after an expired reset")
	}
}

func TestPasswordReset_NewRequestReplacesToken(t *testing.T) {
	f := setupPasswordReset(t)
	first := f.requestToken(t)
	second := f.requestToken(t)

	if err := f.svc.Reset(context.Background(), first, "brand-new"); !apperrors.Is(err, apperrors.ErrInvalidOrExpiredToken) {
		t.Errorf("Reset(first) error = %v", err)
	}
	if err := f.svc.Reset(context.Background(), second, "brand-new"); err != nil {
		t.Errorf("Reset(second) error = %v", err)
	}
}

func TestPasswordReset_ShortPassword(t *testing.T) {
	f := setupPasswordReset(t)
	token := f.requestToken(t)

	if err := f.svc.Reset(context.Background(), token, "123"); !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Reset() error = %v", err)
	}
	if !f.hasher.Verify("original", f.password(t)) {
		t.Error("password changed after a rejected reset")
	}
}

func TestPasswordReset_ConfirmationFailureIsNotFatal(t *testing.T) {
	f := setupPasswordReset(t)
	token := f.requestToken(t)
	f.notifier.SuccessErr = errors.New("smtp down")

	if err := f.svc.Reset(context.Background(), token, "brand-new"); err != nil {
		t.Errorf("Reset() error = %v", err)
	}
}
