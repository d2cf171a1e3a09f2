package impl

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// passwordResetService implements service.PasswordResetService
type passwordResetService struct {
	userRepo       repository.UserRepository
	tokens         *security.ResetTokenGenerator
	passwordHasher *security.PasswordHasher
	notifier       service.Notifier
	frontendURL    string
	logger         *zap.Logger
	now            func() time.Time
}

// NewPasswordResetService creates a new PasswordResetService instance.
// Reset links point at {frontendURL}/reset-password/{token}.
func NewPasswordResetService(
	userRepo repository.UserRepository,
	tokens *security.ResetTokenGenerator,
	passwordHasher *security.PasswordHasher,
	notifier service.Notifier,
	frontendURL string,
	logger *zap.Logger,
) service.PasswordResetService {
	return &passwordResetService{
		userRepo:       userRepo,
		tokens:         tokens,
		passwordHasher: passwordHasher,
		notifier:       notifier,
		frontendURL:    strings.TrimRight(frontendURL, "/"),
		logger:         logger.Named("password_reset"),
		now:            time.Now,
	}
}

func (s *passwordResetService) Forgot(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return internal(err)
	}
	if user == nil {
		return service.ErrUserNotFound
	}

	token, digest, err := s.tokens.Generate()
	if err != nil {
		return internal(err)
	}
	user.SetResetToken(digest, s.now().Add(service.ResetTokenTTL))
	if err := s.userRepo.Update(ctx, user); err != nil {
		return internal(err)
	}

	link := s.frontendURL + "/reset-password/" + token
	if err := s.notifier.SendPasswordReset(ctx, user.Email, link, service.ResetTokenTTL); err != nil {
		return internal(err)
	}

	s.logger.Info("Password reset requested", zap.Uint("user_id", user.ID))
	return nil
}

func (s *passwordResetService) Reset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return service.ErrInvalidResetRequest
	}

	now := s.now()
	user, err := s.userRepo.GetByResetToken(ctx, s.tokens.Digest(token), now)
	if err != nil {
		return internal(err)
	}
	if user == nil {
		return service.ErrInvalidResetRequest
	}

	if err := service.ValidatePassword(newPassword); err != nil {
		return err
	}
	hashed, err := s.passwordHasher.Hash(newPassword)
	if err != nil {
		return internal(err)
	}

	user.Password = hashed
	user.ClearResetToken()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return internal(err)
	}

	if err := s.notifier.SendResetSuccessful(ctx, user.Email); err != nil {
		s.logger.Warn("Failed to send reset confirmation", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	s.logger.Info("Password reset completed", zap.Uint("user_id", user.ID))
	return nil
}
