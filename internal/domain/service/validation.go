package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/security"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

// MinPasswordLength is the shortest password accepted at account creation
const MinPasswordLength = 6

var (
	emailPattern  = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Credentials are the fields every account variant is created with
type Credentials struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// ValidateCredentials checks the fields required to create any account.
func ValidateCredentials(c Credentials) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return apperrors.ErrValidation.WithMessage("Name is required")
	case c.Email == "":
		return apperrors.ErrValidation.WithMessage("Email is required")
	case c.Mobile == "":
		return apperrors.ErrValidation.WithMessage("Mobile number is required")
	case c.Password == "":
		return apperrors.ErrValidation.WithMessage("Password is required")
	}

	if err := ValidatePassword(c.Password); err != nil {
		return err
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	return ValidateMobile(c.Mobile)
}

// ValidatePassword enforces the password length bounds
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > security.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// ValidateEmail checks email against the accepted address pattern
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.ErrValidation.WithMessage("Please enter a valid email")
	}
	return nil
}

// ValidateMobile checks that mobile is exactly ten digits
func ValidateMobile(mobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return apperrors.ErrValidation.WithMessage("Please enter a valid 10-digit mobile number")
	}
	return nil
}

// ValidateSchedule checks optional wire-format date and time values.
func ValidateSchedule(date, clock string) error {
	if date != "" {
		if _, err := time.Parse(entity.DateLayout, date); err != nil {
			return ErrInvalidDate
		}
	}
	if clock != "" {
		if _, err := time.Parse(entity.ClockLayout, clock); err != nil {
			return ErrInvalidTime
		}
	}
	return nil
}
