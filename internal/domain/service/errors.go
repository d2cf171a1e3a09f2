package service

import (
	"net/http"

	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

// Client-facing failures. Controllers render the message and status as-is.
var (
	ErrIdentityInUse       = apperrors.ErrDuplicateIdentity.WithMessage("This email or mobile number is already in use.")
	ErrProfileIdentityUsed = apperrors.ErrDuplicateIdentity.WithMessage("Email or mobile number is already registered")
	ErrDriverCodeInUse     = apperrors.ErrDuplicateIdentity.WithMessage("This driver ID is already in use.")
	ErrPasswordTooShort    = apperrors.ErrValidation.WithMessage("Password must be at least 6 characters long")
	ErrPasswordTooLong     = apperrors.ErrValidation.WithMessage("Password must be at most 72 bytes long")
	ErrAccountNotFound     = apperrors.New(apperrors.CodeNotFound, "No account found with this email.", http.StatusBadRequest)
	ErrIncorrectPassword   = apperrors.New(apperrors.CodeUnauthorized, "Incorrect password. Please try again.", http.StatusBadRequest)
	ErrUserNotFound        = apperrors.ErrNotFound.WithMessage("User not found")
	ErrDriverNotFound      = apperrors.ErrNotFound.WithMessage("Driver not found")
	ErrNoDriverMatch       = apperrors.ErrNotFound.WithMessage("No drivers found matching this email")
	ErrProfileForbidden    = apperrors.ErrForbidden.WithMessage("You can only update your own profile")
	ErrInvalidRole         = apperrors.ErrValidation.WithMessage("Invalid role specified.")

	ErrBinNotFound          = apperrors.ErrNotFound.WithMessage("Bin not found")
	ErrLocalityCityRequired = apperrors.ErrValidation.WithMessage("Locality and city are required.")
	ErrBinFieldsRequired    = apperrors.ErrValidation.WithMessage("Bin label, locality and city are required.")
	ErrInvalidLoadType      = apperrors.ErrValidation.WithMessage("Load type must be one of low, medium, high")
	ErrInvalidCyclePeriod   = apperrors.ErrValidation.WithMessage("Cycle period must be one of daily, twice-weekly, weekly")
	ErrGeocoderUnavailable  = apperrors.ErrInternalError.WithMessage("Internal server error")

	ErrComplaintFields     = apperrors.ErrValidation.WithMessage("All fields are required")
	ErrInvalidStatus       = apperrors.ErrValidation.WithMessage("Invalid status")
	ErrComplaintNotFound   = apperrors.ErrNotFound.WithMessage("Complaint not found")
	ErrInvalidDate         = apperrors.ErrValidation.WithMessage("Date must be formatted as YYYY-MM-DD")
	ErrInvalidTime         = apperrors.ErrValidation.WithMessage("Time must be formatted as HH:MM")
	ErrWorkAreaTaken       = apperrors.ErrValidation.WithMessage("Work with this area already exists")
	ErrWorkFieldsRequired  = apperrors.ErrValidation.WithMessage("Email, area and status are required")
	ErrInvalidWorkStatus   = apperrors.ErrValidation.WithMessage("Status must be one of In Progress, Completed, Incomplete")
	ErrInvalidResetRequest = apperrors.ErrInvalidOrExpiredToken
)

// NoGeolocation is returned when neither the full nor the reduced address resolves.
func NoGeolocation(address string) *apperrors.AppError {
	return apperrors.ErrNotFound.WithMessagef("No geolocation found for address: %s", address)
}

// NoBinsInArea is returned when an area search matches nothing.
func NoBinsInArea(area string) *apperrors.AppError {
	return apperrors.ErrNotFound.WithMessagef("No bins found in area: %s", area)
}
