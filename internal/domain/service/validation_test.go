package service

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"asha@example.com", true},
		{"first.last@sub.example.in", true},
		{"a-b@c-d.org", true},
		{"no-at-sign.com", false},
		{"user@host", false},
		{"user@host.toolong", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err == nil) != tt.valid {
				t.Errorf("ValidateEmail(%q) error = %v, want valid %v", tt.email, err, tt.valid)
			}
		})
	}
}

func TestValidateMobile(t *testing.T) {
	for mobile, valid := range map[string]bool{
		"9876543210":  true,
		"987654321":   false,
		"98765432100": false,
		"98765-4321":  false,
	} {
		if err := ValidateMobile(mobile); (err == nil) != valid {
			t.Errorf("ValidateMobile(%q) error = %v, want valid %v", mobile, err, valid)
		}
	}
}

func TestValidateCredentials_Order(t *testing.T) {
	err := ValidateCredentials(Credentials{Name: "A", Email: "bad", Mobile: "1", Password: "1"})
	if err == nil || err.Error() != "Password must be at least 6 characters long" {
		t.Errorf("ValidateCredentials() error = %v", err)
	}

	if err := ValidateCredentials(Credentials{Name: "A", Email: "a@b.com", Mobile: "1234567890", Password: "123456"}); err != nil {
		t.Errorf("ValidateCredentials(valid) error = %v", err)
	}
}

func TestValidatePassword_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"too short", "12345", ErrPasswordTooShort},
		{"shortest", "123456", nil},
		{"longest", strings.Repeat("p", 72), nil},
		{"too long for bcrypt", strings.Repeat("p", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePassword(tt.password); err != tt.want {
				t.Errorf("ValidatePassword() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	if err := ValidateSchedule("", ""); err != nil {
		t.Errorf("empty schedule error = %v", err)
	}
	if err := ValidateSchedule("2024-02-29", "23:59"); err != nil {
		t.Errorf("valid schedule error = %v", err)
	}
	if err := ValidateSchedule("2024-13-01", ""); err != ErrInvalidDate {
		t.Errorf("bad date error = %v", err)
	}
	if err := ValidateSchedule("", "24:00"); err != ErrInvalidTime {
		t.Errorf("bad time error = %v", err)
	}
}
