package security

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost matches the hashes already stored for admins, drivers
	// and citizens, so existing accounts keep verifying.
	DefaultCost = 10

	// MaxPasswordBytes is the longest password bcrypt will hash
	MaxPasswordBytes = 72
)

// PasswordHasher hashes account passwords. One instance serves every role.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: DefaultCost}
}

// Hash returns the bcrypt hash stored in the account's password column.
// Passwords over MaxPasswordBytes fail with bcrypt.ErrPasswordTooLong.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches a stored hash of any cost.
// Accounts with no stored hash never verify.
func (h *PasswordHasher) Verify(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
