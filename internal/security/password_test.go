package security

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_UsesCostTen(t *testing.T) {
	hash, err := NewPasswordHasher().Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != 10 {
		t.Errorf("cost = %d, want 10", cost)
	}
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher()

	passwords := []string{"secret1", "C0mpl3x!P@ss", "密码パスワード", strings.Repeat("x", 72)}
	for _, password := range passwords {
		t.Run(password[:min(len(password), 8)], func(t *testing.T) {
			hash, err := hasher.Hash(password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == password {
				t.Fatal("Hash() returned the plain password")
			}
			if !hasher.Verify(password, hash) {
				t.Error("Verify() rejected the original password")
			}
			if hasher.Verify(password+"!", hash) {
				t.Error("Verify() accepted a different password")
			}
		})
	}
}

func TestPasswordHasher_SaltsDiffer(t *testing.T) {
	hasher := NewPasswordHasher()
	a, _ := hasher.Hash("samepassword")
	b, _ := hasher.Hash("samepassword")
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestPasswordHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewPasswordHasher()
	if hasher.Verify("secret1", "not-a-bcrypt-hash") {
		t.Error("Verify() accepted a malformed hash")
	}
	if hasher.Verify("", "") {
		t.Error("Verify() accepted an account without a hash")
	}
}

func TestPasswordHasher_OlderCostStillVerifies(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("truck123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword() error = %v", err)
	}
	if !NewPasswordHasher().Verify("truck123", string(legacy)) {
		t.Error("Verify() rejected a hash of another cost")
	}
}

func TestPasswordHasher_TooLong(t *testing.T) {
	_, err := NewPasswordHasher().Hash(strings.Repeat("x", MaxPasswordBytes+1))
	if !errors.Is(err, bcrypt.ErrPasswordTooLong) {
		t.Errorf("Hash() error = %v, want ErrPasswordTooLong", err)
	}
}
