package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// resetTokenBytes is the entropy of a password reset token
const resetTokenBytes = 32

// ResetTokenGenerator issues opaque password reset tokens. Only the digest
// of a token is stored; the plain value travels in the reset link.
type ResetTokenGenerator struct {
	random io.Reader
}

// NewResetTokenGenerator creates a generator backed by crypto/rand
func NewResetTokenGenerator() *ResetTokenGenerator {
	return &ResetTokenGenerator{random: rand.Reader}
}

// Generate returns a new hex token and its digest
func (g *ResetTokenGenerator) Generate() (token, digest string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(buf)
	return token, g.Digest(token), nil
}

// Digest returns the stored form of token
func (g *ResetTokenGenerator) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
