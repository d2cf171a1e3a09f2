package security

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestResetTokenGenerator_Generate(t *testing.T) {
	g := NewResetTokenGenerator()

	token, digest, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(token) != 64 {
		t.Errorf("len(token) = %d, want 64", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("token is not hex: %v", err)
	}
	if digest == token {
		t.Error("digest must differ from the token")
	}
	if g.Digest(token) != digest {
		t.Error("Digest() is not stable")
	}

	again, _, _ := g.Generate()
	if again == token {
		t.Error("two tokens should differ")
	}
}

func TestResetTokenGenerator_Deterministic(t *testing.T) {
	g := &ResetTokenGenerator{random: bytes.NewReader(make([]byte, 32))}
	token, _, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if token != hex.EncodeToString(make([]byte, 32)) {
		t.Errorf("token = %s", token)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestResetTokenGenerator_RandomFailure(t *testing.T) {
	g := &ResetTokenGenerator{random: failingReader{}}
	if _, _, err := g.Generate(); err == nil {
		t.Error("Generate() should fail when the random source fails")
	}
}
