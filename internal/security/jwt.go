package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// DefaultSessionDuration is used when no session duration is configured
const DefaultSessionDuration = 15 * 24 * time.Hour

// SessionClaims represents the JWT claims carried by the session cookie.
// UserID is the account UID, which no two collections share. Role names
// the collection the token was issued from.
type SessionClaims struct {
	UserID uuid.UUID   `json:"userId"`
	Role   entity.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider handles session token generation and validation
type JWTProvider struct {
	secret          []byte
	sessionDuration time.Duration
	issuer          string
	now             func() time.Time
}

// NewJWTProvider creates a new JWTProvider instance
func NewJWTProvider(cfg *config.JWTConfig) *JWTProvider {
	duration := cfg.SessionDuration
	if duration <= 0 {
		duration = DefaultSessionDuration
	}
	return &JWTProvider{
		secret:          []byte(cfg.Secret),
		sessionDuration: duration,
		issuer:          cfg.Issuer,
		now:             time.Now,
	}
}

// GenerateSessionToken signs a session token for the account uid of role
func (p *JWTProvider) GenerateSessionToken(uid uuid.UUID, role entity.Role) (string, error) {
	now := p.now()
	claims := SessionClaims{
		UserID: uid,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.sessionDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ValidateSessionToken validates a session token and returns the claims
func (p *JWTProvider) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SessionDuration returns the lifetime of issued tokens
func (p *JWTProvider) SessionDuration() time.Duration {
	return p.sessionDuration
}
