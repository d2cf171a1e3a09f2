package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jrjohn/smart-waste-go/internal/config"
)

// DefaultCookieName is the session cookie name used by the web client
const DefaultCookieName = "jwt"

// SessionCookie writes and reads the HTTP-only session cookie
type SessionCookie struct {
	name     string
	secure   bool
	sameSite http.SameSite
	maxAge   int
}

// NewSessionCookie creates a SessionCookie from auth settings. The cookie
// lives as long as the tokens the provider issues.
func NewSessionCookie(cfg *config.AuthConfig, jwtProvider *JWTProvider) *SessionCookie {
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	return &SessionCookie{
		name:     name,
		secure:   cfg.CookieSecure,
		sameSite: parseSameSite(cfg.CookieSameSite),
		maxAge:   int(jwtProvider.SessionDuration().Seconds()),
	}
}

// Name returns the cookie name
func (s *SessionCookie) Name() string {
	return s.name
}

// Write sets token as the session cookie
func (s *SessionCookie) Write(c *gin.Context, token string) {
	c.SetSameSite(s.sameSite)
	c.SetCookie(s.name, token, s.maxAge, "/", "", s.secure, true)
}

// Clear overwrites the session cookie with an empty, expired value
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(s.sameSite)
	// gin emits Max-Age=0 for negative values
	c.SetCookie(s.name, "", -1, "/", "", s.secure, true)
}

// Read returns the session token sent by the client
func (s *SessionCookie) Read(c *gin.Context) (string, bool) {
	token, err := c.Cookie(s.name)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
