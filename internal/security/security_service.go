package security

import (
	"github.com/gin-gonic/gin"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

const (
	// ContextKeyIdentity is the key for storing the authenticated identity in context
	ContextKeyIdentity = "current_identity"
	// ContextKeyClaims is the key for storing claims in context
	ContextKeyClaims = "current_claims"
)

// Identity is the authenticated account attached to a request by the role guard
type Identity struct {
	ID    uint
	Role  entity.Role
	Name  string
	Email string
}

// SecurityService provides request-scoped identity helpers
type SecurityService struct{}

// NewSecurityService creates a new SecurityService instance
func NewSecurityService() *SecurityService {
	return &SecurityService{}
}

// GetCurrentIdentity retrieves the authenticated identity from the context
func (s *SecurityService) GetCurrentIdentity(c *gin.Context) *Identity {
	v, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil
	}
	if id, ok := v.(*Identity); ok {
		return id
	}
	return nil
}

// GetCurrentClaims retrieves the current session claims from the context
func (s *SecurityService) GetCurrentClaims(c *gin.Context) *SessionClaims {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	if cl, ok := claims.(*SessionClaims); ok {
		return cl
	}
	return nil
}

// SetCurrentIdentity sets the authenticated identity in the context
func (s *SecurityService) SetCurrentIdentity(c *gin.Context, identity *Identity) {
	c.Set(ContextKeyIdentity, identity)
}

// SetCurrentClaims sets the current claims in the context
func (s *SecurityService) SetCurrentClaims(c *gin.Context, claims *SessionClaims) {
	c.Set(ContextKeyClaims, claims)
}

// IsAuthenticated checks if the current request carries an identity
func (s *SecurityService) IsAuthenticated(c *gin.Context) bool {
	return s.GetCurrentIdentity(c) != nil
}

// HasRole checks if the current identity was resolved for role
func (s *SecurityService) HasRole(c *gin.Context, role entity.Role) bool {
	identity := s.GetCurrentIdentity(c)
	return identity != nil && identity.Role == role
}
