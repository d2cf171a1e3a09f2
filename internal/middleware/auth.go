package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	"github.com/jrjohn/smart-waste-go/internal/security"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

// Role guard messages
const (
	msgNoToken          = "Access Denied. No token provided."
	msgInvalidToken     = "Invalid token."
	msgSubjectNotFound  = "Invalid token or user not found."
	msgInvalidRole      = "Invalid role specified."
	msgInternalAuthFail = "Internal server error"
)

// AuthMiddleware guards routes with the session cookie
type AuthMiddleware struct {
	jwtProvider      *security.JWTProvider
	cookie           *security.SessionCookie
	securityService  *security.SecurityService
	resolver         service.IdentityResolver
	enforceRoleClaim bool
	logger           *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance
func NewAuthMiddleware(
	cfg *config.AuthConfig,
	jwtProvider *security.JWTProvider,
	cookie *security.SessionCookie,
	securityService *security.SecurityService,
	resolver service.IdentityResolver,
	logger *zap.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtProvider:      jwtProvider,
		cookie:           cookie,
		securityService:  securityService,
		resolver:         resolver,
		enforceRoleClaim: cfg.EnforceRoleClaim,
		logger:           logger.Named("auth"),
	}
}

// Protect admits a request only when its session token names an account
// that exists in the collection of role. The role is fixed per route; the
// token's own role claim is checked only when enforce_role_claim is set.
func (m *AuthMiddleware) Protect(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !role.IsValid() {
			abort(c, http.StatusBadRequest, msgInvalidRole)
			return
		}

		token, ok := m.cookie.Read(c)
		if !ok {
			abort(c, http.StatusUnauthorized, msgNoToken)
			return
		}

		claims, err := m.jwtProvider.ValidateSessionToken(token)
		if err != nil {
			abort(c, http.StatusBadRequest, msgInvalidToken)
			return
		}

		if m.enforceRoleClaim && claims.Role != role {
			abort(c, http.StatusUnauthorized, msgSubjectNotFound)
			return
		}

		identity, err := m.resolver.Resolve(c.Request.Context(), role, claims.UserID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrValidation) {
				abort(c, http.StatusBadRequest, msgInvalidRole)
				return
			}
			m.logger.Error("Identity lookup failed",
				zap.String("role", string(role)),
				zap.Stringer("subject", claims.UserID),
				zap.Error(err),
			)
			abort(c, http.StatusInternalServerError, msgInternalAuthFail)
			return
		}
		if identity == nil {
			abort(c, http.StatusUnauthorized, msgSubjectNotFound)
			return
		}

		m.securityService.SetCurrentClaims(c, claims)
		m.securityService.SetCurrentIdentity(c, identity)
		c.Next()
	}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, response.Failure[any](message))
}
