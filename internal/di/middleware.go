package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/middleware"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// MiddlewareModule provides middleware dependencies
var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		provideAuthMiddleware,
		middleware.NewLoginThrottle,
	),
)

func provideAuthMiddleware(
	cfg *config.AuthConfig,
	jwtProvider *security.JWTProvider,
	cookie *security.SessionCookie,
	securityService *security.SecurityService,
	resolver service.IdentityResolver,
	logger *zap.Logger,
) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(cfg, jwtProvider, cookie, securityService, resolver, logger)
}
