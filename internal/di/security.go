package di

import (
	"go.uber.org/fx"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// SecurityModule provides security-related dependencies
var SecurityModule = fx.Module("security",
	fx.Provide(
		provideJWTProvider,
		providePasswordHasher,
		provideSecurityService,
		provideSessionCookie,
		security.NewResetTokenGenerator,
	),
)

func provideJWTProvider(cfg *config.JWTConfig) *security.JWTProvider {
	return security.NewJWTProvider(cfg)
}

func providePasswordHasher() *security.PasswordHasher {
	return security.NewPasswordHasher()
}

func provideSecurityService() *security.SecurityService {
	return security.NewSecurityService()
}

func provideSessionCookie(cfg *config.AuthConfig, jwtProvider *security.JWTProvider) *security.SessionCookie {
	return security.NewSessionCookie(cfg, jwtProvider)
}
