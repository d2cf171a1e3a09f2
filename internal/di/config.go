package di

import (
	"go.uber.org/fx"

	"github.com/jrjohn/smart-waste-go/internal/config"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideServerConfig,
		provideLogConfig,
		provideDatabaseConfig,
		provideRedisConfig,
		provideJWTConfig,
		provideAuthConfig,
		provideCORSConfig,
		provideGeocoderConfig,
		provideMailConfig,
		provideSchedulerConfig,
		provideMetricsConfig,
		provideTracingConfig,
	),
)

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideServerConfig(cfg *config.Config) *config.ServerConfig {
	return &cfg.Server
}

func provideLogConfig(cfg *config.Config) *config.LogConfig {
	return &cfg.Log
}

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideRedisConfig(cfg *config.Config) *config.RedisConfig {
	return &cfg.Redis
}

func provideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.JWT
}

func provideAuthConfig(cfg *config.Config) *config.AuthConfig {
	return &cfg.Auth
}

func provideCORSConfig(cfg *config.Config) *config.CORSConfig {
	return &cfg.CORS
}

func provideGeocoderConfig(cfg *config.Config) *config.GeocoderConfig {
	return &cfg.Geocoder
}

func provideMailConfig(cfg *config.Config) *config.MailConfig {
	return &cfg.Mail
}

func provideSchedulerConfig(cfg *config.Config) *config.SchedulerConfig {
	return &cfg.Scheduler
}

func provideMetricsConfig(cfg *config.Config) *config.MetricsConfig {
	return &cfg.Metrics
}

func provideTracingConfig(cfg *config.Config) *config.TracingConfig {
	return &cfg.Tracing
}
