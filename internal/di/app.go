package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
)

// coreModules are shared by the API server and the headless worker
var coreModules = fx.Options(
	ConfigModule,
	LoggerModule,
	ObservabilityModule,
	DatabaseModule,
	DAOModule,        // DAO layer (between Database and Repository)
	RepositoryModule, // Repository layer (delegates to DAO)
	SecurityModule,
	GeocodingModule,
	MailModule,
	ServiceModule,
	JobsModule,
)

// AppModule aggregates all application modules
var AppModule = fx.Options(
	coreModules,
	MiddlewareModule,
	ControllerModule,
	HTTPServerModule,
	APIModule,
)

// WorkerModule runs the scheduler with only the health endpoints exposed
var WorkerModule = fx.Options(
	coreModules,
	fx.Provide(provideHealthController),
	HTTPServerModule,
)

// PrintBanner prints the application startup banner
func PrintBanner(cfg *config.Config, logger *zap.Logger) {
	logger.Info("===========================================")
	logger.Info("     Smart Waste - Collection Platform     ")
	logger.Info("===========================================")
	logger.Info("Application Info",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	logger.Info("Runtime Config",
		zap.String("database", cfg.Database.Driver),
		zap.String("mail_provider", cfg.Mail.Provider),
		zap.Bool("scheduler", cfg.Scheduler.Enabled),
		zap.Bool("redis", cfg.Redis.Enabled),
	)
	logger.Info("===========================================")
}
