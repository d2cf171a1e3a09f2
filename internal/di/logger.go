package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(
		provideLevelLogger,
		provideLogger,
	),
	fx.Invoke(watchLogLevel),
)

func provideLevelLogger(cfg *config.LogConfig, app *config.AppConfig) (*logger.Logger, error) {
	return logger.NewWithLevel(logger.Config{
		Level:       cfg.Level,
		Development: app.Debug,
		Encoding:    cfg.Encoding,
		File:        cfg.File,
		MaxSizeMB:   cfg.MaxSizeMB,
		MaxBackups:  cfg.MaxBackups,
		MaxAgeDays:  cfg.MaxAgeDays,
		Compress:    cfg.Compress,
	})
}

func provideLogger(l *logger.Logger) *zap.Logger {
	return l.Logger
}

// watchLogLevel applies log.level changes from the config file without a
// restart
func watchLogLevel(l *logger.Logger) error {
	_, err := config.WatchFile(func(next *config.Config) {
		level := logger.ParseLevel(next.Log.Level)
		if level != l.Level.Level() {
			l.Level.SetLevel(level)
			l.Info("Log level changed", zap.String("level", level.String()))
		}
	})
	return err
}
