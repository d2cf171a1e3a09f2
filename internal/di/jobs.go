package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/jobs"
	"github.com/jrjohn/smart-waste-go/internal/jobs/lock"
	"github.com/jrjohn/smart-waste-go/internal/jobs/scheduler"
	"github.com/jrjohn/smart-waste-go/internal/observability"
)

// JobsModule provides the cron scheduler and its maintenance jobs
var JobsModule = fx.Module("jobs",
	fx.Provide(
		provideLocker,
		provideScheduler,
	),
	fx.Invoke(
		registerWorkPurge,
		startScheduler,
	),
)

// provideLocker uses Redis when enabled so that only one replica runs each
// scheduled window; otherwise locks are process-local.
func provideLocker(lc fx.Lifecycle, cfg *config.RedisConfig, logger *zap.Logger) (lock.Locker, error) {
	if !cfg.Enabled {
		logger.Info("Redis disabled, using in-process job locks")
		return lock.NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection")
			return client.Close()
		},
	})

	return lock.NewRedisLocker(client), nil
}

func provideScheduler(
	cfg *config.SchedulerConfig,
	locker lock.Locker,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) (*scheduler.Scheduler, error) {
	return scheduler.NewScheduler(cfg, locker, metrics, logger)
}

func registerWorkPurge(
	cfg *config.SchedulerConfig,
	sched *scheduler.Scheduler,
	works service.WorkService,
	retention entity.WorkRetention,
) error {
	return sched.Register(jobs.NewWorkPurgeJob(cfg.WorkPurgeSchedule, works, retention))
}

// startScheduler starts firing jobs when the scheduler is enabled
func startScheduler(lc fx.Lifecycle, cfg *config.SchedulerConfig, sched *scheduler.Scheduler, logger *zap.Logger) {
	if !cfg.Enabled {
		logger.Info("Scheduler disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := sched.Stop(ctx); err != nil {
				logger.Warn("Error stopping scheduler", zap.Error(err))
			}
			return nil
		},
	})
}
