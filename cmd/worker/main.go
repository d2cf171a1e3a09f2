package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/di"
	"github.com/jrjohn/smart-waste-go/internal/jobs/scheduler"
)

func main() {
	runOnce := flag.String("run", "", "run the named job once and exit")
	flag.Parse()

	opts := []fx.Option{
		di.WorkerModule,
		fx.Invoke(di.PrintBanner),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	}
	if *runOnce != "" {
		opts = append(opts, fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner, sched *scheduler.Scheduler, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go runJob(sd, sched, *runOnce, logger)
					return nil
				},
			})
		}))
	}

	fx.New(opts...).Run()
}

func runJob(sd fx.Shutdowner, sched *scheduler.Scheduler, name string, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	code := 0
	if err := sched.RunNow(ctx, name); err != nil {
		logger.Error("Job failed", zap.String("job", name), zap.Error(err))
		code = 1
	} else {
		logger.Info("Job finished", zap.String("job", name))
	}
	if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
