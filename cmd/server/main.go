// Command server runs the Smart Waste HTTP API for the admin, driver and
// citizen dashboards. Unless -jobs=false is given it also fires the daily
// work purge, so a single binary covers small deployments; larger ones run
// cmd/worker for the jobs and start every API replica with -jobs=false.
package main

import (
	"flag"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/di"
)

func main() {
	configFile := flag.String("config", "", "config file, overrides WASTE_CONFIG_FILE")
	runJobs := flag.Bool("jobs", true, "fire scheduled jobs in this process")
	flag.Parse()

	if *configFile != "" {
		_ = os.Setenv("WASTE_CONFIG_FILE", *configFile)
	}

	opts := []fx.Option{
		di.AppModule,
		fx.Invoke(di.PrintBanner),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	}
	if !*runJobs {
		opts = append(opts, fx.Decorate(withoutJobs))
	}

	fx.New(opts...).Run()
}

func withoutJobs(cfg *config.SchedulerConfig) *config.SchedulerConfig {
	c := *cfg
	c.Enabled = false
	return &c
}
