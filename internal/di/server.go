package di

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	httpctrl "github.com/jrjohn/smart-waste-go/internal/controller/http"
	"github.com/jrjohn/smart-waste-go/internal/jobs"
	"github.com/jrjohn/smart-waste-go/internal/jobs/scheduler"
	"github.com/jrjohn/smart-waste-go/internal/middleware"
	"github.com/jrjohn/smart-waste-go/internal/observability"
)

// HTTPServerModule provides HTTP server dependencies
var HTTPServerModule = fx.Module("http_server",
	fx.Provide(provideGinEngine),
	fx.Provide(provideHTTPServer),
	fx.Invoke(registerHealthRoutes),
	fx.Invoke(startHTTPServer),
)

// APIModule mounts the REST API on the engine
var APIModule = fx.Module("api",
	fx.Invoke(registerAPIRoutes),
	fx.Invoke(registerThrottlePrune),
)

func provideGinEngine(
	app *config.AppConfig,
	cors *config.CORSConfig,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) *gin.Engine {
	if !app.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cors.AllowOrigins...)))
	router.Use(observability.TracingMiddleware(app.Name, metrics))

	return router
}

func provideHTTPServer(cfg *config.ServerConfig, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func registerHealthRoutes(router *gin.Engine, health *httpctrl.HealthController) {
	health.RegisterRoutes(router)
}

// Controllers is a struct that holds all HTTP controllers for fx to inject
type Controllers struct {
	fx.In

	Admin     *httpctrl.AdminController
	User      *httpctrl.UserController
	Driver    *httpctrl.DriverController
	Bin       *httpctrl.BinController
	Complaint *httpctrl.ComplaintController
	Work      *httpctrl.WorkController
}

func registerAPIRoutes(router *gin.Engine, controllers Controllers) {
	api := router.Group("/api")

	controllers.Admin.RegisterRoutes(api)
	controllers.User.RegisterRoutes(api)
	controllers.Driver.RegisterRoutes(api)
	controllers.Bin.RegisterRoutes(api)
	controllers.Complaint.RegisterRoutes(api)
	controllers.Work.RegisterRoutes(api)
}

// registerThrottlePrune drops idle login limiter buckets on a schedule
func registerThrottlePrune(sched *scheduler.Scheduler, throttle *middleware.LoginThrottle) error {
	return sched.Register(jobs.NewThrottlePruneJob(throttle))
}

func startHTTPServer(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting HTTP server", zap.String("address", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
