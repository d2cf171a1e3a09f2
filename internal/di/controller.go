package di

import (
	"go.uber.org/fx"

	httpctrl "github.com/jrjohn/smart-waste-go/internal/controller/http"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/middleware"
	"github.com/jrjohn/smart-waste-go/internal/observability"
	"github.com/jrjohn/smart-waste-go/internal/resilience"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// ControllerModule provides HTTP controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		provideHealthController,
		provideAdminController,
		provideUserController,
		provideDriverController,
		httpctrl.NewBinController,
		httpctrl.NewComplaintController,
		httpctrl.NewWorkController,
	),
)

func provideHealthController(
	ready httpctrl.ReadinessCheck,
	breakers *resilience.CircuitBreakerRegistry,
	metrics *observability.MetricsProvider,
) *httpctrl.HealthController {
	return httpctrl.NewHealthController(ready, breakers, metrics)
}

func provideAdminController(
	accounts service.AccountService,
	cookie *security.SessionCookie,
	authMiddleware *middleware.AuthMiddleware,
	throttle *middleware.LoginThrottle,
) *httpctrl.AdminController {
	return httpctrl.NewAdminController(accounts, cookie, authMiddleware, throttle)
}

func provideUserController(
	accounts service.AccountService,
	resets service.PasswordResetService,
	cookie *security.SessionCookie,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
	throttle *middleware.LoginThrottle,
) *httpctrl.UserController {
	return httpctrl.NewUserController(accounts, resets, cookie, securityService, authMiddleware, throttle)
}

func provideDriverController(
	accounts service.AccountService,
	drivers service.DriverService,
	cookie *security.SessionCookie,
	authMiddleware *middleware.AuthMiddleware,
	throttle *middleware.LoginThrottle,
) *httpctrl.DriverController {
	return httpctrl.NewDriverController(accounts, drivers, cookie, authMiddleware, throttle)
}
