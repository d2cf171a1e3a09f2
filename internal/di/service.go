package di

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	serviceimpl "github.com/jrjohn/smart-waste-go/internal/domain/service/impl"
	"github.com/jrjohn/smart-waste-go/internal/geocoding"
	"github.com/jrjohn/smart-waste-go/internal/observability"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// ServiceModule provides service layer dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		provideAccountService,
		provideIdentityResolver,
		provideDriverService,
		provideBinService,
		provideComplaintService,
		provideWorkRetention,
		provideWorkService,
		providePasswordResetService,
	),
)

func provideAccountService(
	adminRepo repository.AdminRepository,
	userRepo repository.UserRepository,
	driverRepo repository.DriverRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
	logger *zap.Logger,
) service.AccountService {
	return serviceimpl.NewAccountService(adminRepo, userRepo, driverRepo, jwtProvider, passwordHasher, logger)
}

func provideIdentityResolver(accounts service.AccountService) service.IdentityResolver {
	return accounts
}

func provideDriverService(
	driverRepo repository.DriverRepository,
	passwordHasher *security.PasswordHasher,
	logger *zap.Logger,
) service.DriverService {
	return serviceimpl.NewDriverService(driverRepo, passwordHasher, logger)
}

func provideBinService(binRepo repository.BinRepository, geocoder geocoding.Geocoder, logger *zap.Logger) service.BinService {
	return serviceimpl.NewBinService(binRepo, geocoder, logger)
}

func provideComplaintService(complaintRepo repository.ComplaintRepository) service.ComplaintService {
	return serviceimpl.NewComplaintService(complaintRepo)
}

// provideWorkRetention dates and purges work entries in the scheduler's
// timezone.
func provideWorkRetention(cfg *config.SchedulerConfig) (entity.WorkRetention, error) {
	loc, err := cfg.Location()
	if err != nil {
		return entity.WorkRetention{}, fmt.Errorf("invalid scheduler timezone: %w", err)
	}
	return entity.WorkRetention{Location: loc}, nil
}

func provideWorkService(
	workRepo repository.WorkRepository,
	retention entity.WorkRetention,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) service.WorkService {
	return serviceimpl.NewWorkService(workRepo, retention, metrics, logger)
}

func providePasswordResetService(
	userRepo repository.UserRepository,
	tokens *security.ResetTokenGenerator,
	passwordHasher *security.PasswordHasher,
	notifier service.Notifier,
	app *config.AppConfig,
	logger *zap.Logger,
) service.PasswordResetService {
	return serviceimpl.NewPasswordResetService(userRepo, tokens, passwordHasher, notifier, app.FrontendURL, logger)
}
