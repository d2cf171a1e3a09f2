package impl

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/security"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

// driverService implements service.DriverService
type driverService struct {
	driverRepo     repository.DriverRepository
	passwordHasher *security.PasswordHasher
	logger         *zap.Logger
}

// NewDriverService creates a new DriverService instance
func NewDriverService(driverRepo repository.DriverRepository, passwordHasher *security.PasswordHasher, logger *zap.Logger) service.DriverService {
	return &driverService{
		driverRepo:     driverRepo,
		passwordHasher: passwordHasher,
		logger:         logger.Named("driver"),
	}
}

func (s *driverService) Create(ctx context.Context, req *request.CreateDriverRequest) (*entity.Driver, error) {
	err := service.ValidateCredentials(service.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	switch {
	case strings.TrimSpace(req.Address) == "":
		return nil, apperrors.ErrValidation.WithMessage("Address is required")
	case strings.TrimSpace(req.Area) == "":
		return nil, apperrors.ErrValidation.WithMessage("Area is required")
	case strings.TrimSpace(req.Code) == "":
		return nil, apperrors.ErrValidation.WithMessage("Driver ID is required")
	}

	taken, err := s.driverRepo.IdentityTaken(ctx, req.Email, req.Mobile, 0)
	if err != nil {
		return nil, internal(err)
	}
	if taken {
		return nil, service.ErrIdentityInUse
	}
	if err := s.ensureCodeFree(ctx, req.Code, 0); err != nil {
		return nil, err
	}

	hashed, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, internal(err)
	}

	driver := &entity.Driver{
		AccountKey: entity.AccountKey{UID: uuid.New()},
		Code:       req.Code,
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Mobile:     req.Mobile,
		Address:    req.Address,
		Area:       req.Area,
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, duplicateOr(err, service.ErrIdentityInUse)
	}

	s.logger.Info("Driver created", zap.Uint("id", driver.ID), zap.String("code", driver.Code))
	return driver, nil
}

func (s *driverService) List(ctx context.Context) ([]*entity.Driver, error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return drivers, nil
}

func (s *driverService) FindByEmail(ctx context.Context, fragment string) (*entity.Driver, error) {
	driver, err := s.driverRepo.SearchByEmail(ctx, fragment)
	if err != nil {
		return nil, internal(err)
	}
	if driver == nil {
		return nil, service.ErrNoDriverMatch
	}
	return driver, nil
}

func (s *driverService) Update(ctx context.Context, idOrCode string, req *request.UpdateDriverRequest) (*entity.Driver, error) {
	driver, err := s.lookup(ctx, idOrCode)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		if err := service.ValidateEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.Mobile != "" {
		if err := service.ValidateMobile(req.Mobile); err != nil {
			return nil, err
		}
	}
	if req.Email != "" || req.Mobile != "" {
		taken, err := s.driverRepo.IdentityTaken(ctx, req.Email, req.Mobile, driver.ID)
		if err != nil {
			return nil, internal(err)
		}
		if taken {
			return nil, service.ErrIdentityInUse
		}
	}
	if req.Code != "" && req.Code != driver.Code {
		if err := s.ensureCodeFree(ctx, req.Code, driver.ID); err != nil {
			return nil, err
		}
	}

	assign(&driver.Name, req.Name)
	assign(&driver.Email, req.Email)
	assign(&driver.Mobile, req.Mobile)
	assign(&driver.Address, req.Address)
	assign(&driver.Area, req.Area)
	assign(&driver.Code, req.Code)

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, duplicateOr(err, service.ErrIdentityInUse)
	}
	return driver, nil
}

func (s *driverService) Delete(ctx context.Context, idOrCode string) error {
	driver, err := s.lookup(ctx, idOrCode)
	if err != nil {
		return err
	}
	if err := s.driverRepo.Delete(ctx, driver.ID); err != nil {
		return internal(err)
	}

	s.logger.Info("Driver deleted", zap.Uint("id", driver.ID), zap.String("code", driver.Code))
	return nil
}

// lookup resolves idOrCode as a system id first, then as a business code
func (s *driverService) lookup(ctx context.Context, idOrCode string) (*entity.Driver, error) {
	if id, err := strconv.ParseUint(idOrCode, 10, 64); err == nil && id > 0 {
		driver, err := s.driverRepo.GetByID(ctx, uint(id))
		if err != nil {
			return nil, internal(err)
		}
		if driver != nil {
			return driver, nil
		}
	}

	driver, err := s.driverRepo.GetByCode(ctx, idOrCode)
	if err != nil {
		return nil, internal(err)
	}
	if driver == nil {
		return nil, service.ErrDriverNotFound
	}
	return driver, nil
}

func (s *driverService) ensureCodeFree(ctx context.Context, code string, excludeID uint) error {
	existing, err := s.driverRepo.GetByCode(ctx, code)
	if err != nil {
		return internal(err)
	}
	if existing != nil && existing.ID != excludeID {
		return service.ErrDriverCodeInUse
	}
	return nil
}

// assign overwrites dst unless v is empty
func assign(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
