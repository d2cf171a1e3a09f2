package impl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	"github.com/jrjohn/smart-waste-go/internal/security"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

// accountService implements service.AccountService
type accountService struct {
	adminRepo      repository.AdminRepository
	userRepo       repository.UserRepository
	driverRepo     repository.DriverRepository
	jwtProvider    *security.JWTProvider
	passwordHasher *security.PasswordHasher
	logger         *zap.Logger
}

// NewAccountService creates a new AccountService instance
func NewAccountService(
	adminRepo repository.AdminRepository,
	userRepo repository.UserRepository,
	driverRepo repository.DriverRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
	logger *zap.Logger,
) service.AccountService {
	return &accountService{
		adminRepo:      adminRepo,
		userRepo:       userRepo,
		driverRepo:     driverRepo,
		jwtProvider:    jwtProvider,
		passwordHasher: passwordHasher,
		logger:         logger.Named("account"),
	}
}

func (s *accountService) SignupAdmin(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	taken, err := s.adminRepo.IdentityTaken(ctx, req.Email, req.Mobile, 0)
	if err != nil {
		return nil, internal(err)
	}
	if taken {
		return nil, service.ErrIdentityInUse
	}

	hashed, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, internal(err)
	}

	admin := &entity.Admin{
		AccountKey: entity.AccountKey{UID: uuid.New()},
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Mobile:     req.Mobile,
		City:       req.City,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, duplicateOr(err, service.ErrIdentityInUse)
	}

	s.logger.Info("Admin account created", zap.Uint("id", admin.ID))
	return s.session(admin.UID, entity.RoleAdmin, response.FromAdmin(admin))
}

func (s *accountService) SignupUser(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.IdentityTaken(ctx, req.Email, req.Mobile, 0)
	if err != nil {
		return nil, internal(err)
	}
	if taken {
		return nil, service.ErrIdentityInUse
	}

	hashed, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, internal(err)
	}

	user := &entity.User{
		AccountKey: entity.AccountKey{UID: uuid.New()},
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Mobile:     req.Mobile,
		City:       req.City,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, duplicateOr(err, service.ErrIdentityInUse)
	}

	s.logger.Info("User account created", zap.Uint("id", user.ID))
	return s.session(user.UID, entity.RoleUser, response.FromUser(user))
}

func (s *accountService) Login(ctx context.Context, role entity.Role, req *request.LoginRequest) (*response.SessionResponse, error) {
	var (
		uid     uuid.UUID
		hash    string
		account *response.AccountResponse
	)

	switch role {
	case entity.RoleAdmin:
		admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, internal(err)
		}
		if admin == nil {
			return nil, service.ErrAccountNotFound
		}
		uid, hash, account = admin.UID, admin.Password, response.FromAdmin(admin)
	case entity.RoleUser:
		user, err := s.userRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, internal(err)
		}
		if user == nil {
			return nil, service.ErrAccountNotFound
		}
		uid, hash, account = user.UID, user.Password, response.FromUser(user)
	case entity.RoleDriver:
		driver, err := s.driverRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, internal(err)
		}
		if driver == nil {
			return nil, service.ErrAccountNotFound
		}
		uid, hash, account = driver.UID, driver.Password, response.FromDriver(driver)
	default:
		return nil, service.ErrInvalidRole
	}

	if !s.passwordHasher.Verify(req.Password, hash) {
		return nil, service.ErrIncorrectPassword
	}

	return s.session(uid, role, account)
}

func (s *accountService) ListAdmins(ctx context.Context) ([]*response.AccountResponse, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, internal(err)
	}

	out := make([]*response.AccountResponse, len(admins))
	for i, a := range admins {
		out[i] = response.FromAdmin(a)
	}
	return out, nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]*response.AccountResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, internal(err)
	}

	out := make([]*response.AccountResponse, len(users))
	for i, u := range users {
		out[i] = response.FromUser(u)
	}
	return out, nil
}

func (s *accountService) GetUserByEmail(ctx context.Context, email string) (*response.AccountResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, internal(err)
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}
	return response.FromUser(user), nil
}

func (s *accountService) UpdateUserProfile(ctx context.Context, identityID, pathID uint, req *request.UpdateProfileRequest) (*response.AccountResponse, error) {
	if identityID != pathID {
		return nil, service.ErrProfileForbidden
	}

	user, err := s.userRepo.GetByID(ctx, identityID)
	if err != nil {
		return nil, internal(err)
	}
	if user == nil {
		return nil, service.ErrUserNotFound
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

	taken, err := s.userRepo.IdentityTaken(ctx, req.Email, req.Mobile, user.ID)
	if err != nil {
		return nil, internal(err)
	}
	if taken {
		return nil, service.ErrProfileIdentityUsed
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}
	if req.City != "" {
		user.City = req.City
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, duplicateOr(err, service.ErrProfileIdentityUsed)
	}
	return response.FromUser(user), nil
}

func (s *accountService) Resolve(ctx context.Context, role entity.Role, uid uuid.UUID) (*security.Identity, error) {
	switch role {
	case entity.RoleAdmin:
		admin, err := s.adminRepo.GetByUID(ctx, uid)
		if err != nil || admin == nil {
			return nil, err
		}
		return &security.Identity{ID: admin.ID, Role: role, Name: admin.Name, Email: admin.Email}, nil
	case entity.RoleUser:
		user, err := s.userRepo.GetByUID(ctx, uid)
		if err != nil || user == nil {
			return nil, err
		}
		return &security.Identity{ID: user.ID, Role: role, Name: user.Name, Email: user.Email}, nil
	case entity.RoleDriver:
		driver, err := s.driverRepo.GetByUID(ctx, uid)
		if err != nil || driver == nil {
			return nil, err
		}
		return &security.Identity{ID: driver.ID, Role: role, Name: driver.Name, Email: driver.Email}, nil
	}
	return nil, service.ErrInvalidRole
}

func (s *accountService) session(uid uuid.UUID, role entity.Role, account *response.AccountResponse) (*response.SessionResponse, error) {
	token, err := s.jwtProvider.GenerateSessionToken(uid, role)
	if err != nil {
		return nil, internal(err)
	}
	return &response.SessionResponse{Account: account, Token: token}, nil
}

func validateSignup(req *request.SignupRequest) error {
	return service.ValidateCredentials(service.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
}

// internal wraps a persistence or infrastructure failure as a 500
func internal(err error) error {
	return apperrors.Wrap(err, apperrors.ErrInternalError)
}

// duplicateOr maps a unique index violation to dup, anything else to a 500
func duplicateOr(err error, dup *apperrors.AppError) error {
	if errors.Is(err, dao.ErrDuplicateKey) {
		return dup.WithError(err)
	}
	return internal(err)
}
