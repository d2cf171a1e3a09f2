// Package impl provides repository implementations that delegate to the DAO layer.
// This separation allows repositories to focus on business logic while DAOs handle
// database-specific operations.
package impl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
)

// adminRepository implements repository.AdminRepository by delegating to AdminDAO.
type adminRepository struct {
	dao dao.AdminDAO
}

// NewAdminRepository creates a new AdminRepository instance.
func NewAdminRepository(adminDAO dao.AdminDAO) repository.AdminRepository {
	return &adminRepository{dao: adminDAO}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return r.dao.Create(ctx, admin)
}

func (r *adminRepository) GetByID(ctx context.Context, id uint) (*entity.Admin, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *adminRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*entity.Admin, error) {
	return r.dao.FindByUID(ctx, uid)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.dao.FindByEmail(ctx, email)
}

func (r *adminRepository) List(ctx context.Context) ([]*entity.Admin, error) {
	return r.dao.FindAll(ctx)
}

func (r *adminRepository) IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	return r.dao.ExistsByEmailOrMobile(ctx, email, mobile, excludeID)
}

// driverRepository implements repository.DriverRepository by delegating to DriverDAO.
type driverRepository struct {
	dao dao.DriverDAO
}

// NewDriverRepository creates a new DriverRepository instance.
func NewDriverRepository(driverDAO dao.DriverDAO) repository.DriverRepository {
	return &driverRepository{dao: driverDAO}
}

func (r *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	return r.dao.Create(ctx, driver)
}

func (r *driverRepository) GetByID(ctx context.Context, id uint) (*entity.Driver, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *driverRepository) GetByCode(ctx context.Context, code string) (*entity.Driver, error) {
	return r.dao.FindByCode(ctx, code)
}

func (r *driverRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*entity.Driver, error) {
	return r.dao.FindByUID(ctx, uid)
}

func (r *driverRepository) GetByEmail(ctx context.Context, email string) (*entity.Driver, error) {
	return r.dao.FindByEmail(ctx, email)
}

func (r *driverRepository) SearchByEmail(ctx context.Context, fragment string) (*entity.Driver, error) {
	return r.dao.SearchByEmail(ctx, fragment)
}

func (r *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	return r.dao.Update(ctx, driver)
}

func (r *driverRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *driverRepository) List(ctx context.Context) ([]*entity.Driver, error) {
	return r.dao.FindAll(ctx)
}

func (r *driverRepository) IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	return r.dao.ExistsByEmailOrMobile(ctx, email, mobile, excludeID)
}

// userRepository implements repository.UserRepository by delegating to UserDAO.
type userRepository struct {
	dao dao.UserDAO
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return &userRepository{dao: userDAO}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.dao.Create(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *userRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return r.dao.FindByUID(ctx, uid)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.dao.FindByEmail(ctx, email)
}

func (r *userRepository) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	return r.dao.FindByResetToken(ctx, tokenHash, now)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.dao.Update(ctx, user)
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.dao.FindAll(ctx)
}

func (r *userRepository) IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	return r.dao.ExistsByEmailOrMobile(ctx, email, mobile, excludeID)
}
