package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// accountGormDAO implements the lookups shared by the credential tables.
type accountGormDAO[T any] struct {
	*baseGormDAO[T]
}

func newAccountGormDAO[T any](db *gorm.DB) *accountGormDAO[T] {
	return &accountGormDAO[T]{baseGormDAO: newBaseGormDAO[T](db)}
}

// Create assigns a UID when missing and inserts the account.
func (d *accountGormDAO[T]) Create(ctx context.Context, account *T) error {
	if k, ok := any(account).(interface{ EnsureUID() }); ok {
		k.EnsureUID()
	}
	return d.baseGormDAO.Create(ctx, account)
}

// FindByUID retrieves an account by its session subject.
func (d *accountGormDAO[T]) FindByUID(ctx context.Context, uid uuid.UUID) (*T, error) {
	return d.findByField(ctx, "uid", uid)
}

// FindByEmail retrieves an account by its email.
func (d *accountGormDAO[T]) FindByEmail(ctx context.Context, email string) (*T, error) {
	return d.findByField(ctx, "email", email)
}

// ExistsByEmailOrMobile checks whether another account holds email or mobile.
func (d *accountGormDAO[T]) ExistsByEmailOrMobile(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	if email == "" && mobile == "" {
		return false, nil
	}

	var model T
	query := d.db.WithContext(ctx).Model(&model)
	switch {
	case email != "" && mobile != "":
		query = query.Where("(email = ? OR mobile = ?)", email, mobile)
	case email != "":
		query = query.Where("email = ?", email)
	default:
		query = query.Where("mobile = ?", mobile)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// adminDAO implements dao.AdminDAO using GORM.
type adminDAO struct {
	*accountGormDAO[entity.Admin]
}

// NewAdminDAO creates a new GORM-based AdminDAO.
func NewAdminDAO(db *gorm.DB) dao.AdminDAO {
	return &adminDAO{accountGormDAO: newAccountGormDAO[entity.Admin](db)}
}

// driverDAO implements dao.DriverDAO using GORM.
type driverDAO struct {
	*accountGormDAO[entity.Driver]
}

// NewDriverDAO creates a new GORM-based DriverDAO.
func NewDriverDAO(db *gorm.DB) dao.DriverDAO {
	return &driverDAO{accountGormDAO: newAccountGormDAO[entity.Driver](db)}
}

// FindByCode retrieves a driver by business identifier.
func (d *driverDAO) FindByCode(ctx context.Context, code string) (*entity.Driver, error) {
	return d.findByField(ctx, "driver_code", code)
}

// SearchByEmail returns the first driver whose email contains fragment.
func (d *driverDAO) SearchByEmail(ctx context.Context, fragment string) (*entity.Driver, error) {
	query := d.db.WithContext(ctx).Where("LOWER(email) LIKE ? ESCAPE '!'", containsPattern(fragment))
	return d.findOne(ctx, query)
}

// userDAO implements dao.UserDAO using GORM.
type userDAO struct {
	*accountGormDAO[entity.User]
}

// NewUserDAO creates a new GORM-based UserDAO.
func NewUserDAO(db *gorm.DB) dao.UserDAO {
	return &userDAO{accountGormDAO: newAccountGormDAO[entity.User](db)}
}

// FindByResetToken retrieves the user holding a still-valid reset token.
func (d *userDAO) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	query := d.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expiry > ?", tokenHash, now)
	return d.findOne(ctx, query)
}
