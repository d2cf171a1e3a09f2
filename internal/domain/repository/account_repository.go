// Package repository defines the persistence contracts used by services.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// AdminRepository defines the interface for administrator data operations
type AdminRepository interface {
	// Create creates a new admin
	Create(ctx context.Context, admin *entity.Admin) error

	// GetByID retrieves an admin by ID
	GetByID(ctx context.Context, id uint) (*entity.Admin, error)

	// GetByUID retrieves an admin by session subject
	GetByUID(ctx context.Context, uid uuid.UUID) (*entity.Admin, error)

	// GetByEmail retrieves an admin by email
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// List retrieves every admin
	List(ctx context.Context) ([]*entity.Admin, error)

	// IdentityTaken checks whether another admin uses email or mobile
	IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error)
}

// DriverRepository defines the interface for driver data operations
type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	GetByID(ctx context.Context, id uint) (*entity.Driver, error)
	GetByUID(ctx context.Context, uid uuid.UUID) (*entity.Driver, error)
	GetByCode(ctx context.Context, code string) (*entity.Driver, error)
	GetByEmail(ctx context.Context, email string) (*entity.Driver, error)

	// SearchByEmail returns the first driver whose email contains fragment
	SearchByEmail(ctx context.Context, fragment string) (*entity.Driver, error)

	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entity.Driver, error)
	IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error)
}

// UserRepository defines the interface for citizen account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByResetToken retrieves the user whose reset token digest matches
	// and is still valid at now
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error)

	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error)
}
