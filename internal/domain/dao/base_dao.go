// Package dao defines data access object interfaces for database abstraction.
// The DAO layer provides a clean separation between repository business logic
// and database-specific implementations (MySQL, PostgreSQL, SQLite, MongoDB).
package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicateKey is returned when a write violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// BaseDAO defines common CRUD operations for all DAOs.
// T is the entity type, ID is the identifier type.
type BaseDAO[T any, ID comparable] interface {
	// Create inserts a new entity and assigns its ID.
	Create(ctx context.Context, entity *T) error

	// FindByID retrieves an entity by its primary key.
	// Returns nil, nil if the entity is not found.
	FindByID(ctx context.Context, id ID) (*T, error)

	// Update overwrites an existing entity.
	Update(ctx context.Context, entity *T) error

	// Delete permanently removes an entity by its ID.
	Delete(ctx context.Context, id ID) error

	// FindAll retrieves every entity ordered by ID.
	FindAll(ctx context.Context) ([]*T, error)

	// Count returns the total number of entities.
	Count(ctx context.Context) (int64, error)

	// ExistsBy checks if an entity exists by a field value.
	ExistsBy(ctx context.Context, field string, value any) (bool, error)
}

// AccountDAO adds the lookups shared by every credential collection.
// Create assigns a UID to accounts that have none.
type AccountDAO[T any] interface {
	BaseDAO[T, uint]

	// FindByUID retrieves an account by its session subject.
	// Returns nil, nil if the account is not found.
	FindByUID(ctx context.Context, uid uuid.UUID) (*T, error)

	// FindByEmail retrieves an account by its exact email.
	// Returns nil, nil if the account is not found.
	FindByEmail(ctx context.Context, email string) (*T, error)

	// ExistsByEmailOrMobile reports whether another account (ID != excludeID)
	// already uses email or mobile. Empty values are ignored.
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string, excludeID uint) (bool, error)
}
