package dao

import (
	"context"
	"time"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// AdminDAO provides data access for administrator accounts.
type AdminDAO interface {
	AccountDAO[entity.Admin]
}

// DriverDAO provides data access for driver accounts.
type DriverDAO interface {
	AccountDAO[entity.Driver]

	// FindByCode retrieves a driver by business identifier.
	// Returns nil, nil if the driver is not found.
	FindByCode(ctx context.Context, code string) (*entity.Driver, error)

	// SearchByEmail returns the first driver whose email contains fragment,
	// ignoring case. Returns nil, nil when nothing matches.
	SearchByEmail(ctx context.Context, fragment string) (*entity.Driver, error)
}

// UserDAO provides data access for citizen accounts.
type UserDAO interface {
	AccountDAO[entity.User]

	// FindByResetToken retrieves the user holding the reset token digest
	// that is still valid at now. Returns nil, nil if none.
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error)
}
