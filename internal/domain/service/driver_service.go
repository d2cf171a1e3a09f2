package service

import (
	"context"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
)

// DriverService defines the interface for driver administration. idOrCode
// arguments are tried as the numeric system id first, then as the business code.
type DriverService interface {
	Create(ctx context.Context, req *request.CreateDriverRequest) (*entity.Driver, error)
	List(ctx context.Context) ([]*entity.Driver, error)

	// FindByEmail returns the first driver whose email contains fragment
	FindByEmail(ctx context.Context, fragment string) (*entity.Driver, error)

	Update(ctx context.Context, idOrCode string, req *request.UpdateDriverRequest) (*entity.Driver, error)
	Delete(ctx context.Context, idOrCode string) error
}
