package repository

import (
	"context"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// BinRepository defines the interface for bin data operations
type BinRepository interface {
	Create(ctx context.Context, bin *entity.Bin) error
	GetByID(ctx context.Context, id uint) (*entity.Bin, error)
	Update(ctx context.Context, bin *entity.Bin) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entity.Bin, error)

	// ListByArea retrieves bins whose locality or landmark contains area
	ListByArea(ctx context.Context, area string) ([]*entity.Bin, error)

	// ListLocated retrieves bins with resolved coordinates
	ListLocated(ctx context.Context) ([]*entity.Bin, error)
}

// ComplaintRepository defines the interface for complaint data operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id uint) (*entity.Complaint, error)
	Update(ctx context.Context, complaint *entity.Complaint) error
	List(ctx context.Context) ([]*entity.Complaint, error)
}

// WorkRepository defines the interface for work entry operations
type WorkRepository interface {
	Create(ctx context.Context, work *entity.Work) error
	List(ctx context.Context) ([]*entity.Work, error)

	// AreaTaken checks whether an entry for area already exists
	AreaTaken(ctx context.Context, area string) (bool, error)

	// DeleteByDate removes every entry dated date and returns the count
	DeleteByDate(ctx context.Context, date string) (int64, error)
}
