package dao

import (
	"context"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// BinDAO provides data access for bins.
type BinDAO interface {
	BaseDAO[entity.Bin, uint]

	// FindByArea returns bins whose locality or landmark contains area,
	// ignoring case. The area is matched literally.
	FindByArea(ctx context.Context, area string) ([]*entity.Bin, error)

	// FindLocated returns bins with resolved coordinates.
	FindLocated(ctx context.Context) ([]*entity.Bin, error)
}

// ComplaintDAO provides data access for complaints.
type ComplaintDAO interface {
	BaseDAO[entity.Complaint, uint]
}

// WorkDAO provides data access for work entries.
type WorkDAO interface {
	BaseDAO[entity.Work, uint]

	// ExistsByArea reports whether an entry for area exists.
	ExistsByArea(ctx context.Context, area string) (bool, error)

	// DeleteByDate removes all entries dated date and returns how many.
	DeleteByDate(ctx context.Context, date string) (int64, error)
}
