package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// binDAO implements dao.BinDAO using GORM.
type binDAO struct {
	*baseGormDAO[entity.Bin]
}

// NewBinDAO creates a new GORM-based BinDAO.
func NewBinDAO(db *gorm.DB) dao.BinDAO {
	return &binDAO{baseGormDAO: newBaseGormDAO[entity.Bin](db)}
}

// FindByArea returns bins whose locality or landmark contains area.
func (d *binDAO) FindByArea(ctx context.Context, area string) ([]*entity.Bin, error) {
	pattern := containsPattern(area)
	var bins []*entity.Bin
	err := d.db.WithContext(ctx).
		Where("LOWER(locality) LIKE ? ESCAPE '!' OR LOWER(landmark) LIKE ? ESCAPE '!'", pattern, pattern).
		Order("id").
		Find(&bins).Error
	return bins, err
}

// FindLocated returns bins with both coordinates set.
func (d *binDAO) FindLocated(ctx context.Context) ([]*entity.Bin, error) {
	var bins []*entity.Bin
	err := d.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id").
		Find(&bins).Error
	return bins, err
}

// complaintDAO implements dao.ComplaintDAO using GORM.
type complaintDAO struct {
	*baseGormDAO[entity.Complaint]
}

// NewComplaintDAO creates a new GORM-based ComplaintDAO.
func NewComplaintDAO(db *gorm.DB) dao.ComplaintDAO {
	return &complaintDAO{baseGormDAO: newBaseGormDAO[entity.Complaint](db)}
}

// workDAO implements dao.WorkDAO using GORM.
type workDAO struct {
	*baseGormDAO[entity.Work]
}

// NewWorkDAO creates a new GORM-based WorkDAO.
func NewWorkDAO(db *gorm.DB) dao.WorkDAO {
	return &workDAO{baseGormDAO: newBaseGormDAO[entity.Work](db)}
}

// ExistsByArea reports whether an entry for area exists.
func (d *workDAO) ExistsByArea(ctx context.Context, area string) (bool, error) {
	return d.ExistsBy(ctx, "area", area)
}

// DeleteByDate removes all entries dated date.
func (d *workDAO) DeleteByDate(ctx context.Context, date string) (int64, error) {
	return d.deleteByField(ctx, "date", date)
}
