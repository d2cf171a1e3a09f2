package impl

import (
	"context"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
)

type binRepository struct {
	dao dao.BinDAO
}

// NewBinRepository creates a new BinRepository instance.
func NewBinRepository(binDAO dao.BinDAO) repository.BinRepository {
	return &binRepository{dao: binDAO}
}

func (r *binRepository) Create(ctx context.Context, bin *entity.Bin) error {
	return r.dao.Create(ctx, bin)
}

func (r *binRepository) GetByID(ctx context.Context, id uint) (*entity.Bin, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *binRepository) Update(ctx context.Context, bin *entity.Bin) error {
	return r.dao.Update(ctx, bin)
}

func (r *binRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *binRepository) List(ctx context.Context) ([]*entity.Bin, error) {
	return r.dao.FindAll(ctx)
}

func (r *binRepository) ListByArea(ctx context.Context, area string) ([]*entity.Bin, error) {
	return r.dao.FindByArea(ctx, area)
}

func (r *binRepository) ListLocated(ctx context.Context) ([]*entity.Bin, error) {
	return r.dao.FindLocated(ctx)
}

type complaintRepository struct {
	dao dao.ComplaintDAO
}

// NewComplaintRepository creates a new ComplaintRepository instance.
func NewComplaintRepository(complaintDAO dao.ComplaintDAO) repository.ComplaintRepository {
	return &complaintRepository{dao: complaintDAO}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	return r.dao.Create(ctx, complaint)
}

func (r *complaintRepository) GetByID(ctx context.Context, id uint) (*entity.Complaint, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	return r.dao.Update(ctx, complaint)
}

func (r *complaintRepository) List(ctx context.Context) ([]*entity.Complaint, error) {
	return r.dao.FindAll(ctx)
}

type workRepository struct {
	dao dao.WorkDAO
}

// NewWorkRepository creates a new WorkRepository instance.
func NewWorkRepository(workDAO dao.WorkDAO) repository.WorkRepository {
	return &workRepository{dao: workDAO}
}

func (r *workRepository) Create(ctx context.Context, work *entity.Work) error {
	return r.dao.Create(ctx, work)
}

func (r *workRepository) List(ctx context.Context) ([]*entity.Work, error) {
	return r.dao.FindAll(ctx)
}

func (r *workRepository) AreaTaken(ctx context.Context, area string) (bool, error) {
	return r.dao.ExistsByArea(ctx, area)
}

func (r *workRepository) DeleteByDate(ctx context.Context, date string) (int64, error) {
	return r.dao.DeleteByDate(ctx, date)
}
