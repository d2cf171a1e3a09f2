package impl

import (
	"context"
	"strings"
	"time"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
)

// complaintService implements service.ComplaintService
type complaintService struct {
	complaintRepo repository.ComplaintRepository
	now           func() time.Time
}

// NewComplaintService creates a new ComplaintService instance
func NewComplaintService(complaintRepo repository.ComplaintRepository) service.ComplaintService {
	return &complaintService{complaintRepo: complaintRepo, now: time.Now}
}

func (s *complaintService) Create(ctx context.Context, req *request.CreateComplaintRequest) (*entity.Complaint, error) {
	if strings.TrimSpace(req.BinArea) == "" || strings.TrimSpace(req.UserEmail) == "" || strings.TrimSpace(req.Complaint) == "" {
		return nil, service.ErrComplaintFields
	}
	if err := service.ValidateSchedule(req.Date, req.Time); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	complaint := &entity.Complaint{
		BinArea:   req.BinArea,
		UserEmail: strings.ToLower(strings.TrimSpace(req.UserEmail)),
		Text:      req.Complaint,
		Date:      orDefault(req.Date, now.Format(entity.DateLayout)),
		Time:      orDefault(req.Time, now.Format(entity.ClockLayout)),
		Status:    entity.ComplaintPending,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, internal(err)
	}
	return complaint, nil
}

func (s *complaintService) List(ctx context.Context) ([]*entity.Complaint, error) {
	complaints, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return complaints, nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Complaint, error) {
	next := entity.ComplaintStatus(status)
	if !next.IsValid() {
		return nil, service.ErrInvalidStatus
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internal(err)
	}
	if complaint == nil {
		return nil, service.ErrComplaintNotFound
	}

	complaint.Status = next
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, internal(err)
	}
	return complaint, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
