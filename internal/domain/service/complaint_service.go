package service

import (
	"context"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
)

// ComplaintService defines the interface for complaint operations
type ComplaintService interface {
	Create(ctx context.Context, req *request.CreateComplaintRequest) (*entity.Complaint, error)
	List(ctx context.Context) ([]*entity.Complaint, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*entity.Complaint, error)
}
