package service

import (
	"context"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
)

// WorkService defines the interface for driver work reports
type WorkService interface {
	// Create records a report; an area accepts one open entry at a time
	Create(ctx context.Context, req *request.CreateWorkRequest) (*entity.Work, error)

	List(ctx context.Context) ([]*entity.Work, error)

	// PurgeDay removes every entry dated day and returns how many were removed
	PurgeDay(ctx context.Context, day string) (int64, error)
}
