package impl

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/observability"
)

// workService implements service.WorkService
type workService struct {
	workRepo  repository.WorkRepository
	retention entity.WorkRetention
	metrics   *observability.MetricsProvider
	logger    *zap.Logger
	now       func() time.Time
}

// NewWorkService creates a new WorkService instance. Entries without a
// date or time are stamped on the retention clock, the same clock the
// purge job uses.
func NewWorkService(
	workRepo repository.WorkRepository,
	retention entity.WorkRetention,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) service.WorkService {
	return &workService{
		workRepo:  workRepo,
		retention: retention,
		metrics:   metrics,
		logger:    logger.Named("work"),
		now:       time.Now,
	}
}

func (s *workService) Create(ctx context.Context, req *request.CreateWorkRequest) (*entity.Work, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Area) == "" || req.Status == "" {
		return nil, service.ErrWorkFieldsRequired
	}
	status := entity.WorkStatus(req.Status)
	if !status.IsValid() {
		return nil, service.ErrInvalidWorkStatus
	}
	if err := service.ValidateSchedule(req.Date, req.Time); err != nil {
		return nil, err
	}

	taken, err := s.workRepo.AreaTaken(ctx, req.Area)
	if err != nil {
		return nil, internal(err)
	}
	if taken {
		return nil, service.ErrWorkAreaTaken
	}

	now := s.retention.In(s.now())
	work := &entity.Work{
		Email:  req.Email,
		Area:   req.Area,
		Status: status,
		Date:   orDefault(req.Date, now.Format(entity.DateLayout)),
		Time:   orDefault(req.Time, now.Format(entity.ClockLayout)),
	}
	if err := s.workRepo.Create(ctx, work); err != nil {
		if errors.Is(err, dao.ErrDuplicateKey) {
			return nil, service.ErrWorkAreaTaken
		}
		return nil, internal(err)
	}
	return work, nil
}

func (s *workService) List(ctx context.Context) ([]*entity.Work, error) {
	works, err := s.workRepo.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return works, nil
}

func (s *workService) PurgeDay(ctx context.Context, day string) (int64, error) {
	if _, err := time.Parse(entity.DateLayout, day); err != nil {
		return 0, service.ErrInvalidDate
	}

	n, err := s.workRepo.DeleteByDate(ctx, day)
	if err != nil {
		return 0, internal(err)
	}

	s.metrics.RecordWorkPurged(ctx, n)
	s.logger.Info("Work entries purged", zap.String("date", day), zap.Int64("deleted", n))
	return n, nil
}
