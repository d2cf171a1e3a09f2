package impl

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/testutil/mocks"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

func setupWorkService(t *testing.T, now time.Time) (*workService, *mocks.MockWorkRepository) {
	t.Helper()
	repo := mocks.NewMockWorkRepository()
	svc := NewWorkService(repo, entity.WorkRetention{}, nil, zap.NewNop()).(*workService)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestWorkService_OneEntryPerAreaUntilPurge(t *testing.T) {
	day1 := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)
	svc, _ := setupWorkService(t, day1)
	ctx := context.Background()
	req := &request.CreateWorkRequest{Email: "d@fleet.example.com", Area: "Kothrud", Status: "Completed"}

	work, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if work.Date != "2024-05-01" || work.Time != "18:30" {
		t.Errorf("Date/Time = %s %s", work.Date, work.Time)
	}

	if _, err := svc.Create(ctx, req); apperrors.GetMessage(err) != "Work with this area already exists" {
		t.Fatalf("second Create() error = %v", err)
	}

	// The next day's run purges entries dated the previous day
	purgeDate := entity.WorkRetention{Location: time.UTC}.PurgeDate(day1.AddDate(0, 0, 1))
	n, err := svc.PurgeDay(ctx, purgeDate)
	if err != nil || n != 1 {
		t.Fatalf("PurgeDay(%s) = %d, %v, want 1", purgeDate, n, err)
	}

	if _, err := svc.Create(ctx, req); err != nil {
		t.Errorf("Create() after purge error = %v", err)
	}
}

func TestWorkService_PurgeDayKeepsOtherDates(t *testing.T) {
	svc, _ := setupWorkService(t, time.Now())
	ctx := context.Background()
	_, _ = svc.Create(ctx, &request.CreateWorkRequest{Email: "a@x.com", Area: "A", Status: "In Progress", Date: "2024-05-01"})
	_, _ = svc.Create(ctx, &request.CreateWorkRequest{Email: "b@x.com", Area: "B", Status: "Incomplete", Date: "2024-05-02"})

	n, err := svc.PurgeDay(ctx, "2024-05-01")
	if err != nil || n != 1 {
		t.Fatalf("PurgeDay() = %d, %v", n, err)
	}
	left, _ := svc.List(ctx)
	if len(left) != 1 || left[0].Area != "B" {
		t.Errorf("List() after purge = %+v", left)
	}

	if _, err := svc.PurgeDay(ctx, "yesterday"); !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("PurgeDay(invalid) error = %v", err)
	}
}

func TestWorkService_Create_Validation(t *testing.T) {
	svc, repo := setupWorkService(t, time.Now())
	ctx := context.Background()

	tests := []struct {
		name string
		req  *request.CreateWorkRequest
	}{
		{"missing area", &request.CreateWorkRequest{Email: "a@x.com", Status: "Completed"}},
		{"unknown status", &request.CreateWorkRequest{Email: "a@x.com", Area: "A", Status: "Done"}},
		{"bad time", &request.CreateWorkRequest{Email: "a@x.com", Area: "A", Status: "Completed", Time: "6pm"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !apperrors.Is(err, apperrors.ErrValidation) {
				t.Errorf("Create() error = %v, want ValidationError", err)
			}
		})
	}

	repo.CreateErr = dao.ErrDuplicateKey
	_, err := svc.Create(ctx, &request.CreateWorkRequest{Email: "a@x.com", Area: "Race", Status: "Completed"})
	if apperrors.GetMessage(err) != "Work with this area already exists" {
		t.Errorf("racing Create() error = %v", err)
	}
}

func TestWorkService_DefaultDateOnRetentionClock(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	retention := entity.WorkRetention{Location: kolkata}
	repo := mocks.NewMockWorkRepository()
	svc := NewWorkService(repo, retention, nil, zap.NewNop()).(*workService)
	// 01:30 on May 2 in Kolkata, still May 1 in UTC
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	work, err := svc.Create(ctx, &request.CreateWorkRequest{Email: "d@fleet.example.com", Area: "Baner", Status: "Completed"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if work.Date != "2024-05-02" || work.Time != "01:30" {
		t.Errorf("Date/Time = %s %s, want 2024-05-02 01:30", work.Date, work.Time)
	}

	// The purge at the following local midnight removes it
	purgeDate := retention.PurgeDate(time.Date(2024, 5, 3, 0, 0, 0, 0, kolkata))
	if n, err := svc.PurgeDay(ctx, purgeDate); err != nil || n != 1 {
		t.Errorf("PurgeDay(%s) = %d, %v, want 1", purgeDate, n, err)
	}
}
