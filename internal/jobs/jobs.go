// Package jobs defines the recurring maintenance jobs run by the scheduler.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/jobs/scheduler"
	"github.com/jrjohn/smart-waste-go/internal/middleware"
)

const (
	WorkPurgeJobName     = "work-purge"
	ThrottlePruneJobName = "login-throttle-prune"
)

// NewWorkPurgeJob deletes the work entries dated the day before each run,
// reopening those areas for new reports.
func NewWorkPurgeJob(schedule string, works service.WorkService, retention entity.WorkRetention) scheduler.Job {
	if schedule == "" {
		schedule = scheduler.DailyMidnight
	}
	return scheduler.Job{
		Name:     WorkPurgeJobName,
		Schedule: schedule,
		Run: func(ctx context.Context, now time.Time) error {
			day := retention.PurgeDate(now)
			if _, err := works.PurgeDay(ctx, day); err != nil {
				return fmt.Errorf("purge work dated %s: %w", day, err)
			}
			return nil
		},
	}
}

// NewThrottlePruneJob drops idle login throttle buckets on this instance
func NewThrottlePruneJob(throttle *middleware.LoginThrottle) scheduler.Job {
	return scheduler.Job{
		Name:     ThrottlePruneJobName,
		Schedule: scheduler.EveryFiveMinutes,
		Local:    true,
		Run: func(context.Context, time.Time) error {
			throttle.Prune()
			return nil
		},
	}
}
