package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/jobs/lock"
	"github.com/jrjohn/smart-waste-go/internal/testutil"
)

func setupTestScheduler(t *testing.T, locker lock.Locker, at time.Time) *Scheduler {
	t.Helper()
	sched, err := NewScheduler(&config.SchedulerConfig{Timezone: "Asia/Kolkata", LockTTL: time.Minute}, locker, nil, testutil.NewTestLogger(t))
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	sched.now = func() time.Time { return at }
	return sched
}

func countingJob(name string, runs *atomic.Int32, err error) Job {
	return Job{
		Name:     name,
		Schedule: DailyMidnight,
		Run: func(context.Context, time.Time) error {
			runs.Add(1)
			return err
		},
	}
}

func TestNewScheduler_InvalidTimezone(t *testing.T) {
	_, err := NewScheduler(&config.SchedulerConfig{Timezone: "Mars/Olympus"}, lock.NewLocalLocker(), nil, zap.NewNop())
	if err == nil {
		t.Error("NewScheduler() with unknown timezone should fail")
	}
}

func TestScheduler_Register(t *testing.T) {
	sched := setupTestScheduler(t, lock.NewLocalLocker(), time.Now())
	var runs atomic.Int32

	if err := sched.Register(countingJob("work-purge", &runs, nil)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := sched.Register(countingJob("work-purge", &runs, nil)); err == nil {
		t.Error("Register() accepted a duplicate name")
	}

	bad := countingJob("bad", &runs, nil)
	bad.Schedule = "0 0 0 * * *"
	if err := sched.Register(bad); err == nil {
		t.Error("Register() accepted a 6-field expression")
	}
	if err := sched.Register(Job{Name: "empty", Schedule: DailyMidnight}); err == nil {
		t.Error("Register() accepted a job without a run function")
	}

	infos := sched.Jobs()
	if len(infos) != 1 || infos[0].Name != "work-purge" || infos[0].NextRun.IsZero() {
		t.Errorf("Jobs() = %+v", infos)
	}
}

func TestScheduler_Jobs_NextRunInTimezone(t *testing.T) {
	at := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC) // 01:30 on May 2 in Kolkata
	sched := setupTestScheduler(t, lock.NewLocalLocker(), at)
	var runs atomic.Int32
	_ = sched.Register(countingJob("work-purge", &runs, nil))

	next := sched.Jobs()[0].NextRun
	want := time.Date(2024, 5, 3, 0, 0, 0, 0, sched.location)
	if !next.Equal(want) {
		t.Errorf("NextRun = %v, want %v", next, want)
	}
}

func TestScheduler_OneRunPerWindow(t *testing.T) {
	locker := lock.NewLocalLocker()
	at := time.Date(2024, 5, 2, 0, 0, 5, 0, time.UTC)
	var runs atomic.Int32

	// Two instances sharing one locker fire for the same window
	first := setupTestScheduler(t, locker, at)
	second := setupTestScheduler(t, locker, at)
	job := countingJob("work-purge", &runs, nil)

	if err := first.runScheduled(job); err != nil {
		t.Fatalf("first run error = %v", err)
	}
	if err := second.runScheduled(job); !errors.Is(err, lock.ErrLockNotAcquired) {
		t.Errorf("second run error = %v, want ErrLockNotAcquired", err)
	}
	if runs.Load() != 1 {
		t.Errorf("runs = %d, want 1", runs.Load())
	}

	second.now = func() time.Time { return at.Add(24 * time.Hour) }
	if err := second.runScheduled(job); err != nil {
		t.Errorf("next window run error = %v", err)
	}
	if runs.Load() != 2 {
		t.Errorf("runs = %d, want 2", runs.Load())
	}
}

func TestScheduler_FailedRunReleasesWindow(t *testing.T) {
	locker := lock.NewLocalLocker()
	sched := setupTestScheduler(t, locker, time.Now())
	var runs atomic.Int32
	boom := errors.New("database unavailable")

	if err := sched.runScheduled(countingJob("work-purge", &runs, boom)); !errors.Is(err, boom) {
		t.Fatalf("run error = %v", err)
	}
	if err := sched.runScheduled(countingJob("work-purge", &runs, nil)); err != nil {
		t.Errorf("retry in same window error = %v", err)
	}
	if runs.Load() != 2 {
		t.Errorf("runs = %d, want 2", runs.Load())
	}
}

func TestScheduler_RunNow(t *testing.T) {
	at := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	sched := setupTestScheduler(t, lock.NewLocalLocker(), at)

	var got time.Time
	_ = sched.Register(Job{
		Name:     "work-purge",
		Schedule: DailyMidnight,
		Run: func(_ context.Context, now time.Time) error {
			got = now
			return nil
		},
	})

	for i := 0; i < 2; i++ {
		if err := sched.RunNow(context.Background(), "work-purge"); err != nil {
			t.Fatalf("RunNow() #%d error = %v", i, err)
		}
	}
	if !got.Equal(at) || got.Location() != sched.location {
		t.Errorf("run time = %v, want %v in %v", got, at, sched.location)
	}

	if err := sched.RunNow(context.Background(), "missing"); !errors.Is(err, ErrUnknownJob) {
		t.Errorf("RunNow(missing) error = %v", err)
	}
}

func TestScheduler_LocalJobsSkipLock(t *testing.T) {
	locker := lock.NewLocalLocker()
	at := time.Now()
	var runs atomic.Int32

	job := countingJob("login-throttle-prune", &runs, nil)
	job.Local = true
	for i := 0; i < 3; i++ {
		if err := setupTestScheduler(t, locker, at).runScheduled(job); err != nil {
			t.Fatalf("run error = %v", err)
		}
	}
	if runs.Load() != 3 {
		t.Errorf("runs = %d, want 3", runs.Load())
	}
}

func TestScheduler_StartStop(t *testing.T) {
	sched := setupTestScheduler(t, lock.NewLocalLocker(), time.Now())

	sched.Start()
	sched.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := sched.Stop(ctx); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := sched.Stop(ctx); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestScheduler_StartFiresJobs(t *testing.T) {
	sched := setupTestScheduler(t, lock.NewLocalLocker(), time.Now())
	var runs atomic.Int32

	job := countingJob("login-throttle-prune", &runs, nil)
	job.Schedule = "@every 1s"
	job.Local = true
	if err := sched.Register(job); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	sched.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = sched.Stop(ctx)
	}()

	testutil.WaitForCondition(t, 5*time.Second, func() bool { return runs.Load() > 0 }, "scheduled job never fired")
}
