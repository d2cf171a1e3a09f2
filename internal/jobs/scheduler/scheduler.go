package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/jobs/lock"
	"github.com/jrjohn/smart-waste-go/internal/observability"
)

const (
	// Common cron expressions
	EveryFiveMinutes = "*/5 * * * *"
	DailyMidnight    = "0 0 * * *"

	defaultLockTTL = 5 * time.Minute
	windowLayout   = "2006-01-02T15:04"
)

// Run outcomes reported to logs and metrics
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// ErrUnknownJob is returned by RunNow for an unregistered name
var ErrUnknownJob = errors.New("scheduled job not registered")

// Job is a recurring task
type Job struct {
	Name     string
	Schedule string // 5-field cron expression
	// Local jobs run on every instance and take no lock
	Local bool
	Run   func(ctx context.Context, now time.Time) error
}

// JobInfo describes a registered job
type JobInfo struct {
	Name     string    `json:"name"`
	Schedule string    `json:"schedule"`
	Local    bool      `json:"local"`
	NextRun  time.Time `json:"next_run"`
}

// Scheduler runs registered jobs on their cron schedules. Each scheduled run
// takes a lock keyed by job name and minute window, so among instances
// sharing a Locker only one executes a given window.
type Scheduler struct {
	cron     *cron.Cron
	parser   cron.Parser
	locker   lock.Locker
	lockTTL  time.Duration
	location *time.Location
	metrics  *observability.MetricsProvider
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.RWMutex
	jobs    map[string]Job
	entries map[string]cron.EntryID
	running bool
}

// NewScheduler creates a scheduler in the configured timezone
func NewScheduler(cfg *config.SchedulerConfig, locker lock.Locker, metrics *observability.MetricsProvider, logger *zap.Logger) (*Scheduler, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone: %w", err)
	}

	lockTTL := cfg.LockTTL
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location), cron.WithParser(parser)),
		parser:   parser,
		locker:   locker,
		lockTTL:  lockTTL,
		location: location,
		metrics:  metrics,
		logger:   logger.Named("scheduler"),
		now:      time.Now,
		jobs:     make(map[string]Job),
		entries:  make(map[string]cron.EntryID),
	}, nil
}

// Register adds a job. Names are unique.
func (s *Scheduler) Register(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.Name]; exists {
		return fmt.Errorf("job %s already registered", job.Name)
	}
	if job.Run == nil {
		return fmt.Errorf("job %s has no run function", job.Name)
	}
	if _, err := s.parser.Parse(job.Schedule); err != nil {
		return fmt.Errorf("invalid cron expression for %s: %w", job.Name, err)
	}

	j := job
	id, err := s.cron.AddFunc(j.Schedule, func() {
		_ = s.runScheduled(j)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", job.Name, err)
	}

	s.jobs[job.Name] = job
	s.entries[job.Name] = id
	s.logger.Info("Registered scheduled job",
		zap.String("name", job.Name),
		zap.String("schedule", job.Schedule),
		zap.Bool("local", job.Local),
	)
	return nil
}

// Start starts firing registered jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("timezone", s.location.String()))
}

// Stop stops firing jobs and waits for running ones until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes a job immediately. Lock-taking jobs still skip when
// another manual run of the same job is in flight.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.RLock()
	job, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	return s.execute(ctx, job, "manual", true)
}

// Jobs lists the registered jobs with their next fire time
func (s *Scheduler) Jobs() []JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]JobInfo, 0, len(s.jobs))
	for name, job := range s.jobs {
		info := JobInfo{Name: name, Schedule: job.Schedule, Local: job.Local}
		if sched, err := s.parser.Parse(job.Schedule); err == nil {
			info.NextRun = sched.Next(s.now().In(s.location))
		}
		infos = append(infos, info)
	}
	return infos
}

func (s *Scheduler) runScheduled(job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.lockTTL)
	defer cancel()

	window := s.now().In(s.location).Format(windowLayout)
	return s.execute(ctx, job, window, false)
}

// execute runs job under the lock for window. Scheduled windows keep their
// lock until it expires after a success so late instances skip the window;
// manual runs and failures release it.
func (s *Scheduler) execute(ctx context.Context, job Job, window string, release bool) error {
	now := s.now().In(s.location)
	log := s.logger.With(zap.String("name", job.Name), zap.String("window", window))

	var held *lock.Lock
	if !job.Local {
		l, err := s.locker.Acquire(ctx, job.Name+":"+window, s.lockTTL)
		if errors.Is(err, lock.ErrLockNotAcquired) {
			log.Debug("Scheduled job already running or done in this window")
			s.metrics.RecordJobRun(ctx, job.Name, OutcomeSkipped)
			return err
		}
		if err != nil {
			log.Error("Failed to acquire job lock", zap.Error(err))
			s.metrics.RecordJobRun(ctx, job.Name, OutcomeFailure)
			return err
		}
		held = l
	}

	start := time.Now()
	err := job.Run(ctx, now)
	duration := time.Since(start)

	if held != nil && (release || err != nil) {
		if rerr := held.Release(context.Background()); rerr != nil {
			log.Warn("Failed to release job lock", zap.Error(rerr))
		}
	}

	if err != nil {
		log.Error("Scheduled job failed", zap.Duration("duration", duration), zap.Error(err))
		s.metrics.RecordJobRun(ctx, job.Name, OutcomeFailure)
		return err
	}

	log.Info("Scheduled job completed", zap.Duration("duration", duration))
	s.metrics.RecordJobRun(ctx, job.Name, OutcomeSuccess)
	return nil
}
