package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// jobTimeout bounds one job execution.
const jobTimeout = 10 * time.Minute

// Job represents a scheduled task
type Job func(ctx context.Context) error

// Scheduler manages periodic tasks. A tick that fires while the same job is
// still running is skipped and logged, never queued, so at most one batch is
// in flight at a time.
type Scheduler struct {
	cron *cron.Cron
	jobs map[string]cron.EntryID
	log  *logrus.Entry
}

// New creates a new scheduler
func New(log *logrus.Logger) *Scheduler {
	entry := log.WithField("component", "scheduler")
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.PrintfLogger(entry)),
	))

	return &Scheduler{
		cron: c,
		jobs: make(map[string]cron.EntryID),
		log:  entry,
	}
}

// AddIntervalJob adds a job that runs every intervalSeconds seconds.
func (s *Scheduler) AddIntervalJob(name string, intervalSeconds int, job Job) error {
	if intervalSeconds <= 0 {
		return fmt.Errorf("invalid interval for job %s: %d seconds", name, intervalSeconds)
	}

	schedule := fmt.Sprintf("@every %ds", intervalSeconds)
	entryID, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		s.log.Infof("starting job: %s", name)
		start := time.Now()

		if err := job(ctx); err != nil {
			s.log.Errorf("job %s failed: %v", name, err)
		} else {
			s.log.Infof("job %s completed in %v", name, time.Since(start))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.jobs[name] = entryID
	s.log.Infof("added job: %s (every %ds)", name, intervalSeconds)

	return nil
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.log.Info("starting scheduler")
	s.cron.Start()
}

// Stop halts the scheduler. The returned context is done once any in-flight
// job has drained.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("stopping scheduler")
	return s.cron.Stop()
}

// RunNow immediately executes a job outside the schedule (used by -once)
func (s *Scheduler) RunNow(name string, job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.log.Infof("running job now: %s", name)
	return job(ctx)
}

// NextRun returns the next scheduled time for a job, if it exists.
func (s *Scheduler) NextRun(name string) (time.Time, bool) {
	entryID, ok := s.jobs[name]
	if !ok {
		return time.Time{}, false
	}
	entry := s.cron.Entry(entryID)
	return entry.Next, entry.Valid()
}
