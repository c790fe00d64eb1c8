package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"rechtent-backend/internal/jobs"
	"rechtent-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.ExpireStaleCarts, s.jobs.ExpireStaleCarts)
	if err != nil {
		logger.Error("Failed to register ExpireStaleCarts job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.RefreshCartAvailability, s.jobs.RefreshCartAvailability)
	if err != nil {
		logger.Error("Failed to register RefreshCartAvailability job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.RemindPendingReturns, s.jobs.RemindPendingReturns)
	if err != nil {
		logger.Error("Failed to register RemindPendingReturns job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
