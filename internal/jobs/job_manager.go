package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"transfers/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	draftReaperJob *DraftReaperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reapStaleDraftsHandler commands.ReapStaleDraftsCommandHandler,
	reaperSchedule string,
	reaperMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		draftReaperJob: NewDraftReaperJob(reapStaleDraftsHandler, reaperSchedule, reaperMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.draftReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start draft reaper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.draftReaperJob.Stop()
}
