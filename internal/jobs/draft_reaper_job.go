package jobs

import (
	"context"
	"log/slog"
	"time"

	"transfers/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DraftReaperJob periodically deletes Draft orders that were created but
// never touched again. The deletion rule is the same one the DeleteOrder
// command enforces, so orders with any send history survive.
type DraftReaperJob struct {
	handler  commands.ReapStaleDraftsCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDraftReaperJob creates a reaper running on the given cron schedule,
// deleting drafts older than maxAge.
func NewDraftReaperJob(
	handler commands.ReapStaleDraftsCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *DraftReaperJob {
	return &DraftReaperJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(),
		logger:   logger.With("component", "draft_reaper_job"),
	}
}

// Start schedules the reaper.
func (j *DraftReaperJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewReapStaleDraftsCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft reaper misconfigured", "error", err)
			return
		}

		reaped, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft reaper run failed", "error", err)
			return
		}

		if reaped > 0 {
			j.logger.InfoContext(ctx, "Reaped stale draft orders", "count", reaped)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft reaper job started", "schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the reaper.
func (j *DraftReaperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft reaper job stopped")
}
