package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/service/backfill"
)

// BackfillJobs periodically fills in FULL_DAY placeholder entries for
// working days nobody recorded, up to the day the job runs.
type BackfillJobs struct {
	backfillSvc *backfill.Service
	loader      roster.Loader
	interval    time.Duration
}

func NewBackfillJobs(backfillSvc *backfill.Service, loader roster.Loader, interval time.Duration) *BackfillJobs {
	return &BackfillJobs{
		backfillSvc: backfillSvc,
		loader:      loader,
		interval:    interval,
	}
}

func (j *BackfillJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("backfill_attendance_entries", j.interval, j.BackfillEntries)
}

func (j *BackfillJobs) BackfillEntries(ctx context.Context) error {
	slog.Info("Cron: Starting attendance backfill job")

	result, err := j.backfillSvc.RunWithLoader(ctx, j.loader, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return err
	}

	slog.Info("Cron: Attendance backfill completed",
		"created", result.Created,
		"failures", len(result.Failures),
	)
	return nil
}
