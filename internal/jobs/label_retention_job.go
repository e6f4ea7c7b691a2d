package jobs

import (
	"context"
	"log/slog"
	"time"

	"carrierlabel/internal/core/application/usecases/commands"
	"carrierlabel/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultRetentionSchedule runs the purge every night at 03:00.
const DefaultRetentionSchedule = "0 0 3 * * *"

type PurgePrintJobsHandler interface {
	Handle(ctx context.Context, cmd commands.PurgePrintJobsCommand) (int64, error)
}

// LabelRetentionJob deletes archived print jobs older than the retention period.
type LabelRetentionJob struct {
	handler   PurgePrintJobsHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLabelRetentionJob creates the purge job. schedule is a cron expression with
// a leading seconds field.
func NewLabelRetentionJob(
	handler PurgePrintJobsHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) (*LabelRetentionJob, error) {
	if handler == nil {
		return nil, errs.NewValueIsRequiredError("handler")
	}
	if retention <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LabelRetentionJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "label_retention_job"),
	}, nil
}

// Start schedules the purge. An invalid schedule is reported here.
func (j *LabelRetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Label retention job started",
		"schedule", j.schedule,
		"retention", j.retention)
	return nil
}

// Run purges once, outside the schedule.
func (j *LabelRetentionJob) Run(ctx context.Context) error {
	cmd, err := commands.NewPurgePrintJobsCommandForRetention(time.Now(), j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Label retention job failed", "error", err)
		return err
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Label retention job failed", "error", err)
		return err
	}

	j.logger.InfoContext(ctx, "Expired print jobs purged",
		"deleted", deleted,
		"cutoff", cmd.Cutoff())
	return nil
}

// Stop stops the schedule and waits for a running purge to finish.
func (j *LabelRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Label retention job stopped")
}
