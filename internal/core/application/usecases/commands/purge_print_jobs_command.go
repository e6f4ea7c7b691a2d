package commands

import (
	"errors"
	"time"

	"carrierlabel/internal/pkg/errs"
	"carrierlabel/internal/pkg/guard"
)

var (
	ErrPurgePrintJobsCommandIsNotConstructed = errors.New(
		"PurgePrintJobsCommand must be created via NewPurgePrintJobsCommand constructor",
	)
)

// PurgePrintJobsCommand removes archived print jobs created before a cut-off time.
// It is issued periodically by the retention job.
type PurgePrintJobsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewPurgePrintJobsCommand(cutoff time.Time) (PurgePrintJobsCommand, error) {
	command := PurgePrintJobsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return PurgePrintJobsCommand{}, err
	}

	return command, nil
}

// NewPurgePrintJobsCommandForRetention keeps the jobs of the last retention period.
func NewPurgePrintJobsCommandForRetention(now time.Time, retention time.Duration) (PurgePrintJobsCommand, error) {
	if retention <= 0 {
		return PurgePrintJobsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}
	return NewPurgePrintJobsCommand(now.Add(-retention))
}

// Validate ensures the command was created through the constructor.
func (c PurgePrintJobsCommand) Validate() error {
	return c.guard.Validate(ErrPurgePrintJobsCommandIsNotConstructed)
}

// Cutoff is the creation time before which jobs are removed.
func (c PurgePrintJobsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgePrintJobsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff.UTC()
	return nil
}
