// Package ports declares the interfaces the label core needs from the outside world:
// rendering, persistence of print jobs and transaction control.
package ports

import (
	"context"
	"time"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/printjob"
)

// PrintJobRepository archives rendered label documents.
type PrintJobRepository interface {
	// Add stores a new print job. The job must be valid and not stored yet.
	Add(ctx context.Context, job *printjob.PrintJob) error

	// Get loads a print job including its document bytes.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*printjob.PrintJob, error)

	// DeleteCreatedBefore removes jobs created strictly before cutoff and
	// reports how many were removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
