package printjobrepo

import (
	"context"
	"errors"
	"time"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/printjob"
	"carrierlabel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPrintJobRepository implements ports.PrintJobRepository using GORM.
type GormPrintJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPrintJobRepository(db *gorm.DB, tracker aggregateTracker) *GormPrintJobRepository {
	return &GormPrintJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new print job.
func (r *GormPrintJobRepository) Add(ctx context.Context, aggregate *printjob.PrintJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a print job by ID.
func (r *GormPrintJobRepository) Get(ctx context.Context, id kernel.UUID) (*printjob.PrintJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrintJobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("printJob", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteCreatedBefore removes jobs created strictly before cutoff.
func (r *GormPrintJobRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if cutoff.IsZero() {
		return 0, errs.NewValueIsRequiredError("cutoff")
	}

	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff.UTC()).Delete(&PrintJobDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
