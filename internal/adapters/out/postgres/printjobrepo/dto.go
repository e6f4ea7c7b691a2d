// Package printjobrepo maps the PrintJob aggregate to the print_jobs table.
package printjobrepo

import (
	"time"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/printjob"

	"github.com/google/uuid"
)

// PrintJobDTO is the row of the print_jobs table. Package numbers are stored as a JSON array.
type PrintJobDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Decomposition  int       `gorm:"type:smallint;not null"`
	PackageNumbers []string  `gorm:"type:jsonb;serializer:json;not null"`
	PageCount      int       `gorm:"not null"`
	Document       []byte    `gorm:"type:bytea;not null"`
	ContentType    string    `gorm:"type:varchar(100);not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (PrintJobDTO) TableName() string {
	return "print_jobs"
}

func fromDomain(job *printjob.PrintJob) PrintJobDTO {
	numbers := job.PackageNumbers()
	if numbers == nil {
		// a nil slice would be serialized as JSON null
		numbers = []string{}
	}

	return PrintJobDTO{
		ID:             job.ID().Bytes(),
		Decomposition:  job.Decomposition(),
		PackageNumbers: numbers,
		PageCount:      job.PageCount(),
		Document:       job.Document(),
		ContentType:    job.ContentType(),
		CreatedAt:      job.CreatedAt(),
	}
}

func toDomain(dto PrintJobDTO) (*printjob.PrintJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return printjob.RestorePrintJob(printjob.Params{
		ID:             id,
		Decomposition:  dto.Decomposition,
		PackageNumbers: dto.PackageNumbers,
		PageCount:      dto.PageCount,
		Document:       dto.Document,
		ContentType:    dto.ContentType,
		CreatedAt:      dto.CreatedAt.UTC(),
	})
}
