// Package queries contains read-only operations served straight from the database
// or from pure domain functions, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/pkg/guard"
)

var (
	ErrGetPrintJobQueryIsNotConstructed = errors.New(
		"GetPrintJobQuery must be created via NewGetPrintJobQuery constructor",
	)
)

// GetPrintJobQuery loads an archived label document.
//
// Example:
//
//	query, err := NewGetPrintJobQuery(jobID)
//	if err != nil {
//	    return err
//	}
//
//	job, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load print job: %w", err)
//	}
//	w.Header().Set("Content-Type", job.ContentType)
//	w.Write(job.Document)
type GetPrintJobQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPrintJobQuery(jobID kernel.UUID) (GetPrintJobQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetPrintJobQuery{}, err
	}

	return GetPrintJobQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPrintJobQuery) Validate() error {
	return q.guard.Validate(ErrGetPrintJobQueryIsNotConstructed)
}

func (q GetPrintJobQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetPrintJobQueryResponse is an archived document with its metadata.
type GetPrintJobQueryResponse struct {
	ID             kernel.UUID
	Decomposition  int
	PackageNumbers []string
	PageCount      int
	ContentType    string
	Document       []byte
	CreatedAt      time.Time
}
