package queries

import (
	"context"
	"database/sql"
	"errors"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetPrintJobQueryHandler reads print jobs with raw SQL.
type GetPrintJobQueryHandler struct {
	db *gorm.DB
}

func NewGetPrintJobQueryHandler(db *gorm.DB) GetPrintJobQueryHandler {
	return GetPrintJobQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown job.
func (h GetPrintJobQueryHandler) Handle(ctx context.Context, query GetPrintJobQuery) (GetPrintJobQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPrintJobQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			decomposition,
			ARRAY(SELECT jsonb_array_elements_text(package_numbers)) AS package_numbers,
			page_count,
			content_type,
			document,
			created_at
		FROM print_jobs
		WHERE id = ?
	`, query.JobID().Bytes()).Row()
	if err := row.Err(); err != nil {
		return GetPrintJobQueryResponse{}, err
	}

	var (
		resp    GetPrintJobQueryResponse
		id      uuid.UUID
		numbers pq.StringArray
	)
	err := row.Scan(
		&id,
		&resp.Decomposition,
		&numbers,
		&resp.PageCount,
		&resp.ContentType,
		&resp.Document,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPrintJobQueryResponse{}, errs.NewObjectNotFoundError("printJob", query.JobID().String())
		}
		return GetPrintJobQueryResponse{}, err
	}

	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPrintJobQueryResponse{}, err
	}
	resp.ID = jobID
	resp.PackageNumbers = []string(numbers)
	resp.CreatedAt = resp.CreatedAt.UTC()

	return resp, nil
}
