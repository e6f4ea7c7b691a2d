package printjob

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/pkg/errs"
)

var (
	// ErrPrintJobIsNotConstructed is returned when a PrintJob instance was not created through
	// NewPrintJob or RestorePrintJob.
	ErrPrintJobIsNotConstructed = errors.New("PrintJob must be created via NewPrintJob constructor")
)

// PrintJob is one rendered label document together with the package numbers it covers.
type PrintJob struct {
	id             kernel.UUID
	decomposition  int
	packageNumbers []string
	pageCount      int
	document       []byte
	contentType    string
	createdAt      time.Time

	isConstructed bool
}

// Params carries the values of a PrintJob.
type Params struct {
	ID             kernel.UUID
	Decomposition  int
	PackageNumbers []string
	PageCount      int
	Document       []byte
	ContentType    string
	CreatedAt      time.Time
}

// NewPrintJob creates a job for a freshly rendered document. The creation time is
// taken from now and truncated to microseconds so that it survives a database round trip.
func NewPrintJob(params Params, now time.Time) (*PrintJob, error) {
	params.CreatedAt = now.UTC().Truncate(time.Microsecond)
	return build(params)
}

// RestorePrintJob rebuilds a job read from persistence.
func RestorePrintJob(params Params) (*PrintJob, error) {
	if params.CreatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	return build(params)
}

func build(params Params) (*PrintJob, error) {
	job := &PrintJob{
		createdAt:     params.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		job.setID(params.ID),
		job.setDecomposition(params.Decomposition),
		job.setPackageNumbers(params.PackageNumbers),
		job.setPageCount(params.PageCount),
		job.setDocument(params.Document, params.ContentType),
	); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate ensures the PrintJob instance was properly constructed.
func (j *PrintJob) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrPrintJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their identifiers.
func (j *PrintJob) IsEqual(other *PrintJob) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *PrintJob) ID() kernel.UUID          { return j.id }
func (j *PrintJob) Decomposition() int       { return j.decomposition }
func (j *PrintJob) PackageNumbers() []string { return slices.Clone(j.packageNumbers) }
func (j *PrintJob) PageCount() int           { return j.pageCount }
func (j *PrintJob) Document() []byte         { return slices.Clone(j.document) }
func (j *PrintJob) ContentType() string      { return j.contentType }
func (j *PrintJob) CreatedAt() time.Time     { return j.createdAt }

// Size is the length of the rendered document in bytes.
func (j *PrintJob) Size() int {
	return len(j.document)
}

// ExpiredAt reports whether the job was created before cutoff.
func (j *PrintJob) ExpiredAt(cutoff time.Time) bool {
	return j.createdAt.Before(cutoff)
}

func (j *PrintJob) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *PrintJob) setDecomposition(decomposition int) error {
	if decomposition <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("decomposition", fmt.Errorf("%d is not greater than 0", decomposition))
	}
	j.decomposition = decomposition
	return nil
}

func (j *PrintJob) setPackageNumbers(numbers []string) error {
	var errList []error
	for i, number := range numbers {
		if err := parcel.ValidatePackageNumber(number); err != nil {
			errList = append(errList, fmt.Errorf("package number #%d: %w", i+1, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	j.packageNumbers = slices.Clone(numbers)
	return nil
}

func (j *PrintJob) setPageCount(pageCount int) error {
	if pageCount < 0 {
		return errs.NewValueIsOutOfRangeError("pageCount", pageCount, 0, "unbounded")
	}
	j.pageCount = pageCount
	return nil
}

func (j *PrintJob) setDocument(document []byte, contentType string) error {
	if len(document) == 0 {
		return errs.NewValueIsRequiredError("document")
	}
	if contentType == "" {
		return errs.NewValueIsRequiredError("contentType")
	}
	j.document = slices.Clone(document)
	j.contentType = contentType
	return nil
}
