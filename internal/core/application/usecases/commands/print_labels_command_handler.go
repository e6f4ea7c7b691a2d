package commands

import (
	"context"
	"time"

	"carrierlabel/internal/core/domain/model/printjob"
	"carrierlabel/internal/pkg/errs"
)

// PrintLabelsCommandHandler renders the labels of a command and archives the document
// as a print job.
//
// Example:
//
//	handler, _ := NewPrintLabelsCommandHandler(uowFactory, engine)
//	job, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("label printing failed: %w", err)
//	}
//	w.Write(job.Document())
type PrintLabelsCommandHandler struct {
	uowFactory PrintJobUoWFactory
	generator  LabelGenerator
}

// NewPrintLabelsCommandHandler creates a handler for label printing.
func NewPrintLabelsCommandHandler(
	uowFactory PrintJobUoWFactory,
	generator LabelGenerator,
) (PrintLabelsCommandHandler, error) {
	if uowFactory == nil {
		return PrintLabelsCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if generator == nil {
		return PrintLabelsCommandHandler{}, errs.NewValueIsRequiredError("generator")
	}

	return PrintLabelsCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}, nil
}

// Handle renders the labels first and opens the transaction only when rendering
// succeeded, so a failed render never touches the database.
func (h *PrintLabelsCommandHandler) Handle(ctx context.Context, cmd PrintLabelsCommand) (*printjob.PrintJob, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	document, err := h.generator.GenerateLabels(ctx, cmd.Packages(), cmd.Decomposition())
	if err != nil {
		return nil, err
	}

	job, err := printjob.NewPrintJob(printjob.Params{
		ID:             cmd.JobID(),
		Decomposition:  int(cmd.Decomposition()),
		PackageNumbers: cmd.PackageNumbers(),
		PageCount:      cmd.Decomposition().PageCount(len(cmd.Packages())),
		Document:       document,
		ContentType:    h.generator.ContentType(),
	}, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PrintJobRepository().Add(ctx, job); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return job, nil
}
