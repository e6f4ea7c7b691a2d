package commands

import (
	"context"
)

// PurgePrintJobsCommandHandler deletes expired print jobs in a single transaction.
type PurgePrintJobsCommandHandler struct {
	uowFactory PrintJobUoWFactory
}

func NewPurgePrintJobsCommandHandler(uowFactory PrintJobUoWFactory) PurgePrintJobsCommandHandler {
	return PurgePrintJobsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of removed jobs.
func (h *PurgePrintJobsCommandHandler) Handle(ctx context.Context, cmd PurgePrintJobsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.PrintJobRepository().DeleteCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
