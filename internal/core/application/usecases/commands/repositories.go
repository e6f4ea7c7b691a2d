// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PrintJobRepoFactory provides access to the print job repository within a transaction.
	PrintJobRepoFactory interface {
		PrintJobRepository() ports.PrintJobRepository
	}

	// PrintJobUoW manages transactions for print job operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.PrintJobRepository().Add(ctx, job)
	//   err = uow.Commit(ctx)
	PrintJobUoW interface {
		TxManager
		PrintJobRepoFactory
	}

	// PrintJobUoWFactory creates new print job unit of work instances.
	PrintJobUoWFactory interface {
		Create() PrintJobUoW
	}
)

// LabelGenerator renders label documents. It is satisfied by *label.Engine.
type LabelGenerator interface {
	GenerateLabels(ctx context.Context, packages []*parcel.Package, d label.Decomposition) ([]byte, error)
	ContentType() string
}
