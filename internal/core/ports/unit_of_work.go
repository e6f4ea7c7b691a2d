package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
// Callers own the lifecycle: Begin, then Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// PrintJobRepository is bound to the transaction started by Begin.
	PrintJobRepository() PrintJobRepository
}
