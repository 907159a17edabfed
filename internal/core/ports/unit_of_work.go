package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, isolating
// concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the business transaction boundary. Every lifecycle command
// mutates the order store and the stage slot inside one unit of work, which
// is what makes each transition atomic: either every effect applies, or none
// does.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// SlotRepository returns a SlotRepository bound to the current transaction.
	SlotRepository() SlotRepository

	// PackageRepository returns a PackageRepository bound to the current transaction.
	PackageRepository() PackageRepository
}
