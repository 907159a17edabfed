package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository is the writer-of-record for orders: consumers receive
// rehydrated aggregates, never shared references.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The update is
	// conditional on the persisted status matching the status the aggregate
	// was loaded with, so two lifecycle commands for the same order cannot
	// both win.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
