package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/produce"
)

// PackageRepository defines the persistence contract for packages.
type PackageRepository interface {
	// Add persists a new package.
	Add(ctx context.Context, aggregate *produce.Package) error

	// Update persists dimension edits to an existing package.
	Update(ctx context.Context, aggregate *produce.Package) error

	// Get retrieves a package by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*produce.Package, error)

	// GetAllForOrder retrieves every package owned by an order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*produce.Package, error)
}
