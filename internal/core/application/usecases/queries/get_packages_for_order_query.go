package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetPackagesForOrderQueryIsNotConstructed = errors.New(
	"GetPackagesForOrderQuery must be created via NewGetPackagesForOrderQuery constructor",
)

// GetPackagesForOrderQuery retrieves every package recorded for one order.
type GetPackagesForOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackagesForOrderQuery creates a query for the given order.
func NewGetPackagesForOrderQuery(orderID kernel.UUID) (GetPackagesForOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPackagesForOrderQuery{}, err
	}
	return GetPackagesForOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the owning order's identifier.
func (q GetPackagesForOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetPackagesForOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesForOrderQueryIsNotConstructed)
}

// PackageView is one package row of the response. Dimensions are centimeters,
// weight is kilograms.
type PackageView struct {
	ID      kernel.UUID
	OrderID kernel.UUID
	Length  float64
	Width   float64
	Height  float64
	Weight  float64
}
