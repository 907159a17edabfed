package queries

import (
	"errors"

	"production/internal/pkg/guard"
)

var ErrGetPendingBillingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingBillingOrdersQuery must be created via NewGetPendingBillingOrdersQuery constructor",
)

// GetPendingBillingOrdersQuery retrieves every completed order still awaiting
// a billing confirmation, across all stages. Forwarded orders are excluded:
// their billing belongs to the downstream stage.
type GetPendingBillingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingBillingOrdersQuery creates the parameterless query.
func NewGetPendingBillingOrdersQuery() GetPendingBillingOrdersQuery {
	return GetPendingBillingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingBillingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBillingOrdersQueryIsNotConstructed)
}
