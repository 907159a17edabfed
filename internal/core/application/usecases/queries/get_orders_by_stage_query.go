// Package queries contains the read side: board views built with raw SQL
// straight against the database, bypassing the aggregate repositories.
package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
	"production/internal/pkg/guard"
)

var ErrGetOrdersByStageQueryIsNotConstructed = errors.New(
	"GetOrdersByStageQuery must be created via NewGetOrdersByStageQuery constructor",
)

// GetOrdersByStageQuery retrieves the production board of one stage: every
// order registered there, whatever its lifecycle status.
//
// Example:
//
//	query, err := NewGetOrdersByStageQuery(stage.Flexo)
//	if err != nil {
//	    return err
//	}
//
//	rows, err := handler.Handle(ctx, query)
//	for _, r := range rows {
//	    fmt.Printf("%s %s: %s\n", r.OrderNumber, r.JobName, r.Status)
//	}
type GetOrdersByStageQuery struct {
	stage stage.Stage

	guard guard.ConstructorGuard
}

// NewGetOrdersByStageQuery creates a board query for one stage.
func NewGetOrdersByStageQuery(st stage.Stage) (GetOrdersByStageQuery, error) {
	if err := st.Validate(); err != nil {
		return GetOrdersByStageQuery{}, err
	}

	return GetOrdersByStageQuery{
		stage: st,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStageQueryIsNotConstructed)
}

// Stage returns the stage whose board is requested.
func (q GetOrdersByStageQuery) Stage() stage.Stage {
	return q.stage
}

// OrderView is one row of a board query response.
type OrderView struct {
	ID            kernel.UUID
	OrderNumber   string
	JobName       string
	Quantity      int
	BagType       string
	Stage         stage.Stage
	Status        order.Status
	BillingStatus order.BillingStatus
	Forwarded     bool
}
