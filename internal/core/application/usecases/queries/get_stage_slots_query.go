package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"
	"production/internal/pkg/guard"
)

var ErrGetStageSlotsQueryIsNotConstructed = errors.New(
	"GetStageSlotsQuery must be created via NewGetStageSlotsQuery constructor",
)

// GetStageSlotsQuery retrieves the occupancy of every stage slot, with the
// identity of the occupying order when one is active.
type GetStageSlotsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStageSlotsQuery creates the parameterless query.
func NewGetStageSlotsQuery() GetStageSlotsQuery {
	return GetStageSlotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStageSlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetStageSlotsQueryIsNotConstructed)
}

// StageSlotView is one row of the slot occupancy response. OccupantID,
// OrderNumber and JobName are nil for a free slot.
type StageSlotView struct {
	Stage       stage.Stage
	OccupantID  *kernel.UUID
	OrderNumber *string
	JobName     *string
}
