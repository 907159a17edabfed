package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"
)

// SlotRepository defines the persistence contract for stage slots. Acquire
// and release must be atomic compare-and-set operations on the persisted
// occupant, so two concurrent admissions into the same stage cannot both
// succeed.
type SlotRepository interface {
	// Get retrieves the slot of a stage.
	Get(ctx context.Context, st stage.Stage) (*stage.Slot, error)

	// TryAcquire atomically claims the stage's slot for an order. It fails
	// with stage.ErrSlotOccupied when any order holds the slot, without
	// modifying anything. There is no waiting: callers surface the conflict.
	TryAcquire(ctx context.Context, st stage.Stage, orderID kernel.UUID) error

	// Release atomically frees the slot on behalf of its occupant. It fails
	// with stage.ErrNotSlotOwner when the given order does not hold the
	// slot, guarding against stale or duplicate completion calls.
	Release(ctx context.Context, st stage.Stage, orderID kernel.UUID) error

	// ForceRelease unconditionally frees the slot. Administrative override.
	ForceRelease(ctx context.Context, st stage.Stage) error
}
