package stage_test

import (
	"testing"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("should create empty slot", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Flexo)

		require.NoError(t, err)
		require.NoError(t, slot.Validate())
		assert.Equal(t, stage.Flexo, slot.Stage())
		assert.False(t, slot.IsOccupied())
		assert.Nil(t, slot.Occupant())
	})

	t.Run("should reject invalid stage", func(t *testing.T) {
		_, err := stage.NewSlot(stage.Unknown)
		require.Error(t, err)
	})
}

func TestRestoreSlot(t *testing.T) {
	t.Run("should restore occupied slot", func(t *testing.T) {
		occupant := kernel.NewUUID()

		slot, err := stage.RestoreSlot(stage.BagMaking, &occupant)

		require.NoError(t, err)
		assert.True(t, slot.IsOccupied())
		assert.True(t, slot.Occupant().IsEqual(occupant))
	})

	t.Run("should reject invalid occupant", func(t *testing.T) {
		_, err := stage.RestoreSlot(stage.BagMaking, &kernel.UUID{})
		require.Error(t, err)
	})
}

func TestSlot_TryAcquire(t *testing.T) {
	t.Run("should acquire empty slot", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Flexo)
		require.NoError(t, err)
		orderID := kernel.NewUUID()

		require.NoError(t, slot.TryAcquire(orderID))

		assert.True(t, slot.IsOccupied())
		assert.True(t, slot.Occupant().IsEqual(orderID))
	})

	t.Run("should reject second acquisition", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Flexo)
		require.NoError(t, err)
		first := kernel.NewUUID()
		require.NoError(t, slot.TryAcquire(first))

		err = slot.TryAcquire(kernel.NewUUID())

		require.ErrorIs(t, err, stage.ErrSlotOccupied)
		assert.True(t, slot.Occupant().IsEqual(first), "occupant must be unchanged")
	})

	t.Run("should reject re-acquisition by the occupant itself", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Flexo)
		require.NoError(t, err)
		orderID := kernel.NewUUID()
		require.NoError(t, slot.TryAcquire(orderID))

		require.ErrorIs(t, slot.TryAcquire(orderID), stage.ErrSlotOccupied)
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Flexo)
		require.NoError(t, err)

		require.Error(t, slot.TryAcquire(kernel.UUID{}))
		assert.False(t, slot.IsOccupied())
	})
}

func TestSlot_Release(t *testing.T) {
	t.Run("should release by owner", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Packaging)
		require.NoError(t, err)
		orderID := kernel.NewUUID()
		require.NoError(t, slot.TryAcquire(orderID))

		require.NoError(t, slot.Release(orderID))
		assert.False(t, slot.IsOccupied())
	})

	t.Run("should reject release by another order", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Packaging)
		require.NoError(t, err)
		owner := kernel.NewUUID()
		require.NoError(t, slot.TryAcquire(owner))

		err = slot.Release(kernel.NewUUID())

		require.ErrorIs(t, err, stage.ErrNotSlotOwner)
		assert.True(t, slot.Occupant().IsEqual(owner), "occupant must be unchanged")
	})

	t.Run("should reject release of empty slot", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Packaging)
		require.NoError(t, err)

		require.ErrorIs(t, slot.Release(kernel.NewUUID()), stage.ErrNotSlotOwner)
	})
}

func TestSlot_ForceRelease(t *testing.T) {
	t.Run("should free slot unconditionally", func(t *testing.T) {
		slot, err := stage.NewSlot(stage.Flexo)
		require.NoError(t, err)
		require.NoError(t, slot.TryAcquire(kernel.NewUUID()))

		slot.ForceRelease()

		assert.False(t, slot.IsOccupied())
	})
}
