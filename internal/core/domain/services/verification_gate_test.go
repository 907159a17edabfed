package services_test

import (
	"testing"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
	"production/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gateClock = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newGate() services.VerificationGate {
	return services.NewVerificationGateWithClock(func() time.Time { return gateClock })
}

func orderAt(t *testing.T, st stage.Stage) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-001", "Shopping Bags 12x16", 5000, "", st)
	require.NoError(t, err)
	return o
}

func flexoMeasured() order.ParameterSet {
	return order.ParameterSet{
		"rollSize":     "24in",
		"gsm":          "80",
		"fabricColor":  "white",
		"bagType":      "D-Cut",
		"printColor":   "blue",
		"cylinderSize": "32",
	}
}

func TestVerificationGate_Verify(t *testing.T) {
	t.Run("should produce timestamped record for valid parameters", func(t *testing.T) {
		o := orderAt(t, stage.Flexo)

		record, err := newGate().Verify(o, flexoMeasured())

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.True(t, record.OrderID().IsEqual(o.ID()))
		assert.Equal(t, gateClock, record.VerifiedAt())
		assert.Equal(t, "80", record.Parameters()["gsm"])
	})

	t.Run("should not mutate the order", func(t *testing.T) {
		o := orderAt(t, stage.Flexo)

		_, err := newGate().Verify(o, flexoMeasured())

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.VerifiedData())
	})

	t.Run("should produce fresh records on repeated calls", func(t *testing.T) {
		o := orderAt(t, stage.BagMaking)
		measured := order.ParameterSet{
			"bagSize": "12x16", "bagColor": "green", "gsm": "80", "weight": "25.5",
		}
		gate := newGate()

		first, err := gate.Verify(o, measured)
		require.NoError(t, err)
		second, err := gate.Verify(o, measured)
		require.NoError(t, err)

		assert.Equal(t, first.Parameters(), second.Parameters())
	})

	t.Run("should reject empty parameter set", func(t *testing.T) {
		_, err := newGate().Verify(orderAt(t, stage.Flexo), order.ParameterSet{})

		require.ErrorIs(t, err, services.ErrInvalidParameters)
	})

	t.Run("should reject missing required keys", func(t *testing.T) {
		measured := flexoMeasured()
		delete(measured, "printColor")
		delete(measured, "cylinderSize")

		_, err := newGate().Verify(orderAt(t, stage.Flexo), measured)

		require.ErrorIs(t, err, services.ErrInvalidParameters)
		assert.Contains(t, err.Error(), "printColor")
		assert.Contains(t, err.Error(), "cylinderSize")
	})

	t.Run("should reject empty categorical values", func(t *testing.T) {
		measured := flexoMeasured()
		measured["fabricColor"] = ""

		_, err := newGate().Verify(orderAt(t, stage.Flexo), measured)

		require.ErrorIs(t, err, services.ErrInvalidParameters)
		assert.Contains(t, err.Error(), "fabricColor")
	})

	t.Run("should reject non-numeric dimensional values", func(t *testing.T) {
		measured := flexoMeasured()
		measured["gsm"] = "eighty"

		_, err := newGate().Verify(orderAt(t, stage.Flexo), measured)

		require.ErrorIs(t, err, services.ErrInvalidParameters)
		assert.Contains(t, err.Error(), "gsm")
	})

	t.Run("should reject non-positive dimensional values", func(t *testing.T) {
		for _, value := range []string{"0", "-80"} {
			measured := flexoMeasured()
			measured["gsm"] = value

			_, err := newGate().Verify(orderAt(t, stage.Flexo), measured)

			require.ErrorIs(t, err, services.ErrInvalidParameters)
		}
	})

	t.Run("should collect every violation in one error", func(t *testing.T) {
		measured := flexoMeasured()
		measured["gsm"] = "-80"
		measured["rollSize"] = ""
		delete(measured, "bagType")

		_, err := newGate().Verify(orderAt(t, stage.Flexo), measured)

		require.ErrorIs(t, err, services.ErrInvalidParameters)
		assert.Contains(t, err.Error(), "gsm")
		assert.Contains(t, err.Error(), "rollSize")
		assert.Contains(t, err.Error(), "bagType")
	})

	t.Run("should ignore extra parameters beyond the schema", func(t *testing.T) {
		measured := flexoMeasured()
		measured["operator"] = "shift-b"

		record, err := newGate().Verify(orderAt(t, stage.Flexo), measured)

		require.NoError(t, err)
		assert.Equal(t, "shift-b", record.Parameters()["operator"])
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		_, err := newGate().Verify(&order.Order{}, flexoMeasured())

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
