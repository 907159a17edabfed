package order_test

import (
	"testing"

	"production/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingStatus_Validate(t *testing.T) {
	t.Run("should validate defined sub-states", func(t *testing.T) {
		for _, status := range []order.BillingStatus{order.BillingNone, order.PendingBilling, order.Billed} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		require.Error(t, order.BillingStatus(-1).Validate())
		require.Error(t, order.BillingStatus(3).Validate())
	})
}

func TestBillingStatus_String(t *testing.T) {
	t.Run("should return correct strings", func(t *testing.T) {
		assert.Equal(t, "None", order.BillingNone.String())
		assert.Equal(t, "PendingBilling", order.PendingBilling.String())
		assert.Equal(t, "Billed", order.Billed.String())
		assert.Equal(t, "Unknown", order.BillingStatus(42).String())
	})
}

func TestBillingStatus_MarkPending(t *testing.T) {
	t.Run("should mark pending from None", func(t *testing.T) {
		next, err := order.BillingNone.MarkPending()

		require.NoError(t, err)
		assert.Equal(t, order.PendingBilling, next)
	})

	t.Run("should reject when already pending or billed", func(t *testing.T) {
		for _, status := range []order.BillingStatus{order.PendingBilling, order.Billed} {
			_, err := status.MarkPending()
			require.ErrorIs(t, err, order.ErrNotPendingBilling)
		}
	})
}

func TestBillingStatus_Confirm(t *testing.T) {
	t.Run("should confirm from PendingBilling", func(t *testing.T) {
		next, err := order.PendingBilling.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Billed, next)
	})

	t.Run("should reject confirm before completion", func(t *testing.T) {
		_, err := order.BillingNone.Confirm()
		require.ErrorIs(t, err, order.ErrNotPendingBilling)
	})

	t.Run("should reject duplicate confirmation", func(t *testing.T) {
		_, err := order.Billed.Confirm()
		require.ErrorIs(t, err, order.ErrNotPendingBilling)
	})
}
