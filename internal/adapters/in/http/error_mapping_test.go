package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
	"production/internal/core/domain/services"
	"production/internal/core/ports"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{errs.NewObjectNotFoundError("orderId", "1"), http.StatusNotFound},
		{fmt.Errorf("%w: gsm must be positive", services.ErrInvalidParameters), http.StatusUnprocessableEntity},
		{commands.ErrStageBusy, http.StatusConflict},
		{stage.ErrSlotOccupied, http.StatusConflict},
		{stage.ErrNotSlotOwner, http.StatusConflict},
		{fmt.Errorf("%w: cannot admit order in status Completed", order.ErrInvalidTransition), http.StatusConflict},
		{order.ErrNotVerified, http.StatusConflict},
		{order.ErrNotPendingBilling, http.StatusConflict},
		{order.ErrOrderBilled, http.StatusConflict},
		{order.ErrOrderForwarded, http.StatusConflict},
		{commands.ErrNoNextStage, http.StatusConflict},
		{errs.NewVersionIsInvalidError("order"), http.StatusConflict},
		{ports.ErrScanFailed, http.StatusBadGateway},
		{errs.NewValueIsRequiredError("jobName"), http.StatusBadRequest},
		{errs.NewValueIsInvalidError("stage is invalid"), http.StatusBadRequest},
		{order.ErrParameterSetIsEmpty, http.StatusBadRequest},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should map %q to %d", tc.err.Error(), tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, statusFor(tc.err))
		})
	}
}
