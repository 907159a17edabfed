package commands

import (
	"context"
	"fmt"

	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
)

// VerifyOrderCommandHandler runs the verification gate for a pending order.
// Verification mutates nothing: the resulting record is handed back to the
// caller, who presents it to AdmitOrderCommand. A re-invocation produces a
// fresh record; the engine refuses records once the order has left Pending.
type VerifyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.VerificationGate
}

// NewVerifyOrderCommandHandler creates a handler wiring the verification gate.
func NewVerifyOrderCommandHandler(uowFactory OrderUoWFactory, gate services.VerificationGate) VerifyOrderCommandHandler {
	return VerifyOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle validates the measured parameters against the order's stage schema
// and returns the resulting record. Fails with order.ErrInvalidTransition
// when the order is no longer Pending, and with services.ErrInvalidParameters
// on a malformed payload; the order is unchanged either way.
func (h VerifyOrderCommandHandler) Handle(ctx context.Context, cmd VerifyOrderCommand) (order.VerifiedRecord, error) {
	if err := cmd.Validate(); err != nil {
		return order.VerifiedRecord{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.VerifiedRecord{}, err
	}

	// Read-only use case: the transaction exists for a consistent snapshot
	// and is always rolled back.
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return order.VerifiedRecord{}, err
	}

	if o.Status() != order.Pending {
		return order.VerifiedRecord{}, fmt.Errorf("%w: cannot verify order in status %s",
			order.ErrInvalidTransition, o.Status())
	}

	return h.gate.Verify(o, cmd.Measured())
}
