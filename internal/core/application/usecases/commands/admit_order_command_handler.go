package commands

import (
	"context"
	"errors"
	"fmt"

	"production/internal/core/domain/model/stage"
)

// ErrStageBusy indicates another order already occupies the stage's slot.
// This is a user-actionable conflict: the operator completes or deactivates
// the active job and retries.
var ErrStageBusy = errors.New("a job is already active in this stage")

// AdmitOrderCommandHandler admits a pending order into its stage's work
// slot. The slot acquisition and the status change happen inside one unit of
// work, so a failure at any step leaves both the order and the slot exactly
// as they were.
type AdmitOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewAdmitOrderCommandHandler creates a handler for order admission.
func NewAdmitOrderCommandHandler(uowFactory LifecycleUoWFactory) AdmitOrderCommandHandler {
	return AdmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the admission. Failure modes, all non-mutating:
//   - ErrStageBusy when the slot is held by another order
//   - order.ErrNotVerified when the stage requires verification and no
//     accepted record for this order was supplied
//   - order.ErrInvalidTransition when the order is not Pending
func (h AdmitOrderCommandHandler) Handle(ctx context.Context, cmd AdmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cfg, err := stage.ConfigFor(o.Stage())
	if err != nil {
		return err
	}

	if err = uow.SlotRepository().TryAcquire(ctx, o.Stage(), o.ID()); err != nil {
		if errors.Is(err, stage.ErrSlotOccupied) {
			return fmt.Errorf("%w: stage %s", ErrStageBusy, o.Stage())
		}
		return err
	}

	if err = o.Admit(cmd.VerifiedRecord(), cfg); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
