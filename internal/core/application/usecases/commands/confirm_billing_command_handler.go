package commands

import (
	"context"
)

// ConfirmBillingCommandHandler performs the billing handoff: the order's
// billing sub-state moves from PendingBilling to Billed. The state is
// re-read inside the transaction, so a proposal that went stale (the order
// was billed or forwarded in the meantime) is rejected, not re-applied.
type ConfirmBillingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmBillingCommandHandler creates a handler for billing confirmation.
func NewConfirmBillingCommandHandler(uowFactory OrderUoWFactory) ConfirmBillingCommandHandler {
	return ConfirmBillingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms the billing. A second confirmation for the same order
// fails with order.ErrNotPendingBilling; Billed is terminal.
func (h ConfirmBillingCommandHandler) Handle(ctx context.Context, cmd ConfirmBillingCommand) error {
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

	if err = o.ConfirmBilling(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
