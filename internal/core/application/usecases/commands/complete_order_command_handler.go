package commands

import (
	"context"
)

// CompleteOrderCommandHandler finishes production work on an InProgress
// order: the order becomes Completed with billing pending, and the stage
// slot is released in the same transaction. A duplicate completion fails
// with order.ErrInvalidTransition before the slot is touched, so the slot is
// released exactly once.
type CompleteOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory LifecycleUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = o.Complete(); err != nil {
		return err
	}

	if err = uow.SlotRepository().Release(ctx, o.Stage(), o.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
