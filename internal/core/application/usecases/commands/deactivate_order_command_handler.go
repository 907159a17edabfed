package commands

import (
	"context"
)

// DeactivateOrderCommandHandler applies the administrative override: the
// InProgress order goes back to Pending and the stage slot is force-released
// in the same transaction. This is the only path that frees a slot without a
// completion; slots never time out on their own.
type DeactivateOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewDeactivateOrderCommandHandler creates a handler for the override.
func NewDeactivateOrderCommandHandler(uowFactory LifecycleUoWFactory) DeactivateOrderCommandHandler {
	return DeactivateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command.
func (h DeactivateOrderCommandHandler) Handle(ctx context.Context, cmd DeactivateOrderCommand) error {
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

	if err = o.Deactivate(); err != nil {
		return err
	}

	if err = uow.SlotRepository().ForceRelease(ctx, o.Stage()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
