package commands

import (
	"context"
	"fmt"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/produce"
)

// AddPackageCommandHandler records a produced parcel against a completed
// order. The owning order is read in the same transaction, so a package can
// never be attached to an order that was deleted or is still in production.
type AddPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewAddPackageCommandHandler creates a handler for package creation.
func NewAddPackageCommandHandler(uowFactory PackageUoWFactory) AddPackageCommandHandler {
	return AddPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the package and returns its identifier.
func (h AddPackageCommandHandler) Handle(ctx context.Context, cmd AddPackageCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if o.Status() != order.Completed {
		return kernel.UUID{}, fmt.Errorf("%w: cannot add package to order in status %s",
			order.ErrInvalidTransition, o.Status())
	}

	pkg, err := produce.NewPackage(
		kernel.NewUUID(),
		o.ID(),
		cmd.Length(),
		cmd.Width(),
		cmd.Height(),
		cmd.Weight(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return pkg.ID(), nil
}
