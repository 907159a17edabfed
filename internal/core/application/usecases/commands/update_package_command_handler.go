package commands

import (
	"context"
)

// UpdatePackageCommandHandler applies a dimension correction to a package.
// The Resize call is all-or-nothing: an invalid value leaves the stored
// package untouched.
type UpdatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewUpdatePackageCommandHandler creates a handler for package updates.
func NewUpdatePackageCommandHandler(uowFactory PackageUoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h UpdatePackageCommandHandler) Handle(ctx context.Context, cmd UpdatePackageCommand) error {
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

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = pkg.Resize(cmd.Length(), cmd.Width(), cmd.Height(), cmd.Weight()); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
