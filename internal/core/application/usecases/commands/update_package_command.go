package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand requests a dimension correction on an existing
// package after it was re-measured.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	length    float64
	width     float64
	height    float64
	weight    float64

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand builds the command.
func NewUpdatePackageCommand(packageID kernel.UUID, length, width, height, weight float64) (UpdatePackageCommand, error) {
	cmd := UpdatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPackageID(packageID); err != nil {
		return UpdatePackageCommand{}, err
	}

	cmd.length = length
	cmd.width = width
	cmd.height = height
	cmd.weight = weight
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// PackageID returns the package to update.
func (c UpdatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Length returns the corrected length in centimeters.
func (c UpdatePackageCommand) Length() float64 {
	return c.length
}

// Width returns the corrected width in centimeters.
func (c UpdatePackageCommand) Width() float64 {
	return c.width
}

// Height returns the corrected height in centimeters.
func (c UpdatePackageCommand) Height() float64 {
	return c.height
}

// Weight returns the corrected weight in kilograms.
func (c UpdatePackageCommand) Weight() float64 {
	return c.weight
}

func (c *UpdatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}
