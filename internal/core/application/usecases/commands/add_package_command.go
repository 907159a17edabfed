package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrAddPackageCommandIsNotConstructed = errors.New(
	"AddPackageCommand must be created via NewAddPackageCommand constructor",
)

// AddPackageCommand requests recording of a produced parcel for an order on
// the packaging stage. Dimensions are centimeters, weight is kilograms.
type AddPackageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	length  float64
	width   float64
	height  float64
	weight  float64

	guard guard.ConstructorGuard
}

// NewAddPackageCommand builds the command. Dimension values are validated by
// the Package constructor inside the handler so all violations are reported
// together.
func NewAddPackageCommand(orderID kernel.UUID, length, width, height, weight float64) (AddPackageCommand, error) {
	cmd := AddPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddPackageCommand{}, err
	}

	cmd.length = length
	cmd.width = width
	cmd.height = height
	cmd.weight = weight
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPackageCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageCommandIsNotConstructed)
}

// OrderID returns the owning order.
func (c AddPackageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Length returns the package length in centimeters.
func (c AddPackageCommand) Length() float64 {
	return c.length
}

// Width returns the package width in centimeters.
func (c AddPackageCommand) Width() float64 {
	return c.width
}

// Height returns the package height in centimeters.
func (c AddPackageCommand) Height() float64 {
	return c.height
}

// Weight returns the package weight in kilograms.
func (c AddPackageCommand) Weight() float64 {
	return c.weight
}

func (c *AddPackageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
