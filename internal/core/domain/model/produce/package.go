package produce

import (
	"errors"
	"fmt"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

// ErrPackageIsNotConstructed indicates a Package that was not built via
// NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

// Package is a physical parcel produced for a completed order. Dimensions
// are centimeters, weight is kilograms; all must be positive. A package is
// owned exclusively by its parent order and is never shared.
type Package struct {
	id      kernel.UUID
	orderID kernel.UUID
	length  float64
	width   float64
	height  float64
	weight  float64

	guard guard.ConstructorGuard
}

// NewPackage creates a package for an order with validated dimensions.
func NewPackage(id, orderID kernel.UUID, length, width, height, weight float64) (*Package, error) {
	p := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setDimensions(length, width, height, weight),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistence.
func RestorePackage(id, orderID kernel.UUID, length, width, height, weight float64) (*Package, error) {
	return NewPackage(id, orderID, length, width, height, weight)
}

// Validate ensures the Package was built through a constructor.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares two packages by identity.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// OrderID returns the owning order's identifier.
func (p *Package) OrderID() kernel.UUID {
	return p.orderID
}

// Length returns the package length in centimeters.
func (p *Package) Length() float64 {
	return p.length
}

// Width returns the package width in centimeters.
func (p *Package) Width() float64 {
	return p.width
}

// Height returns the package height in centimeters.
func (p *Package) Height() float64 {
	return p.height
}

// Weight returns the package weight in kilograms.
func (p *Package) Weight() float64 {
	return p.weight
}

// Resize replaces the package dimensions after a measurement correction.
// All values are validated together; on failure nothing changes.
func (p *Package) Resize(length, width, height, weight float64) error {
	return p.setDimensions(length, width, height, weight)
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("order id: %w", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Package) setDimensions(length, width, height, weight float64) error {
	var errsJoined error
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"length", length},
		{"width", width},
		{"height", height},
		{"weight", weight},
	} {
		if d.value <= 0 {
			errsJoined = errors.Join(errsJoined, errs.NewValueIsInvalidErrorWithCause(
				d.name+" is invalid",
				fmt.Errorf("%g is not greater than 0", d.value)))
		}
	}
	if errsJoined != nil {
		return errsJoined
	}

	p.length = length
	p.width = width
	p.height = height
	p.weight = weight
	return nil
}
