// Package packagerepo persists packages produced for completed orders.
package packagerepo

import (
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/produce"

	"github.com/google/uuid"
)

// PackageDTO is the database representation of a package. Dimensions are
// centimeters, weight is kilograms.
type PackageDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Length  float64
	Width   float64
	Height  float64
	Weight  float64
}

// TableName overrides GORM's default naming to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *produce.Package) PackageDTO {
	return PackageDTO{
		ID:      p.ID().Bytes(),
		OrderID: p.OrderID().Bytes(),
		Length:  p.Length(),
		Width:   p.Width(),
		Height:  p.Height(),
		Weight:  p.Weight(),
	}
}

func toDomain(dto PackageDTO) (*produce.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return produce.RestorePackage(id, orderID, dto.Length, dto.Width, dto.Height, dto.Weight)
}
