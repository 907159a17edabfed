package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves a single package by identity.
type GetPackageQuery struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for the given package.
func NewGetPackageQuery(packageID kernel.UUID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, err
	}
	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PackageID returns the requested package's identifier.
func (q GetPackageQuery) PackageID() kernel.UUID {
	return q.packageID
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}
