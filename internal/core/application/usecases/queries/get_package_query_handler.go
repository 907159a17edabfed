package queries

import (
	"context"
	"database/sql"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackageQueryHandler reads one package row.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler over a GORM connection.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle returns the package or errs.ErrObjectNotFound.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (PackageView, error) {
	if err := query.Validate(); err != nil {
		return PackageView{}, err
	}

	var (
		view     PackageView
		rawID    uuid.UUID
		rawOrder uuid.UUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, length, width, height, weight
		FROM packages
		WHERE id = ?
	`, query.PackageID().Bytes()).Row()

	err := row.Scan(&rawID, &rawOrder,
		&view.Length, &view.Width, &view.Height, &view.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return PackageView{}, errs.NewObjectNotFoundError("packageId",
			query.PackageID().String())
	}
	if err != nil {
		return PackageView{}, err
	}

	view.ID, err = kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return PackageView{}, err
	}
	view.OrderID, err = kernel.UUIDFromBytes(rawOrder[:])
	if err != nil {
		return PackageView{}, err
	}

	return view, nil
}
