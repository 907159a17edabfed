package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackagesForOrderQueryHandler reads the packages of one order.
type GetPackagesForOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPackagesForOrderQueryHandler creates a handler over a GORM connection.
func NewGetPackagesForOrderQueryHandler(db *gorm.DB) GetPackagesForOrderQueryHandler {
	return GetPackagesForOrderQueryHandler{db: db}
}

// Handle returns the order's packages in insertion order.
func (h GetPackagesForOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPackagesForOrderQuery,
) ([]PackageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]PackageView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, length, width, height, weight
		FROM packages
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view      PackageView
			rawID     uuid.UUID
			rawOrder  uuid.UUID
		)

		if err = rows.Scan(&rawID, &rawOrder,
			&view.Length, &view.Width, &view.Height, &view.Weight); err != nil {
			return nil, err
		}

		view.ID, err = kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return nil, err
		}
		view.OrderID, err = kernel.UUIDFromBytes(rawOrder[:])
		if err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
