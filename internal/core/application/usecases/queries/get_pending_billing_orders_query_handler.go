package queries

import (
	"context"

	"production/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingBillingOrdersQueryHandler reads the billing backlog from the
// database. The billing report job and the HTTP surface share it.
type GetPendingBillingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingBillingOrdersQueryHandler creates a handler over a GORM
// connection.
func NewGetPendingBillingOrdersQueryHandler(db *gorm.DB) GetPendingBillingOrdersQueryHandler {
	return GetPendingBillingOrdersQueryHandler{db: db}
}

// Handle returns completed, not-forwarded orders in PendingBilling, sorted by
// order number.
func (h GetPendingBillingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBillingOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			job_name,
			quantity,
			bag_type,
			stage,
			status,
			billing_status,
			forwarded
		FROM orders
		WHERE status = ? AND billing_status = ? AND forwarded = FALSE
		ORDER BY order_number, id
	`, int(order.Completed), int(order.PendingBilling)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
