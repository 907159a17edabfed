package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStageQueryHandler reads the production board of a stage from
// the database.
type GetOrdersByStageQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStageQueryHandler creates a handler over a GORM connection.
func NewGetOrdersByStageQueryHandler(db *gorm.DB) GetOrdersByStageQueryHandler {
	return GetOrdersByStageQueryHandler{db: db}
}

// Handle returns every order registered at the stage, sorted by order number
// for stable board output.
func (h GetOrdersByStageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStageQuery,
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
		WHERE stage = ?
		ORDER BY order_number, id
	`, int(query.Stage())).Rows()
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

// rowScanner is the subset of sql.Rows the view scanners need.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(rows rowScanner) (OrderView, error) {
	var (
		id            uuid.UUID
		view          OrderView
		stageValue    int
		status        int
		billingStatus int
	)

	err := rows.Scan(
		&id,
		&view.OrderNumber,
		&view.JobName,
		&view.Quantity,
		&view.BagType,
		&stageValue,
		&status,
		&billingStatus,
		&view.Forwarded,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}

	view.ID = orderID
	view.Stage = stage.Stage(stageValue)
	view.Status = order.Status(status)
	view.BillingStatus = order.BillingStatus(billingStatus)
	return view, nil
}
