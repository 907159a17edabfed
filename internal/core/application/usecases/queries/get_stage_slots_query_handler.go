package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStageSlotsQueryHandler reads slot occupancy joined with the occupying
// order's identity.
type GetStageSlotsQueryHandler struct {
	db *gorm.DB
}

// NewGetStageSlotsQueryHandler creates a handler over a GORM connection.
func NewGetStageSlotsQueryHandler(db *gorm.DB) GetStageSlotsQueryHandler {
	return GetStageSlotsQueryHandler{db: db}
}

// Handle returns one row per stage slot in line order.
func (h GetStageSlotsQueryHandler) Handle(
	ctx context.Context,
	query GetStageSlotsQuery,
) ([]StageSlotView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]StageSlotView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.stage,
			s.occupant_id,
			o.order_number,
			o.job_name
		FROM stage_slots s
		LEFT JOIN orders o ON o.id = s.occupant_id
		ORDER BY s.stage
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view        StageSlotView
			stageValue  int
			occupantID  *uuid.UUID
			orderNumber *string
			jobName     *string
		)

		if err = rows.Scan(&stageValue, &occupantID, &orderNumber, &jobName); err != nil {
			return nil, err
		}

		view.Stage = stage.Stage(stageValue)
		if occupantID != nil {
			id, idErr := kernel.UUIDFromBytes((*occupantID)[:])
			if idErr != nil {
				return nil, idErr
			}
			view.OccupantID = &id
		}
		view.OrderNumber = orderNumber
		view.JobName = jobName
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
