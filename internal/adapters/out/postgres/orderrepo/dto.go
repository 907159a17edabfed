// Package orderrepo persists order aggregates. It maps between the Order
// domain model and its relational representation, including the verified
// measurement data serialized as JSON.
package orderrepo

import (
	"encoding/json"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. Stage,
// status and billing status are stored as their integer enum values and
// indexed for the board queries.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber    string    `gorm:"index"`
	JobName        string
	Quantity       int
	BagType        string
	Stage          int `gorm:"index"`
	Status         int `gorm:"index"`
	BillingStatus  int `gorm:"index"`
	Forwarded      bool
	VerifiedParams *string `gorm:"type:jsonb"`
	VerifiedAt     *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		OrderNumber:   o.OrderNumber(),
		JobName:       o.JobName(),
		Quantity:      o.Quantity(),
		BagType:       o.BagType(),
		Stage:         int(o.Stage()),
		Status:        int(o.Status()),
		BillingStatus: int(o.BillingStatus()),
		Forwarded:     o.IsForwarded(),
	}

	if record := o.VerifiedRecord(); record != nil {
		raw, err := json.Marshal(record.Parameters())
		if err != nil {
			return OrderDTO{}, err
		}
		params := string(raw)
		verifiedAt := record.VerifiedAt()
		dto.VerifiedParams = &params
		dto.VerifiedAt = &verifiedAt
	}

	return dto, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var verified *order.VerifiedRecord
	if dto.VerifiedParams != nil && dto.VerifiedAt != nil {
		var params order.ParameterSet
		if err = json.Unmarshal([]byte(*dto.VerifiedParams), &params); err != nil {
			return nil, err
		}

		record, recordErr := order.NewVerifiedRecord(id, params, *dto.VerifiedAt)
		if recordErr != nil {
			return nil, recordErr
		}
		verified = &record
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.JobName,
		dto.Quantity,
		dto.BagType,
		stage.Stage(dto.Stage),
		order.Status(dto.Status),
		order.BillingStatus(dto.BillingStatus),
		verified,
		dto.Forwarded,
	)
}
