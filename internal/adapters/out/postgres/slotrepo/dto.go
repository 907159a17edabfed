// Package slotrepo persists stage slots. The slot table is the source of
// truth for stage occupancy: acquire and release are single conditional
// UPDATEs, so concurrent admissions into the same stage are serialized by the
// database rather than by application locks.
package slotrepo

import (
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"

	"github.com/google/uuid"
)

// SlotDTO is the database representation of a stage slot. One row per stage;
// a NULL occupant means the stage is free.
type SlotDTO struct {
	Stage      int        `gorm:"primaryKey"`
	OccupantID *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming to use "stage_slots".
func (SlotDTO) TableName() string {
	return "stage_slots"
}

func toDomain(dto SlotDTO) (*stage.Slot, error) {
	var occupant *kernel.UUID
	if dto.OccupantID != nil {
		id, err := kernel.UUIDFromBytes((*dto.OccupantID)[:])
		if err != nil {
			return nil, err
		}
		occupant = &id
	}

	return stage.RestoreSlot(stage.Stage(dto.Stage), occupant)
}
