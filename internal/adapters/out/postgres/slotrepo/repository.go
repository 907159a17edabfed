package slotrepo

import (
	"context"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"
	"production/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSlotRepository implements ports.SlotRepository using GORM. Acquire and
// release are compare-and-set UPDATEs conditioned on the current occupant;
// the affected-rows count tells whether the claim won.
type GormSlotRepository struct {
	db *gorm.DB
}

// NewGormSlotRepository creates a new GORM slot repository.
func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{db: db}
}

// EnsureSlots creates the slot row of every stage if missing. Called once at
// startup; existing rows, including occupied ones, are left untouched.
func (r *GormSlotRepository) EnsureSlots(ctx context.Context) error {
	for _, st := range stage.All() {
		dto := SlotDTO{Stage: int(st)}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves the slot of a stage.
func (r *GormSlotRepository) Get(ctx context.Context, st stage.Stage) (*stage.Slot, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	var dto SlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "stage = ?", int(st)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slot", st.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// TryAcquire atomically claims the stage's slot for an order. The UPDATE
// applies only when the occupant column is NULL; zero affected rows means
// another order holds the slot and the attempt fails with
// stage.ErrSlotOccupied, leaving the row unchanged.
func (r *GormSlotRepository) TryAcquire(ctx context.Context, st stage.Stage, orderID kernel.UUID) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SlotDTO{}).
		Where("stage = ? AND occupant_id IS NULL", int(st)).
		Update("occupant_id", orderID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish an occupied slot from a missing row.
		if _, err := r.Get(ctx, st); err != nil {
			return err
		}
		return stage.ErrSlotOccupied
	}

	return nil
}

// Release atomically frees the slot on behalf of its occupant. The UPDATE is
// conditioned on the occupant matching the releasing order, so a stale or
// duplicate release fails with stage.ErrNotSlotOwner instead of freeing a
// slot someone else now holds.
func (r *GormSlotRepository) Release(ctx context.Context, st stage.Stage, orderID kernel.UUID) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SlotDTO{}).
		Where("stage = ? AND occupant_id = ?", int(st), orderID.Bytes()).
		Update("occupant_id", nil)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, st); err != nil {
			return err
		}
		return stage.ErrNotSlotOwner
	}

	return nil
}

// ForceRelease unconditionally frees the slot. Administrative override.
func (r *GormSlotRepository) ForceRelease(ctx context.Context, st stage.Stage) error {
	if err := st.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SlotDTO{}).
		Where("stage = ?", int(st)).
		Update("occupant_id", nil)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("slot", st.String())
	}

	return nil
}
