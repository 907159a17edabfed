package stage

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var (
	// ErrSlotOccupied indicates the stage already has an active order and a
	// new one cannot be admitted until it completes or is deactivated.
	ErrSlotOccupied = errors.New("stage slot is occupied by another order")

	// ErrNotSlotOwner indicates a release attempt by an order that does not
	// currently occupy the slot. It guards against stale or duplicate
	// completion calls.
	ErrNotSlotOwner = errors.New("order does not occupy this stage slot")

	// ErrSlotIsNotConstructed indicates the Slot was not built via
	// NewSlot or RestoreSlot.
	ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot or RestoreSlot")
)

// Slot is the mutual-exclusion entity of one stage: it records which order,
// if any, is currently being worked. The invariant it protects is that at
// most one order per stage is in progress, and that the occupant recorded
// here is exactly that order.
//
// A slot is never released implicitly; a human-paced work cell holds it until
// an explicit completion or an administrative deactivation.
type Slot struct {
	stage    Stage
	occupant *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSlot creates an empty slot for a stage.
func NewSlot(s Stage) (*Slot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Slot{
		stage: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreSlot reconstructs a slot from persistence, including its occupant.
func RestoreSlot(s Stage, occupant *kernel.UUID) (*Slot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if occupant != nil {
		if err := occupant.Validate(); err != nil {
			return nil, err
		}
	}

	return &Slot{
		stage:    s,
		occupant: occupant,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the slot was built through a constructor.
func (s *Slot) Validate() error {
	if s == nil {
		return ErrSlotIsNotConstructed
	}
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

// Stage returns the stage this slot belongs to.
func (s *Slot) Stage() Stage {
	return s.stage
}

// Occupant returns the id of the order currently being worked, or nil when
// the slot is free.
func (s *Slot) Occupant() *kernel.UUID {
	return s.occupant
}

// IsOccupied reports whether an order currently holds the slot.
func (s *Slot) IsOccupied() bool {
	return s.occupant != nil
}

// TryAcquire claims the slot for an order. It is a non-blocking attempt:
// it succeeds only when the slot is empty and fails with ErrSlotOccupied
// otherwise, leaving the slot unchanged.
func (s *Slot) TryAcquire(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if s.occupant != nil {
		return ErrSlotOccupied
	}

	s.occupant = &orderID
	return nil
}

// Release frees the slot on behalf of its current occupant. A release by any
// other order fails with ErrNotSlotOwner and leaves the slot unchanged.
func (s *Slot) Release(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if s.occupant == nil || !s.occupant.IsEqual(orderID) {
		return ErrNotSlotOwner
	}

	s.occupant = nil
	return nil
}

// ForceRelease unconditionally frees the slot. Administrative override only;
// normal completion goes through Release.
func (s *Slot) ForceRelease() {
	s.occupant = nil
}
