package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
)

// ErrInvalidParameters indicates a verification payload that does not satisfy
// the stage's required parameter schema. The order is left untouched; the
// operator re-scans and retries.
var ErrInvalidParameters = errors.New("measured parameters are invalid")

// VerificationGate validates externally measured parameters against a
// stage's required schema before an order may be admitted into the stage's
// slot.
//
// Verification is idempotent per call but never cached: each successful call
// produces a fresh timestamped record, and the lifecycle engine decides
// whether to accept it (it must not once the order has left Pending).
type VerificationGate struct {
	now func() time.Time
}

// NewVerificationGate creates a gate stamping records with the wall clock.
func NewVerificationGate() VerificationGate {
	return VerificationGate{now: time.Now}
}

// NewVerificationGateWithClock creates a gate with an injected clock for
// deterministic tests.
func NewVerificationGateWithClock(now func() time.Time) VerificationGate {
	return VerificationGate{now: now}
}

// Verify checks that every parameter the order's stage requires is present
// and well-formed: categorical fields non-empty, dimensional fields positive
// numerics. On success it returns an immutable VerifiedRecord timestamped at
// validation time; on failure it rejects with ErrInvalidParameters without
// mutating any state.
func (g VerificationGate) Verify(o *order.Order, measured order.ParameterSet) (order.VerifiedRecord, error) {
	if err := o.Validate(); err != nil {
		return order.VerifiedRecord{}, err
	}

	cfg, err := stage.ConfigFor(o.Stage())
	if err != nil {
		return order.VerifiedRecord{}, err
	}

	if len(measured) == 0 {
		return order.VerifiedRecord{}, fmt.Errorf("%w: parameter set is empty", ErrInvalidParameters)
	}

	var joined error
	for _, spec := range cfg.RequiredParameters() {
		value, ok := measured[spec.Key]
		if !ok || value == "" {
			joined = errors.Join(joined, fmt.Errorf("%q is required", spec.Key))
			continue
		}

		if spec.Kind == stage.Dimensional {
			n, parseErr := strconv.ParseFloat(value, 64)
			if parseErr != nil {
				joined = errors.Join(joined, fmt.Errorf("%q is not numeric: %q", spec.Key, value))
				continue
			}
			if n <= 0 {
				joined = errors.Join(joined, fmt.Errorf("%q must be positive, got %q", spec.Key, value))
			}
		}
	}

	if joined != nil {
		return order.VerifiedRecord{}, fmt.Errorf("%w: %w", ErrInvalidParameters, joined)
	}

	return order.NewVerifiedRecord(o.ID(), measured, g.now())
}
