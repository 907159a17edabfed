package order

import (
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var (
	// ErrVerifiedRecordIsNotConstructed indicates a VerifiedRecord that was
	// not produced by the verification gate.
	ErrVerifiedRecordIsNotConstructed = errors.New(
		"VerifiedRecord must be created via NewVerifiedRecord constructor")

	// ErrParameterSetIsEmpty indicates a verification attempt with no
	// measured parameters at all.
	ErrParameterSetIsEmpty = errors.New("parameter set must contain at least one parameter")
)

// ParameterSet is a mapping of measured parameter names to their raw values
// as supplied by the scanning collaborator. Dimensional values are carried as
// strings and validated numerically by the verification gate.
type ParameterSet map[string]string

// Clone returns an independent copy so callers cannot mutate shared state.
func (p ParameterSet) Clone() ParameterSet {
	if p == nil {
		return nil
	}
	out := make(ParameterSet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// VerifiedRecord is the immutable result of a successful verification: the
// accepted measured parameters for one order, timestamped at validation time.
// Only the verification gate constructs records; the lifecycle engine decides
// whether to accept one (it must not once the order has left Pending).
type VerifiedRecord struct {
	orderID    kernel.UUID
	parameters ParameterSet
	verifiedAt time.Time

	guard guard.ConstructorGuard
}

// NewVerifiedRecord creates a record binding measured parameters to an order.
// The parameter set is copied, keeping the record immutable.
func NewVerifiedRecord(orderID kernel.UUID, parameters ParameterSet, verifiedAt time.Time) (VerifiedRecord, error) {
	if err := orderID.Validate(); err != nil {
		return VerifiedRecord{}, err
	}
	if len(parameters) == 0 {
		return VerifiedRecord{}, ErrParameterSetIsEmpty
	}

	return VerifiedRecord{
		orderID:    orderID,
		parameters: parameters.Clone(),
		verifiedAt: verifiedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was produced through the constructor.
func (r VerifiedRecord) Validate() error {
	return r.guard.Validate(ErrVerifiedRecordIsNotConstructed)
}

// OrderID returns the order this record was verified for.
func (r VerifiedRecord) OrderID() kernel.UUID {
	return r.orderID
}

// Parameters returns a copy of the accepted measured parameters.
func (r VerifiedRecord) Parameters() ParameterSet {
	return r.parameters.Clone()
}

// VerifiedAt returns the validation timestamp.
func (r VerifiedRecord) VerifiedAt() time.Time {
	return r.verifiedAt
}
