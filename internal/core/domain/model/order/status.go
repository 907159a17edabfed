package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition indicates a lifecycle command was issued from the
// wrong state. It signals a UI/state synchronization bug and is surfaced to
// the caller rather than silently ignored.
var ErrInvalidTransition = errors.New("invalid transition for order status")

// Status represents the lifecycle state of an order within its stage.
//
// State transitions:
//
//	Pending ──(admit)──> InProgress ──(complete)──> Completed
//	   ^                     │
//	   └───(deactivate)──────┘
//
// Completed is terminal for the stage; billing and forwarding are tracked
// separately (BillingStatus, forwarded flag).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the order waits outside the stage slot
	// and carries no verified data.
	Pending

	// InProgress means the order occupies its stage's slot and is being
	// actively worked.
	InProgress

	// Completed means work at this stage finished and the slot was released.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks the Status holds one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
func StatusFromString(name string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == name {
			return st, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid status name", ErrInvalidTransition, name)
}

// Admit transitions Pending to InProgress. Any other source state fails with
// ErrInvalidTransition.
func (s Status) Admit() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot admit order in status %s", ErrInvalidTransition, s)
	}
	return InProgress, nil
}

// Complete transitions InProgress to Completed. Any other source state fails
// with ErrInvalidTransition, so a duplicate completion is reported rather
// than re-applied.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot complete order in status %s", ErrInvalidTransition, s)
	}
	return Completed, nil
}

// Deactivate transitions InProgress back to Pending. Administrative override
// used when a work cell must be vacated without completing the order.
func (s Status) Deactivate() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot deactivate order in status %s", ErrInvalidTransition, s)
	}
	return Pending, nil
}
