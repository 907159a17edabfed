package order

import (
	"errors"
	"fmt"
)

// ErrNotPendingBilling indicates a billing confirmation for an order that is
// not awaiting billing. Duplicate confirmations land here, making billing a
// terminal one-shot transition.
var ErrNotPendingBilling = errors.New("order is not pending billing")

// BillingStatus is the terminal sub-state of a completed order.
//
// Transitions:
//
//	BillingNone ──(complete)──> PendingBilling ──(confirm)──> Billed
//
// PendingBilling is entered only as a side effect of completing production
// work; Billed is entered only through an explicit confirmation.
type BillingStatus int

const (
	// BillingNone means the order has not completed production at this stage.
	BillingNone BillingStatus = iota

	// PendingBilling means production completed and the order awaits an
	// explicit billing confirmation.
	PendingBilling

	// Billed is terminal: the order was handed off to billing.
	Billed
)

func getBillingStatusStrings() map[BillingStatus]string {
	return map[BillingStatus]string{
		BillingNone:    "None",
		PendingBilling: "PendingBilling",
		Billed:         "Billed",
	}
}

// Validate checks the BillingStatus holds one of the defined sub-states.
func (s BillingStatus) Validate() error {
	if _, ok := getBillingStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid billing status", ErrNotPendingBilling, s)
	}
	return nil
}

// String implements fmt.Stringer.
func (s BillingStatus) String() string {
	if str, ok := getBillingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkPending transitions BillingNone to PendingBilling when production work
// completes.
func (s BillingStatus) MarkPending() (BillingStatus, error) {
	if s != BillingNone {
		return 0, fmt.Errorf("%w: billing status is already %s", ErrNotPendingBilling, s)
	}
	return PendingBilling, nil
}

// Confirm transitions PendingBilling to Billed. Any other source state fails
// with ErrNotPendingBilling; once Billed, no command can change the
// billing status again.
func (s BillingStatus) Confirm() (BillingStatus, error) {
	if s != PendingBilling {
		return 0, fmt.Errorf("%w: billing status is %s", ErrNotPendingBilling, s)
	}
	return Billed, nil
}
