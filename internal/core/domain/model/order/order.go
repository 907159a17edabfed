package order

import (
	"errors"
	"fmt"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"
	"production/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNotVerified indicates an admission attempt without an accepted
	// verification record on a stage that requires one.
	ErrNotVerified = errors.New("order has no accepted verification record")

	// ErrOrderForwarded indicates the order was already routed to the next
	// stage; forwarding and direct billing are mutually exclusive terminal
	// actions.
	ErrOrderForwarded = errors.New("order has been forwarded to the next stage")

	// ErrOrderBilled indicates the order was already billed and can no longer
	// be forwarded.
	ErrOrderBilled = errors.New("order has been billed")
)

// Order is the aggregate root of the production lifecycle. It tracks one
// manufacturing order within one stage: its lifecycle status, its billing
// sub-state, the verified measurement data attached at admission, and whether
// it was forwarded downstream.
//
// Invariants:
//   - verified data is present if and only if the order is InProgress or
//     Completed on a stage that requires verification
//   - the billing sub-state leaves BillingNone only through Complete and
//     reaches Billed only through ConfirmBilling
//   - forwarding and billing confirmation are mutually exclusive
type Order struct {
	id          kernel.UUID
	orderNumber string
	jobName     string
	quantity    int
	bagType     string
	stage       stage.Stage

	status        Status
	billingStatus BillingStatus
	verified      *VerifiedRecord
	forwarded     bool

	// loadedStatus is the status the aggregate carried when it was loaded
	// from persistence; repositories use it for conditional writes.
	loadedStatus Status

	isConstructed bool
}

// NewOrder creates a Pending order at a stage. The order owns no slot and
// carries no verified data. The bag type is an optional intake attribute;
// for printing orders it is often only known after verification.
func NewOrder(id kernel.UUID, orderNumber, jobName string, quantity int, bagType string, st stage.Stage) (*Order, error) {
	o := &Order{
		status:        Pending,
		billingStatus: BillingNone,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setJobName(jobName),
		o.setQuantity(quantity),
		o.setStage(st),
	); err != nil {
		return nil, err
	}

	o.bagType = bagType
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// lifecycle and billing state. It re-validates the verified-data invariant so
// corrupted rows fail on load rather than on the next command.
func RestoreOrder(
	id kernel.UUID,
	orderNumber, jobName string,
	quantity int,
	bagType string,
	st stage.Stage,
	status Status,
	billingStatus BillingStatus,
	verified *VerifiedRecord,
	forwarded bool,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setJobName(jobName),
		o.setQuantity(quantity),
		o.setStage(st),
		status.Validate(),
		billingStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if verified != nil {
		if err := verified.Validate(); err != nil {
			return nil, err
		}
		if status == Pending {
			return nil, errs.NewValueIsInvalidErrorWithCause("order is invalid",
				fmt.Errorf("pending order %s must not carry verified data", id))
		}
	}

	o.bagType = bagType
	o.status = status
	o.billingStatus = billingStatus
	o.verified = verified
	o.forwarded = forwarded
	o.loadedStatus = status
	return o, nil
}

// LoadedStatus returns the status the aggregate was loaded with, or the
// current status for a freshly created order. Persistence adapters condition
// updates on it so concurrent lifecycle commands cannot both apply.
func (o *Order) LoadedStatus() Status {
	if o.loadedStatus == Unknown {
		return o.status
	}
	return o.loadedStatus
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the customer-facing order number (e.g. "ORD-001"),
// shared across stages when an order is forwarded.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// JobName returns the human-readable job description.
func (o *Order) JobName() string {
	return o.jobName
}

// Quantity returns the ordered piece count.
func (o *Order) Quantity() int {
	return o.quantity
}

// BagType returns the bag type attribute, empty when not yet known.
func (o *Order) BagType() string {
	return o.bagType
}

// Stage returns the production stage this order record belongs to.
func (o *Order) Stage() stage.Stage {
	return o.stage
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// BillingStatus returns the billing sub-state.
func (o *Order) BillingStatus() BillingStatus {
	return o.billingStatus
}

// VerifiedRecord returns the accepted verification record, or nil when none
// has been attached.
func (o *Order) VerifiedRecord() *VerifiedRecord {
	return o.verified
}

// VerifiedData returns a copy of the verified measured parameters, or nil
// when no record is attached.
func (o *Order) VerifiedData() ParameterSet {
	if o.verified == nil {
		return nil
	}
	return o.verified.Parameters()
}

// IsForwarded reports whether the order was routed to the next stage.
func (o *Order) IsForwarded() bool {
	return o.forwarded
}

// VerifiedAt returns the timestamp of the accepted verification record, or
// the zero time when none is attached.
func (o *Order) VerifiedAt() time.Time {
	if o.verified == nil {
		return time.Time{}
	}
	return o.verified.VerifiedAt()
}

// Admit moves the order from Pending to InProgress under the stage's
// configuration. For verification-gated stages it requires a record verified
// for this exact order and stamps its data onto the order; the record is
// rejected with ErrNotVerified when missing or issued for another order.
//
// Admit does not touch the stage slot; the lifecycle engine acquires the slot
// first and applies both effects in one transaction.
func (o *Order) Admit(record *VerifiedRecord, cfg stage.Config) error {
	newStatus, err := o.status.Admit()
	if err != nil {
		return err
	}

	if cfg.RequiresVerification() {
		if record == nil {
			return ErrNotVerified
		}
		if err = record.Validate(); err != nil {
			return err
		}
		if !record.OrderID().IsEqual(o.id) {
			return fmt.Errorf("%w: record belongs to order %s", ErrNotVerified, record.OrderID())
		}
		o.verified = record
		if bagType, ok := record.Parameters()["bagType"]; ok {
			o.bagType = bagType
		}
	}

	o.status = newStatus
	return nil
}

// Complete moves the order from InProgress to Completed and stamps the
// billing sub-state to PendingBilling. The caller releases the stage slot in
// the same transaction.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	newBilling, err := o.billingStatus.MarkPending()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.billingStatus = newBilling
	return nil
}

// Deactivate moves an InProgress order back to Pending and discards its
// verified data, restoring the pending-order invariant. Administrative
// override for vacating a work cell without completing the job.
func (o *Order) Deactivate() error {
	newStatus, err := o.status.Deactivate()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.verified = nil
	return nil
}

// ConfirmBilling moves the billing sub-state from PendingBilling to Billed.
// Valid only on a Completed order that has not been forwarded; Billed is
// terminal.
func (o *Order) ConfirmBilling() error {
	if o.status != Completed {
		return fmt.Errorf("%w: cannot bill order in status %s", ErrInvalidTransition, o.status)
	}
	if o.forwarded {
		return ErrOrderForwarded
	}

	newBilling, err := o.billingStatus.Confirm()
	if err != nil {
		return err
	}

	o.billingStatus = newBilling
	return nil
}

// MarkForwarded closes the order at this stage after its successor record was
// created downstream. Valid only on a Completed order that was neither billed
// nor already forwarded; the billing sub-state is left untouched for audit.
func (o *Order) MarkForwarded() error {
	if o.status != Completed {
		return fmt.Errorf("%w: cannot forward order in status %s", ErrInvalidTransition, o.status)
	}
	if o.billingStatus == Billed {
		return ErrOrderBilled
	}
	if o.forwarded {
		return ErrOrderForwarded
	}

	o.forwarded = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setJobName(jobName string) error {
	if jobName == "" {
		return errs.NewValueIsRequiredError("jobName")
	}
	o.jobName = jobName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStage(st stage.Stage) error {
	if err := st.Validate(); err != nil {
		return err
	}
	o.stage = st
	return nil
}
