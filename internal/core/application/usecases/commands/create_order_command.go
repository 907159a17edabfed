package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/stage"
	"production/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrJobNameIsRequired     = errors.New("job name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new production order
// at a stage. The order starts Pending with no slot ownership and no
// verified data.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	jobName     string
	quantity    int
	bagType     string
	stage       stage.Stage

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the intake fields and builds the command.
// The bag type is optional at intake.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber, jobName string,
	quantity int,
	bagType string,
	st stage.Stage,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setJobName(jobName),
		cmd.setQuantity(quantity),
		cmd.setStage(st),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.bagType = bagType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the customer-facing order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// JobName returns the job description.
func (c CreateOrderCommand) JobName() string {
	return c.jobName
}

// Quantity returns the ordered piece count.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// BagType returns the optional bag type intake attribute.
func (c CreateOrderCommand) BagType() string {
	return c.bagType
}

// Stage returns the production stage the order is created at.
func (c CreateOrderCommand) Stage() stage.Stage {
	return c.stage
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setJobName(jobName string) error {
	if jobName == "" {
		return ErrJobNameIsRequired
	}
	c.jobName = jobName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setStage(st stage.Stage) error {
	if err := st.Validate(); err != nil {
		return err
	}
	c.stage = st
	return nil
}
