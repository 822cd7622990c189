package commands

import (
	"errors"
	"time"

	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// CreateOrderCommand represents a request to create a new order.
// Only the order number is caller-supplied; the date defaults to the
// current time when left zero, and status, totals and items take their
// initial values.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-100", time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	date        time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The order number must be non-empty; it is not required to be unique.
func NewCreateOrderCommand(orderNumber string, date time.Time) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.date = date
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderNumber returns the caller-supplied order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Date returns the requested order date; zero means "now".
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}
