package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order's externally
// settable fields: order number and status. Totals are store-internal and
// cannot be set through any command. Nil fields are left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     uint64
	orderNumber *string
	status      *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial order update. A provided order
// number must be non-empty; a provided status must be a valid lifecycle
// state.
func NewUpdateOrderCommand(orderID uint64, orderNumber *string, status *order.Status) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identity.
func (c UpdateOrderCommand) OrderID() uint64 {
	return c.orderID
}

// OrderNumber returns the new order number, or nil to keep the current one.
func (c UpdateOrderCommand) OrderNumber() *string {
	return c.orderNumber
}

// Status returns the new status, or nil to keep the current one.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setOrderNumber(orderNumber *string) error {
	if orderNumber != nil && *orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}
