package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand requests the soft deletion of an order. The order
// disappears from all reads; its item rows remain in storage as history.
// A completed order cannot be deleted.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a soft-delete command for the given order.
func NewDeleteOrderCommand(orderID uint64) (DeleteOrderCommand, error) {
	if orderID == 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identity.
func (c DeleteOrderCommand) OrderID() uint64 {
	return c.orderID
}
