package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrChangeOrderItemQuantityCommandIsNotConstructed = errors.New(
	"change order item quantity command must be created via NewChangeOrderItemQuantityCommand")

// ChangeOrderItemQuantityCommand replaces the quantity of one order line.
// The line keeps its original price snapshot; only quantity and the
// derived totals change.
type ChangeOrderItemQuantityCommand struct {
	orderID  uint64
	itemID   uint64
	quantity int

	guard guard.ConstructorGuard
}

// NewChangeOrderItemQuantityCommand creates a validated quantity change command.
func NewChangeOrderItemQuantityCommand(orderID uint64, itemID uint64, quantity int) (ChangeOrderItemQuantityCommand, error) {
	if orderID == 0 {
		return ChangeOrderItemQuantityCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if itemID == 0 {
		return ChangeOrderItemQuantityCommand{}, errs.NewValueIsRequiredError("itemID")
	}

	return ChangeOrderItemQuantityCommand{
		orderID:  orderID,
		itemID:   itemID,
		quantity: quantity,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderItemQuantityCommand) OrderID() uint64 {
	return c.orderID
}

func (c ChangeOrderItemQuantityCommand) ItemID() uint64 {
	return c.itemID
}

func (c ChangeOrderItemQuantityCommand) Quantity() int {
	return c.quantity
}

// Validate ensures the command was properly constructed.
func (c ChangeOrderItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderItemQuantityCommandIsNotConstructed)
}
