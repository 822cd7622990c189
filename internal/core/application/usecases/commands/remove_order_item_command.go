package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"remove order item command must be created via NewRemoveOrderItemCommand")

// RemoveOrderItemCommand removes one line from an order.
type RemoveOrderItemCommand struct {
	orderID uint64
	itemID  uint64

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a validated item removal command.
func NewRemoveOrderItemCommand(orderID uint64, itemID uint64) (RemoveOrderItemCommand, error) {
	if orderID == 0 {
		return RemoveOrderItemCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if itemID == 0 {
		return RemoveOrderItemCommand{}, errs.NewValueIsRequiredError("itemID")
	}

	return RemoveOrderItemCommand{
		orderID: orderID,
		itemID:  itemID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderItemCommand) OrderID() uint64 {
	return c.orderID
}

func (c RemoveOrderItemCommand) ItemID() uint64 {
	return c.itemID
}

// Validate ensures the command was properly constructed.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}
