package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"add order item command must be created via NewAddOrderItemCommand")

// AddOrderItemCommand adds a product to an order. When the order already
// holds a line for the product, the quantities are merged instead of
// creating a second line.
type AddOrderItemCommand struct {
	orderID   uint64
	productID uint64
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a validated command for adding an item.
// Quantity bounds are enforced by the order aggregate, not here, so that
// the rejection carries the domain error.
func NewAddOrderItemCommand(orderID uint64, productID uint64, quantity int) (AddOrderItemCommand, error) {
	if orderID == 0 {
		return AddOrderItemCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if productID == 0 {
		return AddOrderItemCommand{}, errs.NewValueIsRequiredError("productID")
	}

	return AddOrderItemCommand{
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) OrderID() uint64 {
	return c.orderID
}

func (c AddOrderItemCommand) ProductID() uint64 {
	return c.productID
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// Validate ensures the command was properly constructed.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}
