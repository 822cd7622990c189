package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"delete product command must be created via NewDeleteProductCommand")

// DeleteProductCommand soft-deletes a catalog product. Existing order
// lines keep their price snapshots; the product just stops being
// available for new additions.
type DeleteProductCommand struct {
	productID uint64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a validated product deletion command.
func NewDeleteProductCommand(productID uint64) (DeleteProductCommand, error) {
	if productID == 0 {
		return DeleteProductCommand{}, errs.NewValueIsRequiredError("productID")
	}

	return DeleteProductCommand{
		productID: productID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) ProductID() uint64 {
	return c.productID
}

// Validate ensures the command was properly constructed.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}
