package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"update product command must be created via NewUpdateProductCommand")

// UpdateProductCommand changes catalog product attributes. Nil fields are
// left unchanged. A price change never touches snapshots held by existing
// order lines.
type UpdateProductCommand struct {
	productID uint64
	name      *string
	unitPrice *kernel.Price

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a validated product update command.
func NewUpdateProductCommand(productID uint64, name *string, unitPrice *kernel.Price) (UpdateProductCommand, error) {
	if productID == 0 {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("productID")
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice != nil {
		if err := unitPrice.Validate(); err != nil {
			return UpdateProductCommand{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
		}
	}

	return UpdateProductCommand{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) ProductID() uint64 {
	return c.productID
}

// Name returns the new product name, or nil when the name is unchanged.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// UnitPrice returns the new unit price, or nil when the price is unchanged.
func (c UpdateProductCommand) UnitPrice() *kernel.Price {
	return c.unitPrice
}

// Validate ensures the command was properly constructed.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}
