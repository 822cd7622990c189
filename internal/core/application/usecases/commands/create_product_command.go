package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"create product command must be created via NewCreateProductCommand")

// CreateProductCommand adds a product to the catalog.
type CreateProductCommand struct {
	name      string
	unitPrice kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a validated product creation command.
func NewCreateProductCommand(name string, unitPrice kernel.Price) (CreateProductCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	if err := unitPrice.Validate(); err != nil {
		return CreateProductCommand{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
	}

	return CreateProductCommand{
		name:      name,
		unitPrice: unitPrice,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) UnitPrice() kernel.Price {
	return c.unitPrice
}

// Validate ensures the command was properly constructed.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}
