package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// ErrProductNotFound is returned when the product referenced by an item
// command does not exist or has been deleted from the catalog.
var ErrProductNotFound = errors.New("product not found")

// AddOrderItemCommandHandler adds a product line to an order. The product
// price is read and snapshotted inside the same transaction that mutates
// the order, so catalog price changes cannot race the addition.
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the product to the order and returns the updated aggregate.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Reject deleted and completed orders before touching the catalog, so
	// a locked order never surfaces a product lookup failure instead.
	if err = aggregate.CheckCanModify("add item"); err != nil {
		return nil, err
	}

	catalogProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	if _, err = aggregate.AddItem(catalogProduct, cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
