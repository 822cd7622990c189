package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// ChangeOrderItemQuantityCommandHandler updates a line quantity and the
// cached order totals in one transaction.
type ChangeOrderItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderItemQuantityCommandHandler creates a handler for quantity changes.
func NewChangeOrderItemQuantityCommandHandler(uowFactory OrderUoWFactory) ChangeOrderItemQuantityCommandHandler {
	return ChangeOrderItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the new quantity and returns the updated aggregate.
func (h ChangeOrderItemQuantityCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderItemQuantityCommand,
) (*order.Order, error) {
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

	if _, err = aggregate.ChangeItemQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
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
