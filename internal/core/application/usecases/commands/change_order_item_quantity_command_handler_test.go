package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoreOrderWithItem rebuilds an order holding a single persisted line:
// item 5, product 7, 2 units at 10.00.
func restoreOrderWithItem(t *testing.T, id uint64) *order.Order {
	t.Helper()
	unitPrice, err := kernel.NewPriceFromString("10.00")
	require.NoError(t, err)
	item, err := order.RestoreItem(5, 7, unitPrice, 2)
	require.NoError(t, err)
	total, err := kernel.NewPriceFromString("20.00")
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "ORD-100", time.Now(), order.Pending, 2, total, false, []*order.Item{item})
	require.NoError(t, err)
	return o
}

func TestChangeOrderItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderItemQuantityCommand(42, 5, 5)

	existing := restoreOrderWithItem(t, 42)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 5, updated.Totals().NumProducts)
	require.Equal(t, "50.00", updated.Totals().FinalPrice.String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderItemQuantityCommandHandler_Handle_InvalidQuantity(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderItemQuantityCommand(42, 5, 0)

	existing := restoreOrderWithItem(t, 42)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidQuantity)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderItemQuantityCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderItemQuantityCommand(42, 999, 5)

	existing := restoreOrderWithItem(t, 42)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRemoveOrderItemCommand(42, 5)

	existing := restoreOrderWithItem(t, 42)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Empty(t, updated.Items())
	require.Equal(t, 0, updated.Totals().NumProducts)
	require.Equal(t, "0.00", updated.Totals().FinalPrice.String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveOrderItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRemoveOrderItemCommand(42, 999)

	existing := restoreOrderWithItem(t, 42)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
