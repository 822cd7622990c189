package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreCatalogProduct(t *testing.T, id uint64, price string) *product.Product {
	t.Helper()
	unitPrice, err := kernel.NewPriceFromString(price)
	require.NoError(t, err)
	p, err := product.RestoreProduct(id, "Widget", unitPrice, false)
	require.NoError(t, err)
	return p
}

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderItemCommand(42, 7, 2)

	existing := restorePendingOrder(t, 42)
	catalogProduct := restoreCatalogProduct(t, 7, "10.00")

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, uint64(7)).Return(catalogProduct, nil).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, updated.Totals().NumProducts)
	require.Equal(t, "20.00", updated.Totals().FinalPrice.String())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderItemCommand(42, 99, 2)

	existing := restorePendingOrder(t, 42)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, uint64(99)).
			Return(nil, errs.NewObjectNotFoundError("productID", uint64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrProductNotFound)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_InvalidQuantity(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderItemCommand(42, 7, 0)

	existing := restorePendingOrder(t, 42)
	catalogProduct := restoreCatalogProduct(t, 7, "10.00")

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(42)).Return(existing, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, uint64(7)).Return(catalogProduct, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidQuantity)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_CompletedOrderIsLocked(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderItemCommand(42, 7, 2)

	completed, err := order.RestoreOrder(
		42, "ORD-100", time.Now(), order.Completed, 0, kernel.ZeroPrice(), false, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(42)).Return(completed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOrderIsLocked)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// A completed order rejects item additions before the catalog is consulted,
// so the lock error wins even when the referenced product does not exist.
func TestAddOrderItemCommandHandler_Handle_CompletedOrderLockedBeforeCatalogLookup(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderItemCommand(42, 99, 2)

	completed, err := order.RestoreOrder(
		42, "ORD-100", time.Now(), order.Completed, 0, kernel.ZeroPrice(), false, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(42)).Return(completed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOrderIsLocked)
	require.NotErrorIs(t, err, commands.ErrProductNotFound)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
