package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items. Item rows
// carry the product name resolved at read time; a product that no longer
// exists reads as "Unknown".
type GetOrderQuery struct {
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by id.
func NewGetOrderQuery(orderID uint64) (GetOrderQuery, error) {
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) OrderID() uint64 {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderDetailsResponse is a full order view: header, cached totals and
// the line items.
type OrderDetailsResponse struct {
	ID          uint64
	OrderNumber string
	Date        time.Time
	Status      order.Status
	NumProducts int
	FinalPrice  kernel.Price
	Items       []OrderItemResponse
}

// OrderItemResponse is one line of an order view. UnitPrice is the
// snapshot taken when the item was added, not the current catalog price.
type OrderItemResponse struct {
	ID          uint64
	ProductID   uint64
	ProductName string
	Quantity    int
	UnitPrice   kernel.Price
	TotalPrice  kernel.Price
}
