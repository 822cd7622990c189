package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists live orders straight from the database.
// The cached totals columns let the listing skip the order_items table
// entirely.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns all non-deleted orders sorted by id.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			date,
			status,
			num_products,
			final_price
		FROM orders
		WHERE is_deleted = false
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderSummaryResponse
		var date time.Time
		var status int
		var finalPrice decimal.Decimal

		err = rows.Scan(
			&resp.ID,
			&resp.OrderNumber,
			&date,
			&status,
			&resp.NumProducts,
			&finalPrice,
		)
		if err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewPrice(finalPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		resp.Date = date
		resp.Status = order.Status(status)
		resp.FinalPrice = price
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
