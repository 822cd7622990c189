package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its items. Product names are
// resolved through a left join so an item whose product row was removed
// still renders, with the name falling back to "Unknown".
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its items, or ErrObjectNotFound when the
// order does not exist or is soft-deleted.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	var resp OrderDetailsResponse

	// Both reads run on one repeatable-read snapshot, so a concurrent item
	// mutation cannot land between them and make the cached totals disagree
	// with the item list.
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if resp, err = h.readOrder(tx, query.OrderID()); err != nil {
			return err
		}

		resp.Items, err = h.readItems(tx, query.OrderID())
		return err
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(tx *gorm.DB, orderID uint64) (OrderDetailsResponse, error) {
	var resp OrderDetailsResponse
	var date time.Time
	var status int
	var finalPrice decimal.Decimal

	row := tx.Raw(`
		SELECT
			id,
			order_number,
			date,
			status,
			num_products,
			final_price
		FROM orders
		WHERE id = ? AND is_deleted = false
	`, orderID).Row()

	err := row.Scan(
		&resp.ID,
		&resp.OrderNumber,
		&date,
		&status,
		&resp.NumProducts,
		&finalPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailsResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
		}

		return OrderDetailsResponse{}, err
	}

	price, err := kernel.NewPrice(finalPrice)
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	resp.Date = date
	resp.Status = order.Status(status)
	resp.FinalPrice = price
	return resp, nil
}

func (h GetOrderQueryHandler) readItems(tx *gorm.DB, orderID uint64) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := tx.Raw(`
		SELECT
			i.id,
			i.product_id,
			COALESCE(p.name, 'Unknown') AS product_name,
			i.quantity,
			i.unit_price,
			i.total_price
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var unitPrice, totalPrice decimal.Decimal

		err = rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&unitPrice,
			&totalPrice,
		)
		if err != nil {
			return nil, err
		}

		if item.UnitPrice, err = kernel.NewPrice(unitPrice); err != nil {
			return nil, err
		}
		if item.TotalPrice, err = kernel.NewPrice(totalPrice); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
