package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTotalsDriftQueryHandler compares the cached totals columns against
// the aggregated line items in SQL. Soft-deleted orders are skipped; their
// totals are frozen at deletion time.
type GetTotalsDriftQueryHandler struct {
	db *gorm.DB
}

// NewGetTotalsDriftQueryHandler creates a handler for totals audits.
func NewGetTotalsDriftQueryHandler(db *gorm.DB) GetTotalsDriftQueryHandler {
	return GetTotalsDriftQueryHandler{db: db}
}

// Handle returns the orders whose cached totals disagree with the sums of
// their items. An empty slice means every order is consistent.
func (h GetTotalsDriftQueryHandler) Handle(
	ctx context.Context,
	query GetTotalsDriftQuery,
) ([]TotalsDriftResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drifts := make([]TotalsDriftResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.num_products,
			COALESCE(SUM(i.quantity), 0) AS actual_num_products,
			o.final_price,
			COALESCE(SUM(i.total_price), 0) AS actual_final_price
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.is_deleted = false
		GROUP BY o.id, o.num_products, o.final_price
		HAVING
			o.num_products != COALESCE(SUM(i.quantity), 0)
			OR o.final_price != COALESCE(SUM(i.total_price), 0)
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var drift TotalsDriftResponse
		var cachedPrice, actualPrice decimal.Decimal

		err = rows.Scan(
			&drift.OrderID,
			&drift.CachedNumProducts,
			&drift.ActualNumProducts,
			&cachedPrice,
			&actualPrice,
		)
		if err != nil {
			return nil, err
		}

		if drift.CachedFinalPrice, err = kernel.NewPrice(cachedPrice); err != nil {
			return nil, err
		}
		if drift.ActualFinalPrice, err = kernel.NewPrice(actualPrice); err != nil {
			return nil, err
		}

		drifts = append(drifts, drift)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drifts, nil
}
