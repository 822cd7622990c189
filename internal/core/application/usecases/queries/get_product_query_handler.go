package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductQueryHandler reads one catalog product.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns the product, or ErrObjectNotFound when it does not exist
// or is soft-deleted.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var resp ProductResponse
	var unitPrice decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit_price
		FROM products
		WHERE id = ? AND is_deleted = false
	`, query.ProductID()).Row()

	if err := row.Scan(&resp.ID, &resp.Name, &unitPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
		}

		return ProductResponse{}, err
	}

	price, err := kernel.NewPrice(unitPrice)
	if err != nil {
		return ProductResponse{}, err
	}

	resp.UnitPrice = price
	return resp, nil
}
