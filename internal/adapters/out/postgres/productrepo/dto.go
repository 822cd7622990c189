// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence. It implements the repository pattern for
// the product aggregate, converting between domain entities and database
// rows.
package productrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// Soft delete is an explicit flag filtered on every read, not a physical
// removal, so historical order items keep a valid product reference.
type ProductDTO struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(100);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsDeleted bool            `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID(),
		Name:      p.Name(),
		UnitPrice: p.UnitPrice().Amount(),
		IsDeleted: p.IsDeleted(),
	}
}

// toDomain converts a database row to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(dto.ID, dto.Name, unitPrice, dto.IsDeleted)
}
