// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between the aggregate (order plus line
// items) and its relational representation.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The cached totals (num_products, final_price) are stored
// columns written together with the item rows in the same transaction.
type OrderDTO struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	OrderNumber string          `gorm:"type:varchar(50);not null"`
	Date        time.Time       `gorm:"not null"`
	NumProducts int             `gorm:"not null;default:0"`
	FinalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Status      int             `gorm:"not null;index"`
	IsDeleted   bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting line items.
// Links to the owning order via foreign key (cascade on delete) and
// references the product by id only.
type ItemDTO struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID    uint64          `gorm:"not null;index"`
	ProductID  uint64          `gorm:"not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for line item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// including all live line items.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, fromDomainItem(o.ID(), item))
	}

	return OrderDTO{
		ID:          o.ID(),
		OrderNumber: o.Number(),
		Date:        o.Date(),
		NumProducts: o.NumProducts(),
		FinalPrice:  o.FinalPrice().Amount(),
		Status:      int(o.Status()),
		IsDeleted:   o.IsDeleted(),
		Items:       items,
	}
}

// fromDomainItem converts a line item to its database representation.
func fromDomainItem(orderID uint64, item *order.Item) ItemDTO {
	return ItemDTO{
		ID:         item.ID(),
		OrderID:    orderID,
		ProductID:  item.ProductID(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice().Amount(),
		TotalPrice: item.TotalPrice().Amount(),
	}
}

// toDomain converts a database row set to an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	finalPrice, err := kernel.NewPrice(dto.FinalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.OrderNumber,
		dto.Date,
		order.Status(dto.Status),
		dto.NumProducts,
		finalPrice,
		dto.IsDeleted,
		items,
	)
}

// itemToDomain converts a line item row to a domain entity.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(dto.ID, dto.ProductID, unitPrice, dto.Quantity)
}
