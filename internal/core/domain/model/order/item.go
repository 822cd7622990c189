package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// Domain errors for line items.
var (
	// ErrInvalidQuantity is returned when a quantity below 1 is requested on
	// item creation or update. Setting quantity to 0 is rejected; removal has
	// its own explicit operation.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via the Order aggregate or RestoreItem")
)

// Item is a line item of an order: one product, a quantity and the unit
// price captured when the product was first added.
//
// The unit price is a snapshot: it never changes after creation, even if
// the catalog price of the product is later updated. The total price is
// always quantity times that snapshot and is recomputed on every quantity
// change.
//
// Items are exclusively owned by their Order and only mutated through it,
// so the owning order can keep its cached totals in sync.
type Item struct {
	// id uniquely identifies the item row; 0 until persisted
	id uint64
	// productID references the catalog product by id only
	productID uint64
	// quantity is the number of units; always >= 1
	quantity int
	// unitPrice is the price snapshot taken at first insertion
	unitPrice kernel.Price
	// totalPrice is quantity * unitPrice
	totalPrice kernel.Price
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// newItem creates a fresh line item with a unit-price snapshot. Only the
// Order aggregate creates new items.
func newItem(productID uint64, unitPrice kernel.Price, quantity int) (*Item, error) {
	if productID == 0 {
		return nil, errs.NewValueIsRequiredError("productID")
	}
	if err := unitPrice.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return &Item{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: unitPrice.MultiplyByQuantity(quantity),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a line item from persistent storage.
// The stored total price is recomputed from the snapshot and quantity so a
// corrupted row cannot smuggle an inconsistent line total into the
// aggregate.
func RestoreItem(id uint64, productID uint64, unitPrice kernel.Price, quantity int) (*Item, error) {
	item, err := newItem(productID, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// AssignID sets the store-generated identity after the first insert.
func (i *Item) AssignID(id uint64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}

	i.id = id
	return nil
}

// ID returns the item's identity (0 if not yet persisted).
func (i *Item) ID() uint64 {
	return i.id
}

// ProductID returns the referenced product's identity.
func (i *Item) ProductID() uint64 {
	return i.productID
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the immutable price snapshot.
func (i *Item) UnitPrice() kernel.Price {
	return i.unitPrice
}

// TotalPrice returns quantity * unit price snapshot.
func (i *Item) TotalPrice() kernel.Price {
	return i.totalPrice
}

// changeQuantity replaces the quantity and recomputes the line total from
// the existing snapshot. Quantities below 1 are rejected; the item stays
// unchanged on error.
func (i *Item) changeQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	i.quantity = quantity
	i.totalPrice = i.unitPrice.MultiplyByQuantity(quantity)
	return nil
}

// increaseQuantity adds delta units, keeping the original snapshot. Used
// when the same product is added to an order again.
func (i *Item) increaseQuantity(delta int) error {
	if delta < 1 {
		return ErrInvalidQuantity
	}
	return i.changeQuantity(i.quantity + delta)
}
