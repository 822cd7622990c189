package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderNumberIsRequired is returned when creating or updating an order with an empty number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for an order and its line items.
//
// The aggregate maintains these invariants:
//   - cached NumProducts equals the sum of quantities of its live items
//   - cached FinalPrice equals the sum of its items' line totals
//   - at most one item per product; adding a product twice merges quantities
//   - a unit-price snapshot never changes after the item is first created
//   - once Completed, every mutation is rejected with an order-locked error
//   - a Completed order cannot be soft-deleted
//
// The cached totals are never set by callers: every item-mutating method
// ends by recomputing them through CalculateTotals, so the summary and the
// item collection change together or not at all.
type Order struct {
	// id uniquely identifies the order; 0 until persisted
	id uint64
	// number is the caller-supplied order number; not required unique
	number string
	// date is the order date, defaulted to creation time
	date time.Time
	// status is the current lifecycle state
	status Status
	// totals is the cached derived summary, owned by the aggregate
	totals Totals
	// isDeleted hides the order from all reads without erasing history
	isDeleted bool
	// items are the live line items, exclusively owned by this order
	items []*Item
	// removedItemIDs collects persisted item rows removed in this session,
	// for the store to delete on save
	removedItemIDs []uint64
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with zero items and zero
// totals. The order number must be non-empty. A zero date defaults to the
// current time.
func NewOrder(number string, date time.Time) (*Order, error) {
	o := &Order{
		status: Pending,
		totals: ZeroTotals(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := o.setNumber(number); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}
	o.date = date

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its cached totals, soft-delete flag and line items. The cached
// totals are restored as persisted, not recomputed: reads must be cheap and
// the store is the system of record for the summary.
func RestoreOrder(
	id uint64,
	number string,
	date time.Time,
	status Status,
	numProducts int,
	finalPrice kernel.Price,
	isDeleted bool,
	items []*Item,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		status.Validate(),
		finalPrice.Validate(),
		validateItems(items),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.date = date
	o.status = status
	o.totals = Totals{NumProducts: numProducts, FinalPrice: finalPrice}
	o.isDeleted = isDeleted
	o.items = items
	return o, nil
}

func validateItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignID sets the store-generated identity after the first insert.
func (o *Order) AssignID(id uint64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's identity (0 if not yet persisted).
func (o *Order) ID() uint64 {
	return o.id
}

// Number returns the caller-supplied order number.
func (o *Order) Number() string {
	return o.number
}

// Date returns the order date.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Totals returns the cached derived summary.
func (o *Order) Totals() Totals {
	return o.totals
}

// NumProducts returns the cached item count.
func (o *Order) NumProducts() int {
	return o.totals.NumProducts
}

// FinalPrice returns the cached total price.
func (o *Order) FinalPrice() kernel.Price {
	return o.totals.FinalPrice
}

// IsDeleted reports whether the order is soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.isDeleted
}

// Items returns the live line items. The returned slice is a copy; items
// themselves are only mutable through the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// RemovedItemIDs returns the ids of persisted item rows removed since the
// order was loaded. The store deletes these rows when saving the aggregate.
func (o *Order) RemovedItemIDs() []uint64 {
	ids := make([]uint64, len(o.removedItemIDs))
	copy(ids, o.removedItemIDs)
	return ids
}

// ItemByID returns the live item with the given id, or nil.
func (o *Order) ItemByID(itemID uint64) *Item {
	for _, item := range o.items {
		if item.ID() == itemID {
			return item
		}
	}
	return nil
}

// ItemByProduct returns the live item referencing the given product, or nil.
func (o *Order) ItemByProduct(productID uint64) *Item {
	for _, item := range o.items {
		if item.ProductID() == productID {
			return item
		}
	}
	return nil
}

// checkMutable is the guard consulted before every mutation. A soft-deleted
// order is reported absent (soft delete takes precedence over the
// completion lock); a completed order rejects the operation as locked.
func (o *Order) checkMutable(operation string) error {
	if o.isDeleted {
		return errs.NewObjectNotFoundError("order", o.id)
	}
	if err := o.status.CheckCanModify(); err != nil {
		return errs.NewOrderIsLockedErrorWithCause(o.id, operation, err)
	}
	return nil
}

// CheckCanModify reports whether the order currently accepts mutations,
// failing with the same not-found or order-locked error a mutating method
// would return for the given operation. Callers use it to reject a locked
// order before doing any work on the operation's behalf.
func (o *Order) CheckCanModify(operation string) error {
	return o.checkMutable(operation)
}

// ChangeNumber updates the order number. Rejected on completed orders.
func (o *Order) ChangeNumber(number string) error {
	if err := o.checkMutable("update order"); err != nil {
		return err
	}
	return o.setNumber(number)
}

// ChangeStatus transitions the order to the target status. Any transition
// between Pending and InProgress and into Completed is allowed; once
// Completed the order is locked and every transition - including to
// Completed itself - is rejected.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.checkMutable("update order status"); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// MarkDeleted soft-deletes the order. A completed order cannot be deleted;
// the lock blocks the delete itself.
func (o *Order) MarkDeleted() error {
	if err := o.checkMutable("soft delete"); err != nil {
		return err
	}

	o.isDeleted = true
	return nil
}

// AddItem adds quantity units of a product to the order.
//
// If a live item for the product already exists its quantity is increased
// and the line total recomputed from the existing unit-price snapshot - the
// price is fixed at first insertion and the catalog is not consulted again.
// Otherwise a new item is created snapshotting the product's current price.
//
// The product must be active: soft-deleted products cannot be added. The
// cached totals are recalculated before the method returns, so the item
// change and the summary stay consistent.
//
// Returns the affected item.
func (o *Order) AddItem(p *product.Product, quantity int) (*Item, error) {
	if err := o.checkMutable("add item"); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.IsDeleted() {
		return nil, errs.NewObjectNotFoundError("product", p.ID())
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	existing := o.ItemByProduct(p.ID())
	if existing != nil {
		if err := existing.increaseQuantity(quantity); err != nil {
			return nil, err
		}
		o.recalculate()
		return existing, nil
	}

	item, err := newItem(p.ID(), p.UnitPrice(), quantity)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.recalculate()
	return item, nil
}

// ChangeItemQuantity replaces an item's quantity and recomputes its line
// total from the unchanged snapshot. Quantities below 1 are rejected with
// ErrInvalidQuantity; removal must use RemoveItem, not a zero quantity.
//
// Returns the affected item.
func (o *Order) ChangeItemQuantity(itemID uint64, quantity int) (*Item, error) {
	if err := o.checkMutable("update item"); err != nil {
		return nil, err
	}

	item := o.ItemByID(itemID)
	if item == nil {
		return nil, errs.NewObjectNotFoundError("order item", itemID)
	}

	if err := item.changeQuantity(quantity); err != nil {
		return nil, err
	}

	o.recalculate()
	return item, nil
}

// RemoveItem deletes a line item from the order and refreshes the cached
// totals. The removal is permanent; re-adding the product later creates a
// fresh item with a fresh price snapshot.
func (o *Order) RemoveItem(itemID uint64) error {
	if err := o.checkMutable("remove item"); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.ID() == itemID {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			if itemID != 0 {
				o.removedItemIDs = append(o.removedItemIDs, itemID)
			}
			o.recalculate()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("order item", itemID)
}

// recalculate refreshes the cached totals from the live items. Called by
// every item-mutating method before it returns.
func (o *Order) recalculate() {
	o.totals = CalculateTotals(o.items)
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrOrderNumberIsRequired
	}
	o.number = number
	return nil
}
