package product

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when creating or renaming a product with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrIDAlreadyAssigned is returned when the store tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("product already has an identity")
)

// Product represents a catalog entry. It is an aggregate root with a stable
// integer identity, a display name and a unit price.
//
// Identity is assigned by the store on first persistence: a Product created
// through NewProduct carries id 0 until the repository calls AssignID with
// the generated key. Restored products already carry their identity.
type Product struct {
	// id uniquely identifies the product; 0 until persisted
	id uint64
	// name is the display name shown on catalog listings and order items
	name string
	// unitPrice is the current catalog price
	unitPrice kernel.Price
	// isDeleted hides the product from catalog lookups without erasing it
	isDeleted bool
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new catalog product with validation.
// The product starts visible (not soft-deleted) and without an identity;
// the store assigns one on first save.
//
// Parameters:
//   - name: display name (must be non-empty)
//   - unitPrice: catalog price (must be a constructed, non-negative Price)
//
// Returns the product, or a validation error if any parameter is invalid.
func NewProduct(name string, unitPrice kernel.Price) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage, including
// its identity and soft-delete state. The restored product behaves
// identically to one created through normal domain operations.
func RestoreProduct(id uint64, name string, unitPrice kernel.Price, isDeleted bool) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	p.id = id
	p.isDeleted = isDeleted
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// AssignID sets the store-generated identity after the first insert.
// Returns ErrIDAlreadyAssigned if the product already has one.
func (p *Product) AssignID(id uint64) error {
	if p.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}

	p.id = id
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id != 0 && p.id == other.id
}

// ID returns the product's identity (0 if not yet persisted).
func (p *Product) ID() uint64 {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price.
func (p *Product) UnitPrice() kernel.Price {
	return p.unitPrice
}

// IsDeleted reports whether the product is soft-deleted.
func (p *Product) IsDeleted() bool {
	return p.isDeleted
}

// Rename changes the display name. The name must be non-empty.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangePrice changes the catalog price. Existing order items keep the
// snapshot they were created with; only future additions see the new price.
func (p *Product) ChangePrice(unitPrice kernel.Price) error {
	return p.setUnitPrice(unitPrice)
}

// MarkDeleted soft-deletes the product. Idempotent.
func (p *Product) MarkDeleted() {
	p.isDeleted = true
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	p.unitPrice = unitPrice
	return nil
}
