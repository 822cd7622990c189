// Package product provides the catalog side of the domain: products with a
// name, a unit price and a soft-delete flag.
//
// Products are never physically removed. Deleting a product marks it
// invisible to catalog lookups, which keeps historical order items valid:
// an item's unit-price snapshot was copied from the product at the moment
// the item was added and never changes afterwards, so a retired product can
// still be displayed on old orders.
//
// Key business rules:
//   - Name must be non-empty
//   - Unit price is a non-negative fixed-point amount (kernel.Price)
//   - Soft-deleted products cannot be added to order items
package product
