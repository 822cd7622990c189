// Package order provides the Order aggregate root and its line items,
// together with the lifecycle state machine and the totals recalculation
// that keep an order's denormalized summary consistent.
//
// The package includes:
//   - Order: the aggregate root owning a collection of Items
//   - Item: a line item with an immutable unit-price snapshot
//   - Status: the lifecycle state machine (Pending, InProgress, Completed)
//   - CalculateTotals: the pure recalculation of the cached summary
//
// Key business rules:
//   - An order's cached totals always equal the aggregate of its live items
//   - Adding a product already on the order merges quantities into one item
//   - Unit prices are snapshotted at first insertion and never refreshed
//   - A Completed order rejects every mutation, including its own deletion
//   - Soft delete hides an order from all reads without erasing its items
//
// All mutations go through the Order aggregate so the guard checks and the
// totals recalculation cannot be bypassed.
package order
