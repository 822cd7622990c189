package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeProduct(t *testing.T, id uint64, price string) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Product", mustPrice(t, price), false)
	require.NoError(t, err)
	return p
}

func deletedProduct(t *testing.T, id uint64, price string) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Product", mustPrice(t, price), true)
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order", func(t *testing.T) {
		// Given
		date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		// When
		o, err := order.NewOrder("ORD-100", date)

		// Then
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-100", o.Number())
		assert.Equal(t, date, o.Date())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.NumProducts())
		assert.Equal(t, "0.00", o.FinalPrice().String())
		assert.False(t, o.IsDeleted())
		assert.Empty(t, o.Items())
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		before := time.Now()
		o, err := order.NewOrder("ORD-100", time.Time{})
		require.NoError(t, err)
		assert.False(t, o.Date().Before(before))
	})

	t.Run("empty_number_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder("", time.Now())
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.Error(t, o.Validate())
	})

	t.Run("nil_fails_validation", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		// Given
		item, err := order.RestoreItem(1, 10, mustPrice(t, "10.00"), 2)
		require.NoError(t, err)

		// When
		o, err := order.RestoreOrder(
			5, "ORD-002", time.Now(), order.InProgress,
			2, mustPrice(t, "20.00"), false,
			[]*order.Item{item},
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, uint64(5), o.ID())
		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, 2, o.NumProducts())
		assert.Equal(t, "20.00", o.FinalPrice().String())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("cached_totals_are_restored_not_recomputed", func(t *testing.T) {
		// The store is the system of record for the summary; drift is
		// detected by the audit, not silently repaired on load.
		item, err := order.RestoreItem(1, 10, mustPrice(t, "10.00"), 2)
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			5, "ORD-002", time.Now(), order.Pending,
			7, mustPrice(t, "99.00"), false,
			[]*order.Item{item},
		)
		require.NoError(t, err)
		assert.Equal(t, 7, o.NumProducts())
		assert.Equal(t, "99.00", o.FinalPrice().String())
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			5, "ORD-002", time.Now(), order.Unknown,
			0, mustPrice(t, "0.00"), false, nil,
		)
		require.Error(t, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("first_addition_snapshots_catalog_price", func(t *testing.T) {
		// Given
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		productA := activeProduct(t, 10, "10.00")

		// When
		item, err := o.AddItem(productA, 2)

		// Then
		require.NoError(t, err)
		assert.Equal(t, uint64(10), item.ProductID())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "10.00", item.UnitPrice().String())
		assert.Equal(t, "20.00", item.TotalPrice().String())
		assert.Equal(t, 2, o.NumProducts())
		assert.Equal(t, "20.00", o.FinalPrice().String())
	})

	t.Run("same_product_twice_merges_into_one_item", func(t *testing.T) {
		// Given
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		productA := activeProduct(t, 10, "10.00")
		_, err = o.AddItem(productA, 2)
		require.NoError(t, err)

		// When
		item, err := o.AddItem(productA, 3)

		// Then
		require.NoError(t, err)
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, 5, item.Quantity())
		assert.Equal(t, "50.00", item.TotalPrice().String())
		assert.Equal(t, 5, o.NumProducts())
		assert.Equal(t, "50.00", o.FinalPrice().String())
	})

	t.Run("merge_keeps_the_original_snapshot", func(t *testing.T) {
		// Given an item added at 10.00 and a later catalog price change
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		productA := activeProduct(t, 10, "10.00")
		_, err = o.AddItem(productA, 1)
		require.NoError(t, err)
		require.NoError(t, productA.ChangePrice(mustPrice(t, "25.00")))

		// When the same product is added again
		item, err := o.AddItem(productA, 1)

		// Then the existing snapshot is used, not the live price
		require.NoError(t, err)
		assert.Equal(t, "10.00", item.UnitPrice().String())
		assert.Equal(t, "20.00", item.TotalPrice().String())
		assert.Equal(t, "20.00", o.FinalPrice().String())
	})

	t.Run("soft_deleted_product_is_rejected", func(t *testing.T) {
		// Given
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)

		// When
		_, err = o.AddItem(deletedProduct(t, 10, "10.00"), 1)

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 0, o.NumProducts())
	})

	t.Run("quantity_below_one_is_rejected", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)

		_, err = o.AddItem(activeProduct(t, 10, "10.00"), 0)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Empty(t, o.Items())
	})

	t.Run("distinct_products_get_distinct_items", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)

		_, err = o.AddItem(activeProduct(t, 10, "10.00"), 2)
		require.NoError(t, err)
		_, err = o.AddItem(activeProduct(t, 11, "5.50"), 1)
		require.NoError(t, err)

		assert.Len(t, o.Items(), 2)
		assert.Equal(t, 3, o.NumProducts())
		assert.Equal(t, "25.50", o.FinalPrice().String())
	})
}

func TestOrder_ChangeItemQuantity(t *testing.T) {
	t.Run("replaces_quantity_and_recomputes_totals", func(t *testing.T) {
		// Given
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		added, err := o.AddItem(activeProduct(t, 10, "10.00"), 5)
		require.NoError(t, err)
		require.NoError(t, added.AssignID(1))

		// When
		item, err := o.ChangeItemQuantity(1, 1)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity())
		assert.Equal(t, "10.00", item.TotalPrice().String())
		assert.Equal(t, 1, o.NumProducts())
		assert.Equal(t, "10.00", o.FinalPrice().String())
	})

	t.Run("zero_quantity_is_rejected_and_state_unchanged", func(t *testing.T) {
		// Given
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		added, err := o.AddItem(activeProduct(t, 10, "10.00"), 2)
		require.NoError(t, err)
		require.NoError(t, added.AssignID(1))

		// When
		_, err = o.ChangeItemQuantity(1, 0)

		// Then
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Equal(t, 2, added.Quantity())
		assert.Equal(t, 2, o.NumProducts())
		assert.Equal(t, "20.00", o.FinalPrice().String())
	})

	t.Run("missing_item_is_not_found", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)

		_, err = o.ChangeItemQuantity(99, 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("removes_item_and_recalculates", func(t *testing.T) {
		// Given
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		added, err := o.AddItem(activeProduct(t, 10, "10.00"), 2)
		require.NoError(t, err)
		require.NoError(t, added.AssignID(1))

		// When
		err = o.RemoveItem(1)

		// Then
		require.NoError(t, err)
		assert.Empty(t, o.Items())
		assert.Equal(t, 0, o.NumProducts())
		assert.Equal(t, "0.00", o.FinalPrice().String())
		assert.Equal(t, []uint64{1}, o.RemovedItemIDs())
	})

	t.Run("missing_item_is_not_found", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		require.ErrorIs(t, o.RemoveItem(99), errs.ErrObjectNotFound)
	})

	t.Run("readding_after_removal_takes_a_fresh_snapshot", func(t *testing.T) {
		// Given
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		productA := activeProduct(t, 10, "10.00")
		added, err := o.AddItem(productA, 1)
		require.NoError(t, err)
		require.NoError(t, added.AssignID(1))
		require.NoError(t, o.RemoveItem(1))
		require.NoError(t, productA.ChangePrice(mustPrice(t, "12.00")))

		// When
		item, err := o.AddItem(productA, 1)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "12.00", item.UnitPrice().String())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("pending_to_in_progress_and_back", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.InProgress))
		assert.Equal(t, order.InProgress, o.Status())

		require.NoError(t, o.ChangeStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("completion_locks_the_order", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(order.Completed))

		err = o.ChangeStatus(order.Pending)
		require.ErrorIs(t, err, errs.ErrOrderIsLocked)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_CompletedLockout(t *testing.T) {
	// Given a completed order with one item
	o, err := order.NewOrder("ORD-100", time.Now())
	require.NoError(t, err)
	added, err := o.AddItem(activeProduct(t, 10, "10.00"), 2)
	require.NoError(t, err)
	require.NoError(t, added.AssignID(1))
	require.NoError(t, o.ChangeStatus(order.Completed))

	t.Run("add_item_is_locked", func(t *testing.T) {
		_, err := o.AddItem(activeProduct(t, 11, "5.00"), 1)
		require.ErrorIs(t, err, errs.ErrOrderIsLocked)
	})

	t.Run("change_item_quantity_is_locked", func(t *testing.T) {
		_, err := o.ChangeItemQuantity(1, 3)
		require.ErrorIs(t, err, errs.ErrOrderIsLocked)
	})

	t.Run("remove_item_is_locked", func(t *testing.T) {
		require.ErrorIs(t, o.RemoveItem(1), errs.ErrOrderIsLocked)
	})

	t.Run("change_number_is_locked", func(t *testing.T) {
		require.ErrorIs(t, o.ChangeNumber("ORD-200"), errs.ErrOrderIsLocked)
	})

	t.Run("soft_delete_is_locked", func(t *testing.T) {
		require.ErrorIs(t, o.MarkDeleted(), errs.ErrOrderIsLocked)
		assert.False(t, o.IsDeleted())
	})

	t.Run("state_is_unchanged_by_rejected_calls", func(t *testing.T) {
		assert.Equal(t, "ORD-100", o.Number())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, 2, o.NumProducts())
		assert.Equal(t, "20.00", o.FinalPrice().String())
	})
}

func TestOrder_CheckCanModify(t *testing.T) {
	t.Run("live_pending_order_is_modifiable", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)

		require.NoError(t, o.CheckCanModify("add item"))
	})

	t.Run("completed_order_is_locked", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(order.Completed))

		require.ErrorIs(t, o.CheckCanModify("add item"), errs.ErrOrderIsLocked)
	})

	t.Run("deleted_order_is_not_found", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.MarkDeleted())

		err = o.CheckCanModify("add item")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.NotErrorIs(t, err, errs.ErrOrderIsLocked)
	})
}

func TestOrder_SoftDelete(t *testing.T) {
	t.Run("pending_order_can_be_deleted", func(t *testing.T) {
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)

		require.NoError(t, o.MarkDeleted())
		assert.True(t, o.IsDeleted())
	})

	t.Run("deleted_order_reports_not_found_not_locked", func(t *testing.T) {
		// Soft delete takes precedence over the completion check.
		o, err := order.NewOrder("ORD-100", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.MarkDeleted())

		_, err = o.AddItem(activeProduct(t, 10, "10.00"), 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.NotErrorIs(t, err, errs.ErrOrderIsLocked)
	})
}

// TestOrder_FullLifecycle walks the full lifecycle: create, add, merge,
// update, remove, complete, reject.
func TestOrder_FullLifecycle(t *testing.T) {
	// create order "ORD-100" -> totals (0, 0.00), status Pending
	o, err := order.NewOrder("ORD-100", time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, 0, o.NumProducts())
	assert.Equal(t, "0.00", o.FinalPrice().String())

	// add product A (10.00) qty 2 -> item total 20.00, order totals (2, 20.00)
	productA := activeProduct(t, 1, "10.00")
	item, err := o.AddItem(productA, 2)
	require.NoError(t, err)
	require.NoError(t, item.AssignID(1))
	assert.Equal(t, "20.00", item.TotalPrice().String())
	assert.Equal(t, 2, o.NumProducts())
	assert.Equal(t, "20.00", o.FinalPrice().String())

	// add product A again qty 3 -> single item qty 5, order totals (5, 50.00)
	item, err = o.AddItem(productA, 3)
	require.NoError(t, err)
	assert.Len(t, o.Items(), 1)
	assert.Equal(t, 5, item.Quantity())
	assert.Equal(t, "50.00", item.TotalPrice().String())
	assert.Equal(t, 5, o.NumProducts())
	assert.Equal(t, "50.00", o.FinalPrice().String())

	// update item quantity to 1 -> item total 10.00, order totals (1, 10.00)
	item, err = o.ChangeItemQuantity(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "10.00", item.TotalPrice().String())
	assert.Equal(t, 1, o.NumProducts())
	assert.Equal(t, "10.00", o.FinalPrice().String())

	// remove item -> order totals (0, 0.00)
	require.NoError(t, o.RemoveItem(1))
	assert.Equal(t, 0, o.NumProducts())
	assert.Equal(t, "0.00", o.FinalPrice().String())

	// set status Completed; adding product B fails locked, totals unchanged
	require.NoError(t, o.ChangeStatus(order.Completed))
	_, err = o.AddItem(activeProduct(t, 2, "7.00"), 1)
	require.ErrorIs(t, err, errs.ErrOrderIsLocked)
	assert.Equal(t, 0, o.NumProducts())
	assert.Equal(t, "0.00", o.FinalPrice().String())
}
