package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The aggregate is persisted across two tables (orders, order_items); every
// write method keeps them consistent within the caller's transaction: the
// order row with its cached totals, the live item rows, and the deletion of
// removed item rows all land together.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and assigns the generated
// identities back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	// Create backfills child keys in slice order, mirroring fromDomain.
	for idx, item := range aggregate.Items() {
		if item.ID() == 0 {
			if err := item.AssignID(dto.Items[idx].ID); err != nil {
				return err
			}
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order aggregate: order fields and cached totals,
// inserts for new items, updates for changed items, and deletes for item
// rows removed from the aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("order_number", "date", "status", "num_products", "final_price", "is_deleted").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	for _, item := range aggregate.Items() {
		itemDTO := fromDomainItem(aggregate.ID(), item)
		if item.ID() == 0 {
			if err := db.Create(&itemDTO).Error; err != nil {
				return err
			}
			if err := item.AssignID(itemDTO.ID); err != nil {
				return err
			}
			continue
		}

		itemResult := db.Model(&ItemDTO{}).
			Where("id = ? AND order_id = ?", itemDTO.ID, itemDTO.OrderID).
			Select("quantity", "total_price").
			Updates(&itemDTO)
		if itemResult.Error != nil {
			return itemResult.Error
		}
		if itemResult.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order item", itemDTO.ID)
		}
	}

	if removed := aggregate.RemovedItemIDs(); len(removed) > 0 {
		err := db.Where("id IN ? AND order_id = ?", removed, aggregate.ID()).
			Delete(&ItemDTO{}).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an active order with its line items. Soft-deleted orders
// are reported as not found. Within a transaction the order row is locked
// FOR UPDATE, so concurrent mutations of the same order serialize and the
// totals recalculation always reads the item set it just wrote.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&dto, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
