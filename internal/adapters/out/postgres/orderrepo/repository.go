package orderrepo

import (
	"context"
	"errors"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, reconciling its line rows: lines removed
// from the aggregate are deleted, the rest are upserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Year", "SequenceNumber", "Suffix", "Code", "Status",
			"FromWarehouse", "ToWarehouse", "RecipientEmail",
			"SentAt", "ClosedAt", "ShippedAt").
		Updates(&dto)
	if result.Error != nil {
		return translateDuplicate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	keptIDs := make([]any, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		keptIDs = append(keptIDs, line.ID)
	}

	orphans := db.Where("order_id = ?", dto.ID)
	if len(keptIDs) > 0 {
		orphans = orphans.Where("id NOT IN ?", keptIDs)
	}
	if err := orphans.Delete(&LineDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Lines) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&dto.Lines).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLineID retrieves the order owning the given line.
func (r *GormOrderRepository) GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.Order, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}

	var lineDTO LineDTO
	err := r.db.WithContext(ctx).First(&lineDTO, "id = ?", lineID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line", lineID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(lineDTO.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

// GetByFamily retrieves the sibling with the exact (year, sequence, suffix) key.
func (r *GormOrderRepository) GetByFamily(ctx context.Context, year, sequence, suffix int) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").
		First(&dto, "year = ? AND sequence_number = ? AND suffix = ?", year, sequence, suffix).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order family", order.FormatCode(year, sequence, suffix))
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextSequenceNumber allocates max(sequence)+1 for the year inside the
// current transaction.
func (r *GormOrderRepository) NextSequenceNumber(ctx context.Context, year int) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(sequence_number), 0) + 1
		FROM orders
		WHERE year = ?
	`, year).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

// SiblingSuffixes returns the suffixes in use within a family.
func (r *GormOrderRepository) SiblingSuffixes(ctx context.Context, year, sequence int) ([]int, error) {
	suffixes := make([]int, 0)
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("year = ? AND sequence_number = ?", year, sequence).
		Order("suffix").
		Pluck("suffix", &suffixes).Error
	if err != nil {
		return nil, err
	}

	return suffixes, nil
}

// CodeInUse reports whether another order already holds the given code.
func (r *GormOrderRepository) CodeInUse(ctx context.Context, code string, excludeID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("code = ? AND id != ?", code, excludeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes an order and its lines.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&LineDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetStaleDrafts retrieves Draft orders created before the given instant.
func (r *GormOrderRepository) GetStaleDrafts(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("status = ? AND created_at < ?", int(order.Draft), before).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// translateDuplicate maps unique-constraint violations on the family index
// and the code column to the retryable conflict error.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause("order number or code already taken", err)
	}
	return err
}
