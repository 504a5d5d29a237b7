package shipmentrepo

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// FindByOrder retrieves all shipments of an order in id order, with method
// and address reconstructed and the shipping expense link preserved.
func (r *GormShipmentRepository) FindByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var rows []shipmentRow
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Select(`sales_shipments.*,
			m.name AS method_name,
			m.carrier_id AS method_carrier_id,
			m.availability_selector,
			m.price_selector,
			m.delivery_time_selector,
			m.tax_rate,
			m.is_active AS method_is_active`).
		Joins("LEFT JOIN shipment_methods m ON m.id = sales_shipments.method_id").
		Where("sales_shipments.order_id = ?", orderID.Bytes()).
		Order("sales_shipments.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	expenseIDs, err := r.shippingExpenseIDs(ctx, orderID)
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(rows))
	for _, row := range rows {
		s, convErr := toDomain(row, expenseIDs)
		if convErr != nil {
			return nil, convErr
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// ItemIDsByShipment retrieves which item ids each shipment of the order owns.
func (r *GormShipmentRepository) ItemIDsByShipment(ctx context.Context, orderID kernel.UUID) (map[int64][]int64, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var items []ItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND shipment_id IS NOT NULL", orderID.Bytes()).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]int64, len(items))
	for _, item := range items {
		result[*item.ShipmentID] = append(result[*item.ShipmentID], item.ID)
	}

	return result, nil
}

// Save inserts the shipment when it has no id yet, otherwise updates the
// existing row. The assigned id is written back onto the shipment.
func (r *GormShipmentRepository) Save(ctx context.Context, orderID kernel.UUID, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderID, s)

	if s.ID() == nil {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		s.SetID(dto.ID)
	} else {
		result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}

	r.tracker.TrackAggregate(orderID, s)
	return nil
}

// SaveExpense inserts or updates an expense line. The assigned id is written
// back onto the expense.
func (r *GormShipmentRepository) SaveExpense(ctx context.Context, orderID kernel.UUID, e *shipment.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := fromDomainExpense(orderID, e)

	if e.ID() == nil {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		e.SetID(dto.ID)
		return nil
	}

	result := r.db.WithContext(ctx).Model(&ExpenseDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteExpense removes an expense row.
func (r *GormShipmentRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	return r.db.WithContext(ctx).Delete(&ExpenseDTO{}, "id = ?", expenseID).Error
}

// UpdateItemShipment points an order item at its owning shipment.
func (r *GormShipmentRepository) UpdateItemShipment(ctx context.Context, itemID, shipmentID int64) error {
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", itemID).
		Update("shipment_id", shipmentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// shippingExpenseIDs maps shipment ids to the shipping expense pricing them.
func (r *GormShipmentRepository) shippingExpenseIDs(ctx context.Context, orderID kernel.UUID) (map[int64]int64, error) {
	var expenses []ExpenseDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND type = ? AND shipment_id IS NOT NULL", orderID.Bytes(), shipment.ExpenseTypeShipment).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	result := make(map[int64]int64, len(expenses))
	for _, e := range expenses {
		result[*e.ShipmentID] = e.ID
	}

	return result, nil
}
