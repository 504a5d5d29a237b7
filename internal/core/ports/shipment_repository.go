package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments, their
// expenses and the shipment foreign keys on order items.
type ShipmentRepository interface {
	// FindByOrder retrieves all shipments persisted for an order,
	// in stable id order, with method and address loaded.
	FindByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error)

	// ItemIDsByShipment retrieves which item ids each shipment of the order
	// owns, keyed by shipment id.
	ItemIDsByShipment(ctx context.Context, orderID kernel.UUID) (map[int64][]int64, error)

	// Save inserts the shipment when it has no id yet, otherwise updates it.
	// The assigned storage id is written back onto the shipment.
	Save(ctx context.Context, orderID kernel.UUID, s *shipment.Shipment) error

	// SaveExpense inserts or updates the shipping expense for an order.
	// The assigned storage id is written back onto the expense.
	SaveExpense(ctx context.Context, orderID kernel.UUID, e *shipment.Expense) error

	// DeleteExpense removes an expense row.
	DeleteExpense(ctx context.Context, expenseID int64) error

	// UpdateItemShipment points an order item at its owning shipment.
	UpdateItemShipment(ctx context.Context, itemID, shipmentID int64) error
}
