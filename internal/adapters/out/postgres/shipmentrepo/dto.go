// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for sales shipments, their expenses and the shipment foreign keys on order
// items.
package shipmentrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisted shipments.
// The destination address is denormalized onto the shipment row; an empty
// first address line means the shipment has no address.
type ShipmentDTO struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement"`
	OrderID               uuid.UUID `gorm:"type:uuid;index"`
	MethodID              *int64
	CarrierName           string
	RequestedDeliveryDate *string
	Address               AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "sales_shipments"
}

// AddressDTO represents the embedded destination address within the shipment table.
type AddressDTO struct {
	Line1       string
	Line2       string
	City        string
	Region      string
	ZipCode     string
	CountryCode string
}

// ExpenseDTO represents the database structure for order expense lines.
// Shipping expenses carry the id of the shipment they price.
type ExpenseDTO struct {
	ID                        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID                   uuid.UUID `gorm:"type:uuid;index"`
	Type                      string
	Name                      string
	Quantity                  int
	TaxRate                   decimal.Decimal `gorm:"type:numeric(8,2)"`
	UnitPrice                 int64
	UnitGrossPrice            int64
	UnitNetPrice              int64
	UnitPriceToPayAggregation int64
	SumPrice                  int64
	SumGrossPrice             int64
	SumNetPrice               int64
	ShipmentID                *int64 `gorm:"index"`
}

// TableName specifies the database table name for expense entities.
func (ExpenseDTO) TableName() string {
	return "sales_expenses"
}

// ItemDTO maps the columns of order items this repository touches: the
// primary key and the shipment foreign key. Items themselves are owned by
// the order management system.
type ItemDTO struct {
	ID         int64     `gorm:"primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID *int64    `gorm:"index"`
}

// TableName specifies the database table name for order item rows.
func (ItemDTO) TableName() string {
	return "sales_order_items"
}

// shipmentRow joins a shipment with its method definition for domain
// reconstruction. Method columns are NULL for shipments without a method.
type shipmentRow struct {
	ShipmentDTO
	MethodName           *string
	MethodCarrierID      *int64
	AvailabilitySelector *string
	PriceSelector        *string
	DeliveryTimeSelector *string
	TaxRate              *decimal.Decimal
	MethodIsActive       *bool
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(orderID kernel.UUID, s *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		OrderID:               orderID.Bytes(),
		CarrierName:           s.CarrierName(),
		RequestedDeliveryDate: s.RequestedDeliveryDate(),
	}
	if s.ID() != nil {
		dto.ID = *s.ID()
	}
	if s.Method() != nil {
		id := s.Method().ID()
		dto.MethodID = &id
	}
	if addr := s.ShippingAddress(); addr != nil {
		dto.Address = AddressDTO{
			Line1:       addr.Line1(),
			Line2:       addr.Line2(),
			City:        addr.City(),
			Region:      addr.Region(),
			ZipCode:     addr.ZipCode(),
			CountryCode: addr.CountryCode(),
		}
	}

	return dto
}

// toDomain converts a joined shipment row to its domain representation.
// expenseIDByShipment carries the shipping expense ids so the method snapshot
// keeps its expense link for hydration.
func toDomain(row shipmentRow, expenseIDByShipment map[int64]int64) (*shipment.Shipment, error) {
	var method *shipment.Method
	if row.MethodID != nil && row.MethodName != nil {
		m, err := shipment.NewMethod(
			*row.MethodID,
			*row.MethodName,
			derefOr(row.MethodCarrierID, 0),
			row.CarrierName,
			shipment.ProviderSelectors{
				Availability: derefOr(row.AvailabilitySelector, ""),
				Price:        derefOr(row.PriceSelector, ""),
				DeliveryTime: derefOr(row.DeliveryTimeSelector, ""),
			},
			derefOr(row.TaxRate, decimal.Zero),
			derefOr(row.MethodIsActive, false),
		)
		if err != nil {
			return nil, err
		}
		if expenseID, ok := expenseIDByShipment[row.ID]; ok {
			m.SetExpenseID(expenseID)
		}
		method = m
	}

	var address *shipment.Address
	if row.Address.Line1 != "" {
		addr, err := shipment.NewAddress(
			row.Address.Line1,
			row.Address.Line2,
			row.Address.City,
			row.Address.Region,
			row.Address.ZipCode,
			row.Address.CountryCode,
		)
		if err != nil {
			return nil, err
		}
		address = &addr
	}

	return shipment.RestoreShipment(row.ID, method, address, row.CarrierName, row.RequestedDeliveryDate), nil
}

// fromDomainExpense converts an expense line to its database representation.
func fromDomainExpense(orderID kernel.UUID, e *shipment.Expense) ExpenseDTO {
	dto := ExpenseDTO{
		OrderID:                   orderID.Bytes(),
		Type:                      e.Type(),
		Name:                      e.Name(),
		Quantity:                  e.Quantity(),
		TaxRate:                   e.TaxRate(),
		UnitPrice:                 e.UnitPrice(),
		UnitGrossPrice:            e.UnitGrossPrice(),
		UnitNetPrice:              e.UnitNetPrice(),
		UnitPriceToPayAggregation: e.UnitPriceToPayAggregation(),
		SumPrice:                  e.SumPrice(),
		SumGrossPrice:             e.SumGrossPrice(),
		SumNetPrice:               e.SumNetPrice(),
	}
	if e.ID() != nil {
		dto.ID = *e.ID()
	}
	if e.Shipment() != nil && e.Shipment().ID() != nil {
		dto.ShipmentID = e.Shipment().ID()
	}

	return dto
}

func derefOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
