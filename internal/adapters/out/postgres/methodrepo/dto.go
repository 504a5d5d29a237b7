// Package methodrepo provides data transfer objects and mapping functions for
// shipping method reference data. This package implements the repository
// pattern for carriers, methods, stored default prices and currencies.
package methodrepo

import (
	"shipping/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// CarrierDTO represents the database structure for shipping carriers.
type CarrierDTO struct {
	ID       int64 `gorm:"primaryKey"`
	Name     string
	IsActive bool
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "shipment_carriers"
}

// MethodDTO represents the database structure for shipping method definitions.
// Provider selectors are stored as plain strings naming the registered
// providers; empty selectors mean the default fallback policy applies.
type MethodDTO struct {
	ID                   int64 `gorm:"primaryKey"`
	Name                 string
	CarrierID            int64 `gorm:"index"`
	AvailabilitySelector string
	PriceSelector        string
	DeliveryTimeSelector string
	TaxRate              decimal.Decimal `gorm:"type:numeric(8,2)"`
	IsActive             bool
}

// TableName specifies the database table name for method entities.
func (MethodDTO) TableName() string {
	return "shipment_methods"
}

// MethodPriceDTO represents a stored default price of a method for one
// store/currency combination. Price columns are minor units; NULL means the
// merchant does not maintain that mode.
type MethodPriceDTO struct {
	ID         int64 `gorm:"primaryKey"`
	MethodID   int64 `gorm:"index:idx_method_store_currency,unique"`
	StoreID    int64 `gorm:"index:idx_method_store_currency,unique"`
	CurrencyID int64 `gorm:"index:idx_method_store_currency,unique"`
	GrossPrice *int64
	NetPrice   *int64
}

// TableName specifies the database table name for method price entities.
func (MethodPriceDTO) TableName() string {
	return "shipment_method_prices"
}

// CurrencyDTO represents the database structure for currencies.
type CurrencyDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for currency entities.
func (CurrencyDTO) TableName() string {
	return "currencies"
}

// methodRow joins a method with its carrier for domain reconstruction.
type methodRow struct {
	MethodDTO
	CarrierName     string
	CarrierIsActive bool
}

// carrier reconstructs the carrier the method belongs to.
func (row methodRow) carrier() (shipment.Carrier, error) {
	return shipment.NewCarrier(row.CarrierID, row.CarrierName, row.CarrierIsActive)
}

// toDomain converts a joined method row to its domain representation,
// snapshotting the carrier's id and display name onto the method.
func toDomain(row methodRow, carrier shipment.Carrier) (*shipment.Method, error) {
	return shipment.NewMethod(
		row.ID,
		row.Name,
		carrier.ID(),
		carrier.Name(),
		shipment.ProviderSelectors{
			Availability: row.AvailabilitySelector,
			Price:        row.PriceSelector,
			DeliveryTime: row.DeliveryTimeSelector,
		},
		row.TaxRate,
		row.IsActive,
	)
}
