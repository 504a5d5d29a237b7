package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMethodIsNotConstructed is returned when a Method instance was not created
// through the NewMethod factory method.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod constructor")

// ProviderSelectors names the pluggable providers a method is wired to.
// An empty selector means "no provider registered" and triggers the default
// fallback policy during resolution: availability defaults to true, price
// falls back to the stored default price and delivery time stays absent.
type ProviderSelectors struct {
	Availability string
	Price        string
	DeliveryTime string
}

// Method is a shipping method definition: identity, carrier, provider
// selectors, tax rate and active flag. Methods are durable reference data
// managed by administrators, independent of any single order.
//
// When a method is snapshotted onto an order's shipment it additionally
// carries the price resolved for that order's store/currency/price-mode
// (storeCurrencyPrice) and, after persistence, the id of the shipping expense
// that prices it (expenseID).
type Method struct {
	id          int64
	name        string
	carrierID   int64
	carrierName string
	selectors   ProviderSelectors
	taxRate     decimal.Decimal
	isActive    bool

	storeCurrencyPrice *int64
	expenseID          *int64

	isConstructed bool
}

// NewMethod creates a Method definition with validation.
func NewMethod(
	id int64,
	name string,
	carrierID int64,
	carrierName string,
	selectors ProviderSelectors,
	taxRate decimal.Decimal,
	isActive bool,
) (*Method, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("method.id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("method.name")
	}
	if taxRate.IsNegative() {
		return nil, errs.NewValueIsInvalidError("method.taxRate")
	}

	return &Method{
		id:            id,
		name:          name,
		carrierID:     carrierID,
		carrierName:   carrierName,
		selectors:     selectors,
		taxRate:       taxRate,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate ensures the Method instance was properly constructed through NewMethod.
func (m *Method) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMethodIsNotConstructed
	}
	return nil
}

// ID returns the method's storage id.
func (m *Method) ID() int64 { return m.id }

// Name returns the method's display name.
func (m *Method) Name() string { return m.name }

// CarrierID returns the id of the carrier the method belongs to.
func (m *Method) CarrierID() int64 { return m.carrierID }

// CarrierName returns the snapshotted carrier display name.
func (m *Method) CarrierName() string { return m.carrierName }

// Selectors returns the provider selectors the method is wired to.
func (m *Method) Selectors() ProviderSelectors { return m.selectors }

// TaxRate returns the method's effective tax rate in percent.
func (m *Method) TaxRate() decimal.Decimal { return m.taxRate }

// IsActive reports whether the method is offered to customers.
func (m *Method) IsActive() bool { return m.isActive }

// StoreCurrencyPrice returns the price resolved for a specific
// store/currency/price-mode, or nil when the method has not been priced.
func (m *Method) StoreCurrencyPrice() *int64 { return m.storeCurrencyPrice }

// SetStoreCurrencyPrice records the resolved price on this method snapshot.
func (m *Method) SetStoreCurrencyPrice(price int64) {
	m.storeCurrencyPrice = &price
}

// ExpenseID returns the id of the shipping expense pricing this method
// snapshot, or nil when no expense has been persisted for it.
func (m *Method) ExpenseID() *int64 { return m.expenseID }

// SetExpenseID links the persisted shipping expense to this method snapshot.
func (m *Method) SetExpenseID(id int64) {
	m.expenseID = &id
}
