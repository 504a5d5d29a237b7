package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ExpenseTypeShipment tags expenses that price a shipment.
const ExpenseTypeShipment = "SHIPMENT_EXPENSE_TYPE"

// ErrExpenseIsNotConstructed is returned when an Expense instance was not
// created through the NewShipmentExpense factory method.
var ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewShipmentExpense constructor")

// Expense is a cost line on an order. A shipping expense is distinguished by
// its type tag and carries a back-reference to the shipment it prices.
//
// Unit prices are stored in minor currency units. Which fields are populated
// depends on the order's price mode: net mode zeroes the gross and
// to-pay-aggregation fields, gross mode mirrors that.
type Expense struct {
	id          *int64
	expenseType string
	name        string
	quantity    int
	taxRate     decimal.Decimal

	unitPrice                 int64
	unitGrossPrice            int64
	unitNetPrice              int64
	unitPriceToPayAggregation int64
	sumPrice                  int64
	sumGrossPrice             int64
	sumNetPrice               int64

	shipment *Shipment

	isConstructed bool
}

// NewShipmentExpense creates a shipping expense for the given shipment.
// The name is the display name of the priced method; quantity is fixed at 1
// (one shipping line per shipment).
func NewShipmentExpense(name string, taxRate decimal.Decimal, shipment *Shipment) (*Expense, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("expense.name")
	}
	if shipment == nil {
		return nil, errs.NewValueIsRequiredError("expense.shipment")
	}

	return &Expense{
		expenseType:   ExpenseTypeShipment,
		name:          name,
		quantity:      1,
		taxRate:       taxRate,
		shipment:      shipment,
		isConstructed: true,
	}, nil
}

// RestoreExpense reconstructs a persisted expense of any type.
// Used by adapters when re-reading orders.
func RestoreExpense(id int64, expenseType, name string, quantity int, taxRate decimal.Decimal) (*Expense, error) {
	if expenseType == "" {
		return nil, errs.NewValueIsRequiredError("expense.type")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("expense.quantity")
	}

	return &Expense{
		id:            &id,
		expenseType:   expenseType,
		name:          name,
		quantity:      quantity,
		taxRate:       taxRate,
		isConstructed: true,
	}, nil
}

// Validate ensures the Expense instance was properly constructed.
func (e *Expense) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExpenseIsNotConstructed
	}
	return nil
}

// ID returns the persisted expense id, or nil before persistence.
func (e *Expense) ID() *int64 { return e.id }

// SetID records the storage id assigned on persistence.
func (e *Expense) SetID(id int64) {
	e.id = &id
}

// Type returns the expense type tag.
func (e *Expense) Type() string { return e.expenseType }

// IsShipmentExpense reports whether this expense prices a shipment.
func (e *Expense) IsShipmentExpense() bool {
	return e.expenseType == ExpenseTypeShipment
}

// Name returns the expense display name.
func (e *Expense) Name() string { return e.name }

// Quantity returns the billed quantity.
func (e *Expense) Quantity() int { return e.quantity }

// TaxRate returns the applied tax rate in percent.
func (e *Expense) TaxRate() decimal.Decimal { return e.taxRate }

// Shipment returns the shipment this expense prices, or nil for non-shipping
// expenses and for shipping expenses whose shipment could not be linked.
func (e *Expense) Shipment() *Shipment { return e.shipment }

// SetShipment links the expense to the shipment it prices.
func (e *Expense) SetShipment(s *Shipment) {
	e.shipment = s
}

// UnitPrice returns the effective unit price for the order's price mode.
func (e *Expense) UnitPrice() int64 { return e.unitPrice }

// UnitGrossPrice returns the tax-inclusive unit price, zero in net mode.
func (e *Expense) UnitGrossPrice() int64 { return e.unitGrossPrice }

// UnitNetPrice returns the tax-exclusive unit price, zero in gross mode.
func (e *Expense) UnitNetPrice() int64 { return e.unitNetPrice }

// UnitPriceToPayAggregation returns the aggregated to-pay unit price.
// It is reset when a price is applied and recomputed by downstream
// calculation, which is outside this module.
func (e *Expense) UnitPriceToPayAggregation() int64 { return e.unitPriceToPayAggregation }

// SumPrice returns quantity * unit price after SanitizeSumValues.
func (e *Expense) SumPrice() int64 { return e.sumPrice }

// SumGrossPrice returns quantity * unit gross price after SanitizeSumValues.
func (e *Expense) SumGrossPrice() int64 { return e.sumGrossPrice }

// SumNetPrice returns quantity * unit net price after SanitizeSumValues.
func (e *Expense) SumNetPrice() int64 { return e.sumNetPrice }

// SetPrice applies a resolved price according to the price mode.
// Net mode zeroes the gross and aggregation fields and sets unit price =
// net price; gross mode is the mirror.
func (e *Expense) SetPrice(price int64, mode PriceMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	e.unitPriceToPayAggregation = 0
	e.unitPrice = price

	if mode == PriceModeNet {
		e.unitGrossPrice = 0
		e.unitNetPrice = price
		return nil
	}

	e.unitNetPrice = 0
	e.unitGrossPrice = price
	return nil
}

// SanitizeSumValues derives the sum fields from the unit fields and quantity.
func (e *Expense) SanitizeSumValues() {
	qty := int64(e.quantity)
	e.sumPrice = e.unitPrice * qty
	e.sumGrossPrice = e.unitGrossPrice * qty
	e.sumNetPrice = e.unitNetPrice * qty
}
