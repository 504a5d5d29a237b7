package order

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a placed order in the system. It is the aggregate root for
// shipment reconciliation: items, expenses and shipment groups hang off it,
// and the hydration service rebuilds the groups from persisted shipments.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order reference
//   - Must have a valid price mode
//   - Items travel in shipment groups; the legacy order-level shipment and
//     shipping address are kept only for records persisted before grouping
//   - Can only be created through NewOrder constructor
type Order struct {
	id           kernel.UUID
	orderRef     string
	storeID      int64
	currencyCode string
	priceMode    shipment.PriceMode

	items    []*shipment.Item
	expenses []*shipment.Expense
	groups   []*shipment.Group

	// Pre-grouping records carry one shipment and address on the order
	// itself instead of per item.
	legacyShipment        *shipment.Shipment
	legacyShippingAddress *shipment.Address

	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
func NewOrder(
	id kernel.UUID,
	orderRef string,
	storeID int64,
	currencyCode string,
	priceMode shipment.PriceMode,
	items []*shipment.Item,
) (*Order, error) {
	o := &Order{
		storeID:       storeID,
		items:         items,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderRef(orderRef),
		o.setCurrencyCode(currencyCode),
		o.setPriceMode(priceMode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderRef returns the human-readable order reference.
func (o *Order) OrderRef() string {
	return o.orderRef
}

// StoreID returns the id of the store the order was placed in.
func (o *Order) StoreID() int64 {
	return o.storeID
}

// CurrencyCode returns the ISO code of the order currency.
func (o *Order) CurrencyCode() string {
	return o.currencyCode
}

// PriceMode returns whether the order's prices are gross or net.
func (o *Order) PriceMode() shipment.PriceMode {
	return o.priceMode
}

// Items returns the order's line items.
func (o *Order) Items() []*shipment.Item {
	return o.items
}

// Expenses returns all expense lines of the order.
func (o *Order) Expenses() []*shipment.Expense {
	return o.expenses
}

// ShipmentExpenses returns only the expense lines that price a shipment.
func (o *Order) ShipmentExpenses() []*shipment.Expense {
	var result []*shipment.Expense
	for _, e := range o.expenses {
		if e.IsShipmentExpense() {
			result = append(result, e)
		}
	}
	return result
}

// AddExpense appends an expense line to the order.
func (o *Order) AddExpense(e *shipment.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	o.expenses = append(o.expenses, e)
	return nil
}

// SetExpenses replaces the order's expense lines, e.g. after removing a
// superseded shipping expense.
func (o *Order) SetExpenses(expenses []*shipment.Expense) {
	o.expenses = expenses
}

// ShipmentGroups returns the order's shipment groups in derivation order.
// Empty until hydration or grouping has run.
func (o *Order) ShipmentGroups() []*shipment.Group {
	return o.groups
}

// SetShipmentGroups replaces the order's shipment groups.
func (o *Order) SetShipmentGroups(groups []*shipment.Group) {
	o.groups = groups
}

// LegacyShipment returns the order-level shipment of a record persisted
// before item-level shipments existed, or nil.
func (o *Order) LegacyShipment() *shipment.Shipment {
	return o.legacyShipment
}

// SetLegacyShipment records the order-level shipment read from an old record.
func (o *Order) SetLegacyShipment(s *shipment.Shipment) {
	o.legacyShipment = s
}

// LegacyShippingAddress returns the order-level shipping address of a record
// persisted before item-level shipments existed, or nil.
func (o *Order) LegacyShippingAddress() *shipment.Address {
	return o.legacyShippingAddress
}

// SetLegacyShippingAddress records the order-level address read from an old record.
func (o *Order) SetLegacyShippingAddress(a *shipment.Address) {
	o.legacyShippingAddress = a
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("order.orderRef")
	}
	o.orderRef = orderRef
	return nil
}

func (o *Order) setCurrencyCode(currencyCode string) error {
	if currencyCode == "" {
		return errs.NewValueIsRequiredError("order.currencyCode")
	}
	o.currencyCode = currencyCode
	return nil
}

func (o *Order) setPriceMode(priceMode shipment.PriceMode) error {
	if err := priceMode.Validate(); err != nil {
		return err
	}
	o.priceMode = priceMode
	return nil
}
