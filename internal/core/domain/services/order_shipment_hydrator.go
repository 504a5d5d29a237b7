package services

import (
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// ShipmentLayout describes how an order's shipment data is stored.
type ShipmentLayout int

const (
	// LayoutNone means the order carries no shipment data at all.
	LayoutNone ShipmentLayout = iota

	// LayoutLegacySingle means the order has one shipment for all items:
	// either a single persisted shipment record, or an order-level shipment
	// draft from before item-level shipments existed.
	LayoutLegacySingle

	// LayoutMulti means the order carries persisted per-item shipments.
	LayoutMulti
)

// OrderShipmentHydrator rebuilds the shipment groups of a persisted order.
//
// Orders stored with per-item shipments get each shipment assigned back to
// its items and linked to its shipping expense; orders stored in the legacy
// single-shipment layout get the order-level shipment fanned out to every
// item. In both cases the groups are re-derived from the assigned shipments,
// so the group order and hashes match what grouping produces on a live cart.
type OrderShipmentHydrator struct {
	grouper ItemsGrouper
}

// NewOrderShipmentHydrator creates a hydrator.
func NewOrderShipmentHydrator(grouper ItemsGrouper) OrderShipmentHydrator {
	return OrderShipmentHydrator{grouper: grouper}
}

// DetectLayout reports which shipment layout the order was stored in,
// given the shipments persisted for it. Multiplicity is decided once from
// the record count: a single record means one shipment for the whole order,
// unless every item already links a shipment of its own.
func (h OrderShipmentHydrator) DetectLayout(o *order.Order, shipments []*shipment.Shipment) ShipmentLayout {
	switch {
	case len(shipments) > 1:
		return LayoutMulti
	case len(shipments) == 1:
		if h.isHydrated(o) {
			return LayoutMulti
		}
		return LayoutLegacySingle
	case o.LegacyShipment() != nil:
		return LayoutLegacySingle
	default:
		return LayoutNone
	}
}

// Hydrate assigns the persisted shipments back to the order's items, links
// each shipment to its shipping expense and rebuilds the shipment groups.
// itemIDsByShipment maps shipment ids to the item ids they own.
//
// An order with exactly one persisted shipment gets it assigned to every
// item uniformly, without consulting the mapping. On the multi path, items
// that no shipment claims are left untouched and reported by id; the
// remaining items are still hydrated and grouped. An order without any
// shipment data is returned unchanged.
func (h OrderShipmentHydrator) Hydrate(
	o *order.Order,
	shipments []*shipment.Shipment,
	itemIDsByShipment map[int64][]int64,
) ([]int64, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	switch h.DetectLayout(o, shipments) {
	case LayoutMulti:
		if !h.isHydrated(o) {
			if err := h.assignShipments(o, shipments, itemIDsByShipment); err != nil {
				return nil, err
			}
		}
	case LayoutLegacySingle:
		if len(shipments) == 1 {
			if err := h.assignSingleShipment(o, shipments[0]); err != nil {
				return nil, err
			}
		} else {
			h.assignLegacyShipment(o)
		}
	case LayoutNone:
		return nil, nil
	}

	var assigned []*shipment.Item
	var unassigned []int64
	for _, item := range o.Items() {
		if item.Shipment() == nil {
			unassigned = append(unassigned, item.ID())
			continue
		}
		assigned = append(assigned, item)
	}

	groups, err := h.grouper.Group(assigned)
	if err != nil {
		return nil, err
	}
	o.SetShipmentGroups(groups)

	return unassigned, nil
}

// Backfill converts a legacy single-shipment order to the item-level layout:
// the order-level shipment is fanned out to every item and the groups are
// derived, yielding exactly one group. The returned shipment draft has no
// storage id yet; persisting it is the caller's responsibility.
func (h OrderShipmentHydrator) Backfill(o *order.Order) (*shipment.Shipment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.LegacyShipment() == nil {
		return nil, errs.NewValueIsRequiredError("order.legacyShipment")
	}

	h.assignLegacyShipment(o)

	groups, err := h.grouper.Group(o.Items())
	if err != nil {
		return nil, err
	}
	o.SetShipmentGroups(groups)

	return o.LegacyShipment(), nil
}

// isHydrated reports whether every item already carries a persisted shipment,
// in which case assignment can be skipped and only the groups are re-derived.
func (h OrderShipmentHydrator) isHydrated(o *order.Order) bool {
	if len(o.Items()) == 0 {
		return false
	}
	for _, item := range o.Items() {
		if item.Shipment() == nil || item.ShipmentID() == nil {
			return false
		}
	}
	return true
}

func (h OrderShipmentHydrator) assignShipments(
	o *order.Order,
	shipments []*shipment.Shipment,
	itemIDsByShipment map[int64][]int64,
) error {
	itemsByID := make(map[int64]*shipment.Item, len(o.Items()))
	for _, item := range o.Items() {
		itemsByID[item.ID()] = item
	}

	expensesByID := h.shipmentExpensesByID(o)

	for _, s := range shipments {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.ID() == nil {
			return errs.NewValueIsRequiredError("shipment.id")
		}

		for _, itemID := range itemIDsByShipment[*s.ID()] {
			item, ok := itemsByID[itemID]
			if !ok {
				continue
			}
			item.SetShipment(s)
			item.SetShipmentID(*s.ID())
		}

		h.linkExpense(s, expensesByID)
	}

	return nil
}

// assignSingleShipment fans the order's one persisted shipment out to every
// item uniformly, overwriting whatever draft an item carried.
func (h OrderShipmentHydrator) assignSingleShipment(o *order.Order, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.ID() == nil {
		return errs.NewValueIsRequiredError("shipment.id")
	}

	for _, item := range o.Items() {
		item.SetShipment(s)
		item.SetShipmentID(*s.ID())
	}

	h.linkExpense(s, h.shipmentExpensesByID(o))

	return nil
}

func (h OrderShipmentHydrator) shipmentExpensesByID(o *order.Order) map[int64]*shipment.Expense {
	expensesByID := make(map[int64]*shipment.Expense)
	for _, e := range o.ShipmentExpenses() {
		if e.ID() != nil {
			expensesByID[*e.ID()] = e
		}
	}
	return expensesByID
}

// linkExpense attaches the shipment to the expense that prices it, located
// through the expense id snapshotted on the shipment's method.
func (h OrderShipmentHydrator) linkExpense(s *shipment.Shipment, expensesByID map[int64]*shipment.Expense) {
	if s.Method() == nil || s.Method().ExpenseID() == nil {
		return
	}

	if e, ok := expensesByID[*s.Method().ExpenseID()]; ok {
		e.SetShipment(s)
	}
}

func (h OrderShipmentHydrator) assignLegacyShipment(o *order.Order) {
	s := o.LegacyShipment()
	if o.LegacyShippingAddress() != nil && s.ShippingAddress() == nil {
		s.SetShippingAddress(o.LegacyShippingAddress())
	}

	for _, item := range o.Items() {
		item.SetShipment(s)
		if s.ID() != nil {
			item.SetShipmentID(*s.ID())
		}
	}
}
