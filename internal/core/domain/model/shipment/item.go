package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a purchasable line entry of a quote or order. It carries an
// embedded shipment draft (nil until the customer picks a destination) and,
// after grouping, the hash of the group it belongs to. Once the order is
// persisted the item also records the storage id of its owning shipment.
type Item struct {
	id       int64
	sku      string
	name     string
	quantity int

	shipment   *Shipment
	shipmentID *int64
	groupHash  GroupHash

	isConstructed bool
}

// NewItem creates an order item with validation.
// The id is zero for quote items that have not been persisted yet.
func NewItem(id int64, sku string, name string, quantity int) (*Item, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("item.sku")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("item.quantity")
	}

	return &Item{
		id:            id,
		sku:           sku,
		name:          name,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's storage id, zero before persistence.
func (i *Item) ID() int64 { return i.id }

// SKU returns the stock keeping unit of the purchased product.
func (i *Item) SKU() string { return i.sku }

// Name returns the product display name.
func (i *Item) Name() string { return i.name }

// Quantity returns the purchased quantity.
func (i *Item) Quantity() int { return i.quantity }

// Shipment returns the item's shipment draft, or nil when the item has not
// been assigned a destination yet.
func (i *Item) Shipment() *Shipment { return i.shipment }

// SetShipment assigns the item's shipment draft.
func (i *Item) SetShipment(s *Shipment) {
	i.shipment = s
}

// ShipmentID returns the storage id of the owning shipment, or nil when the
// item has not been linked to a persisted shipment.
func (i *Item) ShipmentID() *int64 { return i.shipmentID }

// SetShipmentID writes back the persisted shipment id onto the item.
func (i *Item) SetShipmentID(id int64) {
	i.shipmentID = &id
}

// GroupHash returns the hash of the shipment group the item was sorted into,
// empty before grouping.
func (i *Item) GroupHash() GroupHash { return i.groupHash }

// SetGroupHash links the item to its shipment group.
func (i *Item) SetGroupHash(hash GroupHash) {
	i.groupHash = hash
}
