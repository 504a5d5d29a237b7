package shipment

import "errors"

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment represents one delivery leg of an order: a shipping method, a
// destination address, a carrier display name and an optional requested
// delivery date.
//
// Before persistence a shipment is a draft identified structurally by its
// derived GroupHash; after persistence it carries a numeric storage id.
// Method and shipping address may be nil on a draft; the grouping hash treats
// absent parts as empty markers, and the save path enforces their presence.
type Shipment struct {
	id                    *int64
	method                *Method
	shippingAddress       *Address
	carrierName           string
	requestedDeliveryDate *string

	isConstructed bool
}

// NewShipment creates a shipment draft.
func NewShipment(method *Method, shippingAddress *Address, carrierName string, requestedDeliveryDate *string) *Shipment {
	return &Shipment{
		method:                method,
		shippingAddress:       shippingAddress,
		carrierName:           carrierName,
		requestedDeliveryDate: requestedDeliveryDate,
		isConstructed:         true,
	}
}

// RestoreShipment reconstructs a persisted shipment carrying its storage id.
func RestoreShipment(
	id int64,
	method *Method,
	shippingAddress *Address,
	carrierName string,
	requestedDeliveryDate *string,
) *Shipment {
	s := NewShipment(method, shippingAddress, carrierName, requestedDeliveryDate)
	s.id = &id
	return s
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the persisted shipment id, or nil for a draft.
func (s *Shipment) ID() *int64 { return s.id }

// SetID records the storage id assigned on persistence.
func (s *Shipment) SetID(id int64) {
	s.id = &id
}

// Method returns the shipping method, possibly nil on a draft.
func (s *Shipment) Method() *Method { return s.method }

// SetMethod replaces the shipping method, e.g. after expansion at save time.
func (s *Shipment) SetMethod(method *Method) {
	s.method = method
}

// ShippingAddress returns the destination address, possibly nil on a draft.
func (s *Shipment) ShippingAddress() *Address { return s.shippingAddress }

// SetShippingAddress replaces the destination address.
func (s *Shipment) SetShippingAddress(address *Address) {
	s.shippingAddress = address
}

// CarrierName returns the carrier display name.
func (s *Shipment) CarrierName() string { return s.carrierName }

// RequestedDeliveryDate returns the requested delivery date in YYYY-MM-DD
// form, or nil when the customer did not request one. Presence versus absence
// of the date is part of the shipment's structural identity.
func (s *Shipment) RequestedDeliveryDate() *string { return s.requestedDeliveryDate }
