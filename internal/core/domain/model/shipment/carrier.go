package shipment

import "shipping/internal/pkg/errs"

// Carrier is an administrator-managed shipping carrier. Methods reference
// their carrier by id and snapshot its display name.
type Carrier struct {
	id       int64
	name     string
	isActive bool
}

// NewCarrier creates a Carrier. The name is required.
func NewCarrier(id int64, name string, isActive bool) (Carrier, error) {
	if name == "" {
		return Carrier{}, errs.NewValueIsRequiredError("carrier.name")
	}

	return Carrier{id: id, name: name, isActive: isActive}, nil
}

// ID returns the carrier's storage id.
func (c Carrier) ID() int64 { return c.id }

// Name returns the carrier's display name.
func (c Carrier) Name() string { return c.name }

// IsActive reports whether the carrier is enabled.
func (c Carrier) IsActive() bool { return c.isActive }
