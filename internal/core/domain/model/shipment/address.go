package shipment

import (
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or RestoreAddress constructors")

// Address is an immutable value object holding the postal data of a shipping
// destination. Two addresses with identical postal data are semantically equal
// regardless of object identity; CanonicalKey provides the comparable form
// used for shipment group derivation.
type Address struct { //nolint:recvcheck //using for validation
	id          *int64
	line1       string
	line2       string
	city        string
	region      string
	zipCode     string
	countryCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the given postal data.
// line1, city, zipCode and countryCode are required; line2 and region may be
// empty. Returns an error naming the first missing field.
func NewAddress(line1, line2, city, region, zipCode, countryCode string) (Address, error) {
	addr := Address{
		line2:  strings.TrimSpace(line2),
		region: strings.TrimSpace(region),
		guard:  guard.NewConstructorGuard(),
	}

	if err := addr.setRequired(&addr.line1, "address.line1", line1); err != nil {
		return Address{}, err
	}
	if err := addr.setRequired(&addr.city, "address.city", city); err != nil {
		return Address{}, err
	}
	if err := addr.setRequired(&addr.zipCode, "address.zipCode", zipCode); err != nil {
		return Address{}, err
	}
	if err := addr.setRequired(&addr.countryCode, "address.countryCode", countryCode); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// RestoreAddress reconstructs a persisted Address carrying its storage id.
// Used by adapters when re-reading orders and shipments.
func RestoreAddress(id int64, line1, line2, city, region, zipCode, countryCode string) (Address, error) {
	addr, err := NewAddress(line1, line2, city, region, zipCode, countryCode)
	if err != nil {
		return Address{}, err
	}

	addr.id = &id
	return addr, nil
}

// Validate checks if the Address was properly constructed via a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the persisted address id, or nil for an address that has not
// been stored yet.
func (a Address) ID() *int64 {
	return a.id
}

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the second address line, possibly empty.
func (a Address) Line2() string { return a.line2 }

// City returns the city name.
func (a Address) City() string { return a.city }

// Region returns the region or state, possibly empty.
func (a Address) Region() string { return a.region }

// ZipCode returns the postal code.
func (a Address) ZipCode() string { return a.zipCode }

// CountryCode returns the ISO country code.
func (a Address) CountryCode() string { return a.countryCode }

// CanonicalKey returns a deterministic serialization of the postal data.
// Identical postal data yields identical keys regardless of object identity
// or persisted id; casing and surrounding whitespace are normalized.
func (a Address) CanonicalKey() string {
	parts := []string{a.line1, a.line2, a.city, a.region, a.zipCode, a.countryCode}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// IsEqual compares two addresses by their canonical postal data.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return a.CanonicalKey() == other.CanonicalKey(), nil
}

func (a *Address) setRequired(target *string, paramName, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}

	*target = value
	return nil
}
