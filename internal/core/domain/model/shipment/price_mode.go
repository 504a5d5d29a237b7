package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// PriceMode determines whether monetary values on a quote or order are
// interpreted gross (tax-inclusive) or net (tax-exclusive). It selects which
// stored default price column is used during method resolution and which
// expense fields are populated when a shipping expense is built.
type PriceMode int

const (
	// PriceModeUnknown represents an invalid or undefined price mode.
	// This value (0) helps catch uninitialized PriceMode values.
	PriceModeUnknown PriceMode = iota

	// PriceModeGross interprets prices as tax-inclusive.
	PriceModeGross

	// PriceModeNet interprets prices as tax-exclusive.
	PriceModeNet
)

func getValidPriceModeStrings() map[PriceMode]string {
	//nolint:exhaustive // PriceModeUnknown is intentionally excluded as it's invalid
	return map[PriceMode]string{
		PriceModeGross: "GROSS_MODE",
		PriceModeNet:   "NET_MODE",
	}
}

// Validate checks if the PriceMode value is valid.
// Valid modes are PriceModeGross and PriceModeNet.
func (m PriceMode) Validate() error {
	if _, ok := getValidPriceModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priceMode", fmt.Errorf("%d is not a valid price mode", m))
	}
	return nil
}

// String returns the wire representation of the price mode.
func (m PriceMode) String() string {
	if s, ok := getValidPriceModeStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// PriceModeFromString parses a stored price mode representation.
func PriceModeFromString(s string) (PriceMode, error) {
	for mode, str := range getValidPriceModeStrings() {
		if str == s {
			return mode, nil
		}
	}
	return PriceModeUnknown, errs.NewValueIsInvalidErrorWithCause("priceMode", fmt.Errorf("%q is not a valid price mode", s))
}
