package shipment

import (
	"time"

	"github.com/shopspring/decimal"
)

// AvailableMethod is the read model of one shipping method offered for a
// shipment group: the method definition enriched with the price and delivery
// time resolved for a concrete quote. Plain fields, no invariants; it is
// assembled by the availability builder and consumed by presentation.
type AvailableMethod struct {
	MethodID           int64
	Name               string
	CarrierName        string
	StoreCurrencyPrice int64
	CurrencyCode       string
	DeliveryTime       *time.Duration
	TaxRate            decimal.Decimal
}
