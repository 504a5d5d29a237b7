package shipment

// MethodPrice is a stored default price of a method for one store/currency
// combination. Either column may be absent when the merchant maintains only
// one of the two modes.
type MethodPrice struct {
	GrossPrice *int64
	NetPrice   *int64
}

// ForMode returns the stored price column matching the price mode, or nil
// when that column is not maintained.
func (p MethodPrice) ForMode(mode PriceMode) *int64 {
	if mode == PriceModeNet {
		return p.NetPrice
	}
	return p.GrossPrice
}
