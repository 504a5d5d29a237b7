package services

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// MethodResolver resolves the availability, price and delivery time of a
// shipping method for a shipment group by dispatching to the providers the
// method's selectors name.
//
// Fallback policy when a selector matches no registered provider:
//   - availability defaults to true
//   - price falls back to the stored default price for the quote's store,
//     currency and price mode; a missing price row resolves to no price
//   - delivery time stays absent
//
// A registered provider is authoritative: its answer is never overridden by
// the fallback, including a nil price.
//
// The resolver memoizes currency id lookups for its lifetime; create one
// resolver per request.
type MethodResolver struct {
	registry   ports.ProviderRegistry
	methods    ports.MethodRepository
	currencies ports.CurrencyReader

	currencyIDs map[string]int64
}

// NewMethodResolver creates a MethodResolver over the given registry and
// reference data access.
func NewMethodResolver(
	registry ports.ProviderRegistry,
	methods ports.MethodRepository,
	currencies ports.CurrencyReader,
) *MethodResolver {
	return &MethodResolver{
		registry:    registry,
		methods:     methods,
		currencies:  currencies,
		currencyIDs: make(map[string]int64),
	}
}

// ResolveAvailability reports whether the method can serve the group.
func (r *MethodResolver) ResolveAvailability(
	ctx context.Context,
	m *shipment.Method,
	group *shipment.Group,
	quote *order.Quote,
) (bool, error) {
	provider, ok := r.registry.AvailabilityBySelector(m.Selectors().Availability)
	if !ok {
		return true, nil
	}

	return provider.IsAvailable(ctx, group, quote)
}

// ResolvePrice returns the method's price for the group in minor units of the
// quote currency, or nil when the method cannot be priced.
func (r *MethodResolver) ResolvePrice(
	ctx context.Context,
	m *shipment.Method,
	group *shipment.Group,
	quote *order.Quote,
) (*int64, error) {
	provider, ok := r.registry.PriceBySelector(m.Selectors().Price)
	if ok {
		return provider.GetPrice(ctx, group, quote)
	}

	currencyID, err := r.currencyID(ctx, quote.CurrencyCode())
	if err != nil {
		return nil, err
	}

	price, err := r.methods.FindDefaultPrice(ctx, m.ID(), quote.StoreID(), currencyID)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, nil
	}

	return price.ForMode(quote.PriceMode()), nil
}

// ResolveDeliveryTime returns the method's delivery time estimate for the
// group, or nil when no provider is registered or the provider has none.
func (r *MethodResolver) ResolveDeliveryTime(
	ctx context.Context,
	m *shipment.Method,
	group *shipment.Group,
	quote *order.Quote,
) (*time.Duration, error) {
	provider, ok := r.registry.DeliveryTimeBySelector(m.Selectors().DeliveryTime)
	if !ok {
		return nil, nil
	}

	return provider.GetTime(ctx, group, quote)
}

func (r *MethodResolver) currencyID(ctx context.Context, code string) (int64, error) {
	if id, ok := r.currencyIDs[code]; ok {
		return id, nil
	}

	id, err := r.currencies.IDByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	r.currencyIDs[code] = id
	return id, nil
}
