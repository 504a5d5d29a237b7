package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
)

// AvailabilityProvider decides whether a shipping method can serve a shipment
// group in the context of a quote. Providers are registered under the selector
// names that method definitions reference; a method whose selector matches no
// registered provider is treated as available.
type AvailabilityProvider interface {
	IsAvailable(ctx context.Context, group *shipment.Group, quote *order.Quote) (bool, error)
}

// PriceProvider computes the price of a shipping method for a shipment group,
// in minor units of the quote currency. A nil price means the provider cannot
// price this group; such a method is excluded from the offer. When a method's
// price selector matches no registered provider, the stored default price for
// the quote's store, currency and price mode is used instead.
type PriceProvider interface {
	GetPrice(ctx context.Context, group *shipment.Group, quote *order.Quote) (*int64, error)
}

// DeliveryTimeProvider estimates the delivery time of a shipping method for a
// shipment group. When a method's delivery time selector matches no registered
// provider, the estimate stays absent; it never defaults.
type DeliveryTimeProvider interface {
	GetTime(ctx context.Context, group *shipment.Group, quote *order.Quote) (*time.Duration, error)
}

// MethodFilter post-processes the list of offered methods for one shipment
// group. Filters run in registration order, each receiving the previous
// filter's output.
type MethodFilter interface {
	Filter(ctx context.Context, methods []shipment.AvailableMethod, group *shipment.Group, quote *order.Quote) ([]shipment.AvailableMethod, error)
}

// ProviderRegistry holds the pluggable providers and filters the resolution
// services dispatch to. It is assembled once at composition time and passed
// by value; registration is not safe for concurrent use.
type ProviderRegistry struct {
	availability map[string]AvailabilityProvider
	price        map[string]PriceProvider
	deliveryTime map[string]DeliveryTimeProvider
	filters      []MethodFilter
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() ProviderRegistry {
	return ProviderRegistry{
		availability: make(map[string]AvailabilityProvider),
		price:        make(map[string]PriceProvider),
		deliveryTime: make(map[string]DeliveryTimeProvider),
	}
}

// RegisterAvailability binds an availability provider to a selector name.
func (r *ProviderRegistry) RegisterAvailability(selector string, p AvailabilityProvider) {
	r.availability[selector] = p
}

// RegisterPrice binds a price provider to a selector name.
func (r *ProviderRegistry) RegisterPrice(selector string, p PriceProvider) {
	r.price[selector] = p
}

// RegisterDeliveryTime binds a delivery time provider to a selector name.
func (r *ProviderRegistry) RegisterDeliveryTime(selector string, p DeliveryTimeProvider) {
	r.deliveryTime[selector] = p
}

// RegisterFilter appends a method filter to the chain.
func (r *ProviderRegistry) RegisterFilter(f MethodFilter) {
	r.filters = append(r.filters, f)
}

// AvailabilityBySelector looks up the availability provider for a selector.
func (r ProviderRegistry) AvailabilityBySelector(selector string) (AvailabilityProvider, bool) {
	p, ok := r.availability[selector]
	return p, ok
}

// PriceBySelector looks up the price provider for a selector.
func (r ProviderRegistry) PriceBySelector(selector string) (PriceProvider, bool) {
	p, ok := r.price[selector]
	return p, ok
}

// DeliveryTimeBySelector looks up the delivery time provider for a selector.
func (r ProviderRegistry) DeliveryTimeBySelector(selector string) (DeliveryTimeProvider, bool) {
	p, ok := r.deliveryTime[selector]
	return p, ok
}

// Filters returns the filter chain in registration order.
func (r ProviderRegistry) Filters() []MethodFilter {
	return r.filters
}
