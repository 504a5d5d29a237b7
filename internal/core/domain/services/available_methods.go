package services

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// AvailableMethodsBuilder assembles, per shipment group, the list of shipping
// methods offered to the customer: every active method that is available for
// the group and can be priced, enriched with price and delivery time, then
// run through the registered filter chain.
//
// Group failures are isolated: a group whose methods cannot be built gets an
// empty offer while the remaining groups are still built. The per-group
// errors are joined and returned so callers can report them.
type AvailableMethodsBuilder struct {
	resolver *MethodResolver
	registry ports.ProviderRegistry
}

// NewAvailableMethodsBuilder creates a builder over the given resolver and
// provider registry.
func NewAvailableMethodsBuilder(resolver *MethodResolver, registry ports.ProviderRegistry) *AvailableMethodsBuilder {
	return &AvailableMethodsBuilder{
		resolver: resolver,
		registry: registry,
	}
}

// Build populates each group's available methods from the candidate method
// definitions. Inactive candidates are skipped, as are methods the resolver
// reports unavailable or priceless for a group.
func (b *AvailableMethodsBuilder) Build(
	ctx context.Context,
	groups []*shipment.Group,
	quote *order.Quote,
	candidates []*shipment.Method,
) error {
	if err := quote.Validate(); err != nil {
		return err
	}

	var groupErrs []error
	for _, group := range groups {
		methods, err := b.buildForGroup(ctx, group, quote, candidates)
		if err != nil {
			group.SetAvailableMethods(nil)
			groupErrs = append(groupErrs, fmt.Errorf("group %s: %w", group.Hash(), err))
			continue
		}

		group.SetAvailableMethods(methods)
	}

	return errors.Join(groupErrs...)
}

func (b *AvailableMethodsBuilder) buildForGroup(
	ctx context.Context,
	group *shipment.Group,
	quote *order.Quote,
	candidates []*shipment.Method,
) ([]shipment.AvailableMethod, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}

	methods := make([]shipment.AvailableMethod, 0, len(candidates))
	for _, m := range candidates {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if !m.IsActive() {
			continue
		}

		available, err := b.resolver.ResolveAvailability(ctx, m, group, quote)
		if err != nil {
			return nil, err
		}
		if !available {
			continue
		}

		price, err := b.resolver.ResolvePrice(ctx, m, group, quote)
		if err != nil {
			return nil, err
		}
		if price == nil {
			continue
		}

		deliveryTime, err := b.resolver.ResolveDeliveryTime(ctx, m, group, quote)
		if err != nil {
			return nil, err
		}

		methods = append(methods, shipment.AvailableMethod{
			MethodID:           m.ID(),
			Name:               m.Name(),
			CarrierName:        m.CarrierName(),
			StoreCurrencyPrice: *price,
			CurrencyCode:       quote.CurrencyCode(),
			DeliveryTime:       deliveryTime,
			TaxRate:            m.TaxRate(),
		})
	}

	for _, filter := range b.registry.Filters() {
		filtered, err := filter.Filter(ctx, methods, group, quote)
		if err != nil {
			return nil, err
		}
		methods = filtered
	}

	return methods, nil
}
