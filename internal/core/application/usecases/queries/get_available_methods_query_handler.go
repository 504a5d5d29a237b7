package queries

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// GetAvailableMethodsQueryHandler builds the per-group shipping offer for a
// quote. A fresh resolver is created per request so currency lookups are
// memoized within the request only.
type GetAvailableMethodsQueryHandler struct {
	registry   ports.ProviderRegistry
	methods    ports.MethodRepository
	currencies ports.CurrencyReader
	grouper    services.ItemsGrouper
}

// NewGetAvailableMethodsQueryHandler creates a handler over the provider
// registry and reference data access.
func NewGetAvailableMethodsQueryHandler(
	registry ports.ProviderRegistry,
	methods ports.MethodRepository,
	currencies ports.CurrencyReader,
	grouper services.ItemsGrouper,
) GetAvailableMethodsQueryHandler {
	return GetAvailableMethodsQueryHandler{
		registry:   registry,
		methods:    methods,
		currencies: currencies,
		grouper:    grouper,
	}
}

// Handle groups the quote's items and computes the offered methods per group.
// Group build failures degrade that group to an empty offer; the first error
// encountered is returned alongside the groups that were built.
func (h GetAvailableMethodsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableMethodsQuery,
) ([]GetAvailableMethodsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	quote := query.Quote()
	groups, err := h.grouper.Group(quote.Items())
	if err != nil {
		return nil, err
	}

	candidates, err := h.methods.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	resolver := services.NewMethodResolver(h.registry, h.methods, h.currencies)
	builder := services.NewAvailableMethodsBuilder(resolver, h.registry)
	buildErr := builder.Build(ctx, groups, quote, candidates)

	responses := make([]GetAvailableMethodsQueryResponse, 0, len(groups))
	for _, group := range groups {
		itemIDs := make([]int64, 0, len(group.Items()))
		for _, item := range group.Items() {
			itemIDs = append(itemIDs, item.ID())
		}

		responses = append(responses, GetAvailableMethodsQueryResponse{
			GroupHash: group.Hash().String(),
			ItemIDs:   itemIDs,
			Methods:   group.AvailableMethods(),
		})
	}

	return responses, buildErr
}
