package queries

import (
	"errors"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetAvailableMethodsQueryIsNotConstructed = errors.New(
		"GetAvailableMethodsQuery must be created via NewGetAvailableMethodsQuery constructor",
	)
)

// GetAvailableMethodsQuery computes, per shipment group of a quote, the
// shipping methods offered to the customer. The quote's items must carry
// shipment drafts; the handler groups them, resolves availability, price and
// delivery time for every active method, and runs the filter chain.
//
// Example:
//
//	query, err := NewGetAvailableMethodsQuery(quote)
//	if err != nil {
//	    return fmt.Errorf("invalid quote: %w", err)
//	}
//
//	groups, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build offers: %w", err)
//	}
type GetAvailableMethodsQuery struct { //nolint:recvcheck //using for validation
	quote *order.Quote

	guard guard.ConstructorGuard
}

// NewGetAvailableMethodsQuery creates a query for a quote's shipping offers.
func NewGetAvailableMethodsQuery(quote *order.Quote) (GetAvailableMethodsQuery, error) {
	q := GetAvailableMethodsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := quote.Validate(); err != nil {
		return GetAvailableMethodsQuery{}, err
	}
	q.quote = quote

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableMethodsQueryIsNotConstructed if validation fails.
func (q GetAvailableMethodsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableMethodsQueryIsNotConstructed)
}

// Quote returns the quote the offers are computed for.
func (q GetAvailableMethodsQuery) Quote() *order.Quote {
	return q.quote
}

// GetAvailableMethodsQueryResponse represents one shipment group's offer in
// the read model: the group hash, its item ids and the offered methods.
type GetAvailableMethodsQueryResponse struct {
	GroupHash string
	ItemIDs   []int64
	Methods   []shipment.AvailableMethod
}
