package queries

import (
	"errors"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/guard"
)

var (
	ErrHydrateOrderQueryIsNotConstructed = errors.New(
		"HydrateOrderQuery must be created via NewHydrateOrderQuery constructor",
	)
)

// HydrateOrderQuery rebuilds the shipment groups of a persisted order:
// the order's shipments are loaded, assigned back to their items, linked to
// their shipping expenses and re-grouped. The order aggregate is mutated in
// place; the response reports what could not be reconciled.
type HydrateOrderQuery struct { //nolint:recvcheck //using for validation
	order *order.Order

	guard guard.ConstructorGuard
}

// NewHydrateOrderQuery creates a hydration query for an order aggregate.
func NewHydrateOrderQuery(o *order.Order) (HydrateOrderQuery, error) {
	q := HydrateOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := o.Validate(); err != nil {
		return HydrateOrderQuery{}, err
	}
	q.order = o

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrHydrateOrderQueryIsNotConstructed if validation fails.
func (q HydrateOrderQuery) Validate() error {
	return q.guard.Validate(ErrHydrateOrderQueryIsNotConstructed)
}

// Order returns the order aggregate to hydrate.
func (q HydrateOrderQuery) Order() *order.Order {
	return q.order
}

// HydrateOrderQueryResponse reports the outcome of a hydration:
// the item ids no shipment claimed and how many groups were rebuilt.
type HydrateOrderQueryResponse struct {
	UnassignedItemIDs []int64
	GroupCount        int
}
