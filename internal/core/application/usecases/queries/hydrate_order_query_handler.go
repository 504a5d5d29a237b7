package queries

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// HydrateOrderQueryHandler loads an order's persisted shipments and item
// assignments and hands them to the hydrator. Reads run outside any
// transaction; the order aggregate is mutated in place.
type HydrateOrderQueryHandler struct {
	shipments ports.ShipmentRepository
	hydrator  services.OrderShipmentHydrator
}

// NewHydrateOrderQueryHandler creates a hydration handler.
func NewHydrateOrderQueryHandler(
	shipments ports.ShipmentRepository,
	hydrator services.OrderShipmentHydrator,
) HydrateOrderQueryHandler {
	return HydrateOrderQueryHandler{
		shipments: shipments,
		hydrator:  hydrator,
	}
}

// Handle executes the hydration.
func (h HydrateOrderQueryHandler) Handle(
	ctx context.Context,
	query HydrateOrderQuery,
) (HydrateOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return HydrateOrderQueryResponse{}, err
	}

	o := query.Order()

	shipments, err := h.shipments.FindByOrder(ctx, o.ID())
	if err != nil {
		return HydrateOrderQueryResponse{}, err
	}

	itemIDs, err := h.shipments.ItemIDsByShipment(ctx, o.ID())
	if err != nil {
		return HydrateOrderQueryResponse{}, err
	}

	unassigned, err := h.hydrator.Hydrate(o, shipments, itemIDs)
	if err != nil {
		return HydrateOrderQueryResponse{}, err
	}

	return HydrateOrderQueryResponse{
		UnassignedItemIDs: unassigned,
		GroupCount:        len(o.ShipmentGroups()),
	}, nil
}
