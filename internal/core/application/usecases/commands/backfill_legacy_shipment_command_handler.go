package commands

import (
	"context"

	"shipping/internal/core/domain/services"
)

// BackfillLegacyShipmentCommandHandler migrates an order from the legacy
// single-shipment layout to item-level shipments: the order-level shipment is
// fanned out to every item, the resulting group is persisted and the items
// are linked to it. Orders already carrying item-level shipments are not
// touched; the hydrator rejects them through the missing legacy shipment.
type BackfillLegacyShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	hydrator   services.OrderShipmentHydrator
}

// NewBackfillLegacyShipmentCommandHandler creates a backfill handler.
func NewBackfillLegacyShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	hydrator services.OrderShipmentHydrator,
) BackfillLegacyShipmentCommandHandler {
	return BackfillLegacyShipmentCommandHandler{
		uowFactory: uowFactory,
		hydrator:   hydrator,
	}
}

// Handle processes the backfill command.
func (h *BackfillLegacyShipmentCommandHandler) Handle(ctx context.Context, cmd BackfillLegacyShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o := cmd.Order()
	if _, err := h.hydrator.Backfill(o); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	methodRepo := uow.MethodRepository()
	shipmentRepo := uow.ShipmentRepository()

	for _, group := range o.ShipmentGroups() {
		if err := saveShipmentGroup(ctx, methodRepo, shipmentRepo, o, group); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
