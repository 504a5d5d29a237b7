package commands

import (
	"context"

	"shipping/internal/core/domain/services"
)

// SaveOrderShipmentsCommandHandler persists all shipments of an order in one
// transaction. The order's items are grouped by their shipment drafts, then
// each group runs the same save workflow as the single-group handler, so a
// cart shipping to three destinations yields three shipments, three shipping
// expenses and fully linked items, or nothing at all.
type SaveOrderShipmentsCommandHandler struct {
	uowFactory ShipmentUoWFactory
	grouper    services.ItemsGrouper
}

// NewSaveOrderShipmentsCommandHandler creates a handler for whole-order
// shipment persistence.
func NewSaveOrderShipmentsCommandHandler(
	uowFactory ShipmentUoWFactory,
	grouper services.ItemsGrouper,
) SaveOrderShipmentsCommandHandler {
	return SaveOrderShipmentsCommandHandler{
		uowFactory: uowFactory,
		grouper:    grouper,
	}
}

// Handle processes the save order shipments command.
// On success the order carries its shipment groups with storage ids assigned.
func (h *SaveOrderShipmentsCommandHandler) Handle(ctx context.Context, cmd SaveOrderShipmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o := cmd.Order()
	groups, err := h.grouper.Group(o.Items())
	if err != nil {
		return err
	}
	o.SetShipmentGroups(groups)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	methodRepo := uow.MethodRepository()
	shipmentRepo := uow.ShipmentRepository()

	for _, group := range groups {
		if err = saveShipmentGroup(ctx, methodRepo, shipmentRepo, o, group); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
