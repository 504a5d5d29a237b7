package commands

import (
	"errors"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/guard"
)

var ErrBackfillLegacyShipmentCommandIsNotConstructed = errors.New(
	"BackfillLegacyShipmentCommand must be created via NewBackfillLegacyShipmentCommand constructor",
)

// BackfillLegacyShipmentCommand represents a request to migrate an order
// stored in the legacy single-shipment layout to item-level shipments.
type BackfillLegacyShipmentCommand struct { //nolint:recvcheck //using for validation
	order *order.Order

	guard guard.ConstructorGuard
}

// NewBackfillLegacyShipmentCommand creates a backfill command.
// The order must carry its legacy order-level shipment.
func NewBackfillLegacyShipmentCommand(o *order.Order) (BackfillLegacyShipmentCommand, error) {
	cmd := BackfillLegacyShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrder(o); err != nil {
		return BackfillLegacyShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBackfillLegacyShipmentCommandIsNotConstructed if validation fails.
func (c BackfillLegacyShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBackfillLegacyShipmentCommandIsNotConstructed)
}

// Order returns the legacy order to backfill.
func (c BackfillLegacyShipmentCommand) Order() *order.Order {
	return c.order
}

func (c *BackfillLegacyShipmentCommand) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}
