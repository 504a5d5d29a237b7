package commands

import (
	"errors"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrSaveShipmentCommandIsNotConstructed = errors.New(
	"SaveShipmentCommand must be created via NewSaveShipmentCommand constructor",
)

// SaveShipmentCommand represents a request to persist one shipment group of
// an order: the shipment itself, the shipping expense pricing it, and the
// shipment foreign keys of the group's items.
//
// Example:
//
//	cmd, err := NewSaveShipmentCommand(ord, group)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewSaveShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to save shipment: %w", err)
//	}
type SaveShipmentCommand struct { //nolint:recvcheck //using for validation
	order *order.Order
	group *shipment.Group

	guard guard.ConstructorGuard
}

// NewSaveShipmentCommand creates a command to persist a shipment group.
// The group's shipment must carry a method so the expense can be priced.
func NewSaveShipmentCommand(o *order.Order, group *shipment.Group) (SaveShipmentCommand, error) {
	cmd := SaveShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrder(o),
		cmd.setGroup(group),
	); err != nil {
		return SaveShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveShipmentCommandIsNotConstructed if validation fails.
func (c SaveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrSaveShipmentCommandIsNotConstructed)
}

// Order returns the order the shipment group belongs to.
func (c SaveShipmentCommand) Order() *order.Order {
	return c.order
}

// Group returns the shipment group to persist.
func (c SaveShipmentCommand) Group() *shipment.Group {
	return c.group
}

func (c *SaveShipmentCommand) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}

func (c *SaveShipmentCommand) setGroup(group *shipment.Group) error {
	if err := group.Validate(); err != nil {
		return err
	}

	c.group = group
	return nil
}
