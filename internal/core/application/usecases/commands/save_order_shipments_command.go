package commands

import (
	"errors"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/guard"
)

var ErrSaveOrderShipmentsCommandIsNotConstructed = errors.New(
	"SaveOrderShipmentsCommand must be created via NewSaveOrderShipmentsCommand constructor",
)

// SaveOrderShipmentsCommand represents a request to persist all shipments of
// an order at checkout: the items are grouped by their shipment drafts and
// every resulting group is saved.
type SaveOrderShipmentsCommand struct { //nolint:recvcheck //using for validation
	order *order.Order

	guard guard.ConstructorGuard
}

// NewSaveOrderShipmentsCommand creates a command to persist an order's shipments.
// Every item of the order must carry a shipment draft.
func NewSaveOrderShipmentsCommand(o *order.Order) (SaveOrderShipmentsCommand, error) {
	cmd := SaveOrderShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrder(o); err != nil {
		return SaveOrderShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveOrderShipmentsCommandIsNotConstructed if validation fails.
func (c SaveOrderShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderShipmentsCommandIsNotConstructed)
}

// Order returns the order whose shipments are persisted.
func (c SaveOrderShipmentsCommand) Order() *order.Order {
	return c.order
}

func (c *SaveOrderShipmentsCommand) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}
