package commands

import (
	"context"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// SaveShipmentCommandHandler persists one shipment group of an order.
//
// The workflow mirrors what the checkout does per group: the shipment's
// method snapshot is expanded from reference data, the shipment row is
// written, a shipping expense is built and priced in the order's price mode,
// any superseded shipping expense for the same shipment is removed, and every
// item of the group is pointed at the persisted shipment. All writes share
// one transaction.
type SaveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewSaveShipmentCommandHandler creates a handler for shipment persistence.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewSaveShipmentCommandHandler(uowFactory ShipmentUoWFactory) SaveShipmentCommandHandler {
	return SaveShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save shipment command.
// On success the group's shipment, expense and items carry their storage ids.
func (h *SaveShipmentCommandHandler) Handle(ctx context.Context, cmd SaveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := saveShipmentGroup(ctx, uow.MethodRepository(), uow.ShipmentRepository(), cmd.Order(), cmd.Group()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// saveShipmentGroup persists a single shipment group inside the caller's
// transaction. Shared by the single-group and whole-order save handlers.
func saveShipmentGroup(
	ctx context.Context,
	methodRepo ports.MethodRepository,
	shipmentRepo ports.ShipmentRepository,
	o *order.Order,
	group *shipment.Group,
) error {
	s := group.Shipment()
	if s.Method() == nil {
		return errs.NewValueIsRequiredError("shipment.method")
	}

	method, err := expandMethod(ctx, methodRepo, s.Method())
	if err != nil {
		return err
	}
	s.SetMethod(method)

	if err = shipmentRepo.Save(ctx, o.ID(), s); err != nil {
		return err
	}

	expense, err := buildShippingExpense(method, s, o.PriceMode())
	if err != nil {
		return err
	}

	if err = removeSupersededExpense(ctx, shipmentRepo, o, s, method); err != nil {
		return err
	}

	if err = shipmentRepo.SaveExpense(ctx, o.ID(), expense); err != nil {
		return err
	}
	method.SetExpenseID(*expense.ID())
	if err = o.AddExpense(expense); err != nil {
		return err
	}

	for _, item := range group.Items() {
		if err = shipmentRepo.UpdateItemShipment(ctx, item.ID(), *s.ID()); err != nil {
			return err
		}
		item.SetShipmentID(*s.ID())
	}

	return nil
}

// expandMethod replaces the partial method snapshot carried by an incoming
// shipment with the full definition from reference data, preserving the
// resolved price and expense link of the snapshot.
func expandMethod(ctx context.Context, methodRepo ports.MethodRepository, snapshot *shipment.Method) (*shipment.Method, error) {
	method, err := methodRepo.FindByID(ctx, snapshot.ID())
	if err != nil {
		return nil, err
	}

	if snapshot.StoreCurrencyPrice() != nil {
		method.SetStoreCurrencyPrice(*snapshot.StoreCurrencyPrice())
	}
	if snapshot.ExpenseID() != nil {
		method.SetExpenseID(*snapshot.ExpenseID())
	}

	return method, nil
}

// buildShippingExpense creates the expense line pricing the shipment from the
// expanded method. A method without a resolved price cannot be saved.
func buildShippingExpense(method *shipment.Method, s *shipment.Shipment, mode shipment.PriceMode) (*shipment.Expense, error) {
	if method.StoreCurrencyPrice() == nil {
		return nil, errs.NewValueIsRequiredError("method.storeCurrencyPrice")
	}

	expense, err := shipment.NewShipmentExpense(method.Name(), method.TaxRate(), s)
	if err != nil {
		return nil, err
	}

	if err = expense.SetPrice(*method.StoreCurrencyPrice(), mode); err != nil {
		return nil, err
	}
	expense.SanitizeSumValues()

	return expense, nil
}

// removeSupersededExpense drops the previous shipping expense of the same
// shipment, both from storage and from the order, so a re-saved shipment is
// priced exactly once.
func removeSupersededExpense(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	o *order.Order,
	s *shipment.Shipment,
	method *shipment.Method,
) error {
	remaining := make([]*shipment.Expense, 0, len(o.Expenses()))
	for _, e := range o.Expenses() {
		if !e.IsShipmentExpense() || !supersedes(e, s, method) {
			remaining = append(remaining, e)
			continue
		}

		if e.ID() != nil {
			if err := shipmentRepo.DeleteExpense(ctx, *e.ID()); err != nil {
				return err
			}
		}
	}

	o.SetExpenses(remaining)
	return nil
}

func supersedes(e *shipment.Expense, s *shipment.Shipment, method *shipment.Method) bool {
	if e.Shipment() == s {
		return true
	}
	if e.ID() != nil && method.ExpenseID() != nil && *e.ID() == *method.ExpenseID() {
		return true
	}
	return false
}
