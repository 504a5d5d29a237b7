package commands_test

import (
	"context"
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMethodRepository struct{ mock.Mock }

func (m *MockMethodRepository) ListActive(_ context.Context) ([]*shipment.Method, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockMethodRepository) FindByID(ctx context.Context, id int64) (*shipment.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Method), args.Error(1)
}

func (m *MockMethodRepository) FindDefaultPrice(_ context.Context, _, _, _ int64) (*shipment.MethodPrice, error) {
	return nil, errors.New("not implemented in mock")
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) FindByOrder(_ context.Context, _ kernel.UUID) ([]*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockShipmentRepository) ItemIDsByShipment(_ context.Context, _ kernel.UUID) (map[int64][]int64, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockShipmentRepository) Save(ctx context.Context, orderID kernel.UUID, s *shipment.Shipment) error {
	args := m.Called(ctx, orderID, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) SaveExpense(ctx context.Context, orderID kernel.UUID, e *shipment.Expense) error {
	args := m.Called(ctx, orderID, e)
	return args.Error(0)
}

func (m *MockShipmentRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockShipmentRepository) UpdateItemShipment(ctx context.Context, itemID, shipmentID int64) error {
	args := m.Called(ctx, itemID, shipmentID)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) MethodRepository() ports.MethodRepository {
	args := m.Called()
	return args.Get(0).(ports.MethodRepository)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func fullMethod(t *testing.T, id int64) *shipment.Method {
	t.Helper()

	m, err := shipment.NewMethod(id, "Express", 1, "DHL", shipment.ProviderSelectors{}, decimal.NewFromInt(19), true)
	require.NoError(t, err)
	return m
}

func pricedSnapshot(t *testing.T, id, price int64) *shipment.Method {
	t.Helper()

	m := fullMethod(t, id)
	m.SetStoreCurrencyPrice(price)
	return m
}

func groupedOrder(t *testing.T, snapshot *shipment.Method) (*order.Order, *shipment.Group) {
	t.Helper()

	addr, err := shipment.NewAddress("Julie-Wolfthorn-Str. 1", "", "Berlin", "", "10115", "DE")
	require.NoError(t, err)
	s := shipment.NewShipment(snapshot, &addr, "DHL", nil)

	item, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	item.SetShipment(s)

	o, err := order.NewOrder(kernel.NewUUID(), "DE--7", 1, "EUR", shipment.PriceModeGross, []*shipment.Item{item})
	require.NoError(t, err)

	groups, err := services.NewItemsGrouper().Group(o.Items())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	o.SetShipmentGroups(groups)

	return o, groups[0]
}

func TestSaveShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o, group := groupedOrder(t, pricedSnapshot(t, 7, 490))
	cmd, err := commands.NewSaveShipmentCommand(o, group)
	require.NoError(t, err)

	methodRepo := new(MockMethodRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)

	methodRepo.On("FindByID", mock.Anything, int64(7)).Return(fullMethod(t, 7), nil).Once()
	shipmentRepo.On("Save", mock.Anything, o.ID(), group.Shipment()).
		Run(func(args mock.Arguments) {
			args.Get(2).(*shipment.Shipment).SetID(31)
		}).Return(nil).Once()
	shipmentRepo.On("SaveExpense", mock.Anything, o.ID(), mock.AnythingOfType("*shipment.Expense")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*shipment.Expense).SetID(55)
		}).Return(nil).Once()
	shipmentRepo.On("UpdateItemShipment", mock.Anything, int64(11), int64(31)).Return(nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MethodRepository").Return(methodRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	s := group.Shipment()
	require.NotNil(t, s.ID())
	assert.Equal(t, int64(31), *s.ID())
	require.NotNil(t, s.Method().StoreCurrencyPrice())
	assert.Equal(t, int64(490), *s.Method().StoreCurrencyPrice())
	require.NotNil(t, s.Method().ExpenseID())
	assert.Equal(t, int64(55), *s.Method().ExpenseID())

	require.Len(t, o.ShipmentExpenses(), 1)
	expense := o.ShipmentExpenses()[0]
	assert.Equal(t, int64(490), expense.UnitGrossPrice())
	assert.Equal(t, int64(0), expense.UnitNetPrice())
	assert.Equal(t, int64(490), expense.SumGrossPrice())
	assert.Equal(t, s, expense.Shipment())

	item := group.Items()[0]
	require.NotNil(t, item.ShipmentID())
	assert.Equal(t, int64(31), *item.ShipmentID())

	methodRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSaveShipmentCommandHandler_Handle_RemovesSupersededExpense(t *testing.T) {
	ctx := t.Context()
	o, group := groupedOrder(t, pricedSnapshot(t, 7, 490))

	stale, err := shipment.RestoreExpense(40, shipment.ExpenseTypeShipment, "Express", 1, decimal.NewFromInt(19))
	require.NoError(t, err)
	stale.SetShipment(group.Shipment())
	require.NoError(t, o.AddExpense(stale))

	cmd, err := commands.NewSaveShipmentCommand(o, group)
	require.NoError(t, err)

	methodRepo := new(MockMethodRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)

	methodRepo.On("FindByID", mock.Anything, int64(7)).Return(fullMethod(t, 7), nil).Once()
	shipmentRepo.On("Save", mock.Anything, o.ID(), group.Shipment()).
		Run(func(args mock.Arguments) {
			args.Get(2).(*shipment.Shipment).SetID(31)
		}).Return(nil).Once()
	shipmentRepo.On("DeleteExpense", mock.Anything, int64(40)).Return(nil).Once()
	shipmentRepo.On("SaveExpense", mock.Anything, o.ID(), mock.AnythingOfType("*shipment.Expense")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*shipment.Expense).SetID(55)
		}).Return(nil).Once()
	shipmentRepo.On("UpdateItemShipment", mock.Anything, int64(11), int64(31)).Return(nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MethodRepository").Return(methodRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, o.ShipmentExpenses(), 1)
	require.NotNil(t, o.ShipmentExpenses()[0].ID())
	assert.Equal(t, int64(55), *o.ShipmentExpenses()[0].ID())

	shipmentRepo.AssertExpectations(t)
}

func TestSaveShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SaveShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewSaveShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSaveShipmentCommandHandler_Handle_MissingPriceRollsBack(t *testing.T) {
	ctx := t.Context()
	o, group := groupedOrder(t, fullMethod(t, 7)) // snapshot without resolved price
	cmd, err := commands.NewSaveShipmentCommand(o, group)
	require.NoError(t, err)

	methodRepo := new(MockMethodRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)

	methodRepo.On("FindByID", mock.Anything, int64(7)).Return(fullMethod(t, 7), nil).Once()
	shipmentRepo.On("Save", mock.Anything, o.ID(), group.Shipment()).Return(nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MethodRepository").Return(methodRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestSaveShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	o, group := groupedOrder(t, pricedSnapshot(t, 7, 490))
	cmd, err := commands.NewSaveShipmentCommand(o, group)
	require.NoError(t, err)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSaveShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
