package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistedShipment(t *testing.T, id int64, methodID int64, line1 string) *shipment.Shipment {
	t.Helper()

	addr, err := shipment.RestoreAddress(id, line1, "", "Berlin", "", "10115", "DE")
	require.NoError(t, err)
	return shipment.RestoreShipment(id, mustMethod(t, methodID, "Express"), &addr, "DHL", nil)
}

func placedOrder(t *testing.T, items ...*shipment.Item) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "DE--7", 1, "EUR", shipment.PriceModeGross, items)
	require.NoError(t, err)
	return o
}

func TestOrderShipmentHydrator_DetectLayout(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	bare := placedOrder(t)
	assert.Equal(t, services.LayoutNone, h.DetectLayout(bare, nil))

	legacy := placedOrder(t)
	legacy.SetLegacyShipment(persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1"))
	assert.Equal(t, services.LayoutLegacySingle, h.DetectLayout(legacy, nil))

	item, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	single := placedOrder(t, item)
	assert.Equal(t, services.LayoutLegacySingle,
		h.DetectLayout(single, []*shipment.Shipment{persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1")}),
		"one record means one shipment for the whole order")

	item.SetShipment(persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1"))
	item.SetShipmentID(1)
	assert.Equal(t, services.LayoutMulti,
		h.DetectLayout(single, []*shipment.Shipment{persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1")}),
		"a fully hydrated order counts as item-level")

	multi := placedOrder(t)
	assert.Equal(t, services.LayoutMulti,
		h.DetectLayout(multi, []*shipment.Shipment{
			persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1"),
			persistedShipment(t, 2, 7, "Speicherstadt 1"),
		}))
}

func TestOrderShipmentHydrator_Hydrate_SingleRecordAssignsUniformly(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	itemA, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	itemB, err := shipment.NewItem(12, "SKU-B", "Product B", 1)
	require.NoError(t, err)
	o := placedOrder(t, itemA, itemB)

	s := persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1")

	unassigned, err := h.Hydrate(o, []*shipment.Shipment{s}, map[int64][]int64{})

	require.NoError(t, err)
	assert.Empty(t, unassigned, "uniform assignment leaves no item behind")
	assert.Equal(t, s, itemA.Shipment())
	assert.Equal(t, s, itemB.Shipment())
	require.NotNil(t, itemB.ShipmentID())
	assert.Equal(t, int64(1), *itemB.ShipmentID())
	require.Len(t, o.ShipmentGroups(), 1)
	assert.Len(t, o.ShipmentGroups()[0].Items(), 2)
}

func TestOrderShipmentHydrator_Hydrate_Multi(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	itemA, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	itemB, err := shipment.NewItem(12, "SKU-B", "Product B", 1)
	require.NoError(t, err)
	itemC, err := shipment.NewItem(13, "SKU-C", "Product C", 1)
	require.NoError(t, err)

	o := placedOrder(t, itemA, itemB, itemC)

	berlin := persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1")
	hamburg := persistedShipment(t, 2, 7, "Speicherstadt 1")

	unassigned, err := h.Hydrate(o, []*shipment.Shipment{berlin, hamburg}, map[int64][]int64{
		1: {11, 13},
		2: {12},
	})

	require.NoError(t, err)
	assert.Empty(t, unassigned)
	assert.Equal(t, berlin, itemA.Shipment())
	assert.Equal(t, hamburg, itemB.Shipment())
	assert.Equal(t, berlin, itemC.Shipment())
	require.NotNil(t, itemA.ShipmentID())
	assert.Equal(t, int64(1), *itemA.ShipmentID())

	require.Len(t, o.ShipmentGroups(), 2)
	assert.Len(t, o.ShipmentGroups()[0].Items(), 2)
	assert.Len(t, o.ShipmentGroups()[1].Items(), 1)
}

func TestOrderShipmentHydrator_Hydrate_LinksShipmentExpense(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	item, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	o := placedOrder(t, item)

	s := persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1")
	s.Method().SetExpenseID(55)

	expense, err := shipment.RestoreExpense(55, shipment.ExpenseTypeShipment, "Express", 1, decimal.NewFromInt(19))
	require.NoError(t, err)
	require.NoError(t, o.AddExpense(expense))

	_, err = h.Hydrate(o, []*shipment.Shipment{s}, map[int64][]int64{1: {11}})

	require.NoError(t, err)
	assert.Equal(t, s, expense.Shipment())
}

func TestOrderShipmentHydrator_Hydrate_ReportsUnassignedItems(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	itemA, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	orphan, err := shipment.NewItem(12, "SKU-B", "Product B", 1)
	require.NoError(t, err)
	o := placedOrder(t, itemA, orphan)

	berlin := persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1")
	hamburg := persistedShipment(t, 2, 7, "Speicherstadt 1")

	unassigned, err := h.Hydrate(o, []*shipment.Shipment{berlin, hamburg}, map[int64][]int64{1: {11}})

	require.NoError(t, err)
	assert.Equal(t, []int64{12}, unassigned)
	require.Len(t, o.ShipmentGroups(), 1)
	assert.Len(t, o.ShipmentGroups()[0].Items(), 1)
}

func TestOrderShipmentHydrator_Hydrate_SkipsAssignmentWhenAlreadyHydrated(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	item, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	o := placedOrder(t, item)

	current := persistedShipment(t, 1, 7, "Julie-Wolfthorn-Str. 1")
	item.SetShipment(current)
	item.SetShipmentID(1)

	stale := persistedShipment(t, 2, 7, "Speicherstadt 1")

	unassigned, err := h.Hydrate(o, []*shipment.Shipment{stale}, map[int64][]int64{2: {11}})

	require.NoError(t, err)
	assert.Empty(t, unassigned)
	assert.Equal(t, current, item.Shipment(), "hydrated item should keep its shipment")
	require.Len(t, o.ShipmentGroups(), 1)
}

func TestOrderShipmentHydrator_Hydrate_LegacySingle(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	itemA, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	itemB, err := shipment.NewItem(12, "SKU-B", "Product B", 1)
	require.NoError(t, err)
	o := placedOrder(t, itemA, itemB)

	legacy := shipment.RestoreShipment(9, mustMethod(t, 7, "Express"), nil, "DHL", nil)
	addr := mustAddress(t, "Julie-Wolfthorn-Str. 1")
	o.SetLegacyShipment(legacy)
	o.SetLegacyShippingAddress(&addr)

	unassigned, err := h.Hydrate(o, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, unassigned)
	assert.Equal(t, legacy, itemA.Shipment())
	assert.Equal(t, legacy, itemB.Shipment())
	assert.Equal(t, &addr, legacy.ShippingAddress())
	assert.Len(t, o.ShipmentGroups(), 1)
}

func TestOrderShipmentHydrator_Hydrate_NoShipmentDataIsNoop(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	item, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	o := placedOrder(t, item)

	unassigned, err := h.Hydrate(o, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, unassigned)
	assert.Nil(t, item.Shipment())
	assert.Empty(t, o.ShipmentGroups())
}

func TestOrderShipmentHydrator_Backfill(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	item, err := shipment.NewItem(11, "SKU-A", "Product A", 1)
	require.NoError(t, err)
	o := placedOrder(t, item)

	addr := mustAddress(t, "Julie-Wolfthorn-Str. 1")
	legacy := shipment.NewShipment(mustMethod(t, 7, "Express"), nil, "DHL", nil)
	o.SetLegacyShipment(legacy)
	o.SetLegacyShippingAddress(&addr)

	s, err := h.Backfill(o)

	require.NoError(t, err)
	assert.Equal(t, legacy, s)
	assert.Equal(t, legacy, item.Shipment())
	require.Len(t, o.ShipmentGroups(), 1)
	assert.Equal(t, o.ShipmentGroups()[0].Hash(), item.GroupHash())
}

func TestOrderShipmentHydrator_Backfill_RequiresLegacyShipment(t *testing.T) {
	h := services.NewOrderShipmentHydrator(services.NewItemsGrouper())

	o := placedOrder(t)

	_, err := h.Backfill(o)

	assert.Error(t, err)
}
