package order_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id int64, sku string) *shipment.Item {
	t.Helper()

	item, err := shipment.NewItem(id, sku, sku, 1)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	items := []*shipment.Item{mustItem(t, 1, "SKU-1"), mustItem(t, 2, "SKU-2")}

	o, err := order.NewOrder(kernel.NewUUID(), "DE--7", 1, "EUR", shipment.PriceModeGross, items)

	require.NoError(t, err)
	assert.NoError(t, o.Validate())
	assert.Equal(t, "DE--7", o.OrderRef())
	assert.Equal(t, "EUR", o.CurrencyCode())
	assert.Equal(t, shipment.PriceModeGross, o.PriceMode())
	assert.Len(t, o.Items(), 2)
	assert.Empty(t, o.ShipmentGroups())
}

func TestNewOrder_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		id           kernel.UUID
		orderRef     string
		currencyCode string
		priceMode    shipment.PriceMode
	}{
		{"empty id", kernel.UUID{}, "DE--7", "EUR", shipment.PriceModeGross},
		{"empty orderRef", kernel.NewUUID(), "", "EUR", shipment.PriceModeGross},
		{"empty currency", kernel.NewUUID(), "DE--7", "", shipment.PriceModeGross},
		{"unknown price mode", kernel.NewUUID(), "DE--7", "EUR", shipment.PriceModeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrder(tt.id, tt.orderRef, 1, tt.currencyCode, tt.priceMode, nil)
			assert.Error(t, err)
		})
	}
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order

	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ShipmentExpenses(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "DE--7", 1, "EUR", shipment.PriceModeGross, nil)
	require.NoError(t, err)

	addr, err := shipment.NewAddress("Julie-Wolfthorn-Str. 1", "", "Berlin", "", "10115", "DE")
	require.NoError(t, err)
	s := shipment.NewShipment(nil, &addr, "DHL", nil)

	shippingExpense, err := shipment.NewShipmentExpense("Express", decimal.NewFromInt(19), s)
	require.NoError(t, err)
	discount, err := shipment.RestoreExpense(5, "DISCOUNT_EXPENSE_TYPE", "Summer sale", 1, decimal.Zero)
	require.NoError(t, err)

	require.NoError(t, o.AddExpense(shippingExpense))
	require.NoError(t, o.AddExpense(discount))

	assert.Len(t, o.Expenses(), 2)
	require.Len(t, o.ShipmentExpenses(), 1)
	assert.Equal(t, "Express", o.ShipmentExpenses()[0].Name())
}

func TestOrder_AddExpense_RejectsNotConstructed(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "DE--7", 1, "EUR", shipment.PriceModeGross, nil)
	require.NoError(t, err)

	assert.Error(t, o.AddExpense(&shipment.Expense{}))
}

func TestNewQuote(t *testing.T) {
	q, err := order.NewQuote(1, "EUR", shipment.PriceModeNet, []*shipment.Item{mustItem(t, 1, "SKU-1")})

	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.Equal(t, shipment.PriceModeNet, q.PriceMode())
	assert.Len(t, q.Items(), 1)
}

func TestNewQuote_Invalid(t *testing.T) {
	_, err := order.NewQuote(1, "", shipment.PriceModeNet, nil)
	assert.Error(t, err)

	_, err = order.NewQuote(1, "EUR", shipment.PriceModeUnknown, nil)
	assert.Error(t, err)
}
