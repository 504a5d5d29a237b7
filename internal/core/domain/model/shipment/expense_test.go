package shipment_test

import (
	"testing"

	"shipping/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExpense(t *testing.T) *shipment.Expense {
	t.Helper()

	addr := mustAddress(t, "Julie-Wolfthorn-Str. 1")
	s := shipment.NewShipment(mustMethod(t, 7, "Express"), &addr, "DHL", nil)

	e, err := shipment.NewShipmentExpense("Express", decimal.NewFromInt(19), s)
	require.NoError(t, err)
	return e
}

func TestNewShipmentExpense(t *testing.T) {
	e := newTestExpense(t)

	assert.NoError(t, e.Validate())
	assert.Equal(t, shipment.ExpenseTypeShipment, e.Type())
	assert.True(t, e.IsShipmentExpense())
	assert.Equal(t, 1, e.Quantity())
	assert.Nil(t, e.ID())
}

func TestNewShipmentExpense_RequiresNameAndShipment(t *testing.T) {
	addr := mustAddress(t, "Julie-Wolfthorn-Str. 1")
	s := shipment.NewShipment(nil, &addr, "", nil)

	_, err := shipment.NewShipmentExpense("", decimal.Zero, s)
	assert.Error(t, err)

	_, err = shipment.NewShipmentExpense("Express", decimal.Zero, nil)
	assert.Error(t, err)
}

func TestExpense_SetPrice_NetMode(t *testing.T) {
	e := newTestExpense(t)

	require.NoError(t, e.SetPrice(490, shipment.PriceModeNet))

	assert.Equal(t, int64(490), e.UnitPrice())
	assert.Equal(t, int64(490), e.UnitNetPrice())
	assert.Equal(t, int64(0), e.UnitGrossPrice())
	assert.Equal(t, int64(0), e.UnitPriceToPayAggregation())
}

func TestExpense_SetPrice_GrossMode(t *testing.T) {
	e := newTestExpense(t)

	require.NoError(t, e.SetPrice(490, shipment.PriceModeGross))

	assert.Equal(t, int64(490), e.UnitPrice())
	assert.Equal(t, int64(490), e.UnitGrossPrice())
	assert.Equal(t, int64(0), e.UnitNetPrice())
	assert.Equal(t, int64(0), e.UnitPriceToPayAggregation())
}

func TestExpense_SetPrice_SwitchingModesZeroesCounterpart(t *testing.T) {
	e := newTestExpense(t)

	require.NoError(t, e.SetPrice(490, shipment.PriceModeGross))
	require.NoError(t, e.SetPrice(350, shipment.PriceModeNet))

	assert.Equal(t, int64(350), e.UnitNetPrice())
	assert.Equal(t, int64(0), e.UnitGrossPrice())
}

func TestExpense_SetPrice_RejectsUnknownMode(t *testing.T) {
	e := newTestExpense(t)

	assert.Error(t, e.SetPrice(490, shipment.PriceModeUnknown))
}

func TestExpense_SanitizeSumValues(t *testing.T) {
	e := newTestExpense(t)
	require.NoError(t, e.SetPrice(490, shipment.PriceModeGross))

	e.SanitizeSumValues()

	assert.Equal(t, int64(490), e.SumPrice())
	assert.Equal(t, int64(490), e.SumGrossPrice())
	assert.Equal(t, int64(0), e.SumNetPrice())
}

func TestExpense_Validate_NotConstructed(t *testing.T) {
	var e shipment.Expense

	assert.ErrorIs(t, e.Validate(), shipment.ErrExpenseIsNotConstructed)
}
