package siteconfig

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 0, ClampQuantity(-5))
	assert.Equal(t, 0, ClampQuantity(0))
	assert.Equal(t, 7, ClampQuantity(7))
	assert.Equal(t, MaxQuantityPerItem, ClampQuantity(MaxQuantityPerItem))
	assert.Equal(t, MaxQuantityPerItem, ClampQuantity(100))
}

func TestOrderTotal(t *testing.T) {
	price := decimal.NewFromInt(18)

	total := OrderTotal([]LineItem{
		{Price: price, Quantity: 2},
		{Price: price, Quantity: 1},
	})
	assert.Equal(t, "$54.00", FormatUSD(total))
}

func TestOrderTotalClampsQuantities(t *testing.T) {
	price := decimal.NewFromFloat(10.50)

	total := OrderTotal([]LineItem{
		{Price: price, Quantity: 500},
		{Price: price, Quantity: -3},
	})
	// 500 clamps to 20, -3 contributes nothing.
	assert.Equal(t, "$210.00", FormatUSD(total))
}

func TestOrderTotalEmpty(t *testing.T) {
	assert.Equal(t, "$0.00", FormatUSD(OrderTotal(nil)))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$18.00", FormatUSD(decimal.NewFromInt(18)))
	assert.Equal(t, "$7.50", FormatUSD(decimal.NewFromFloat(7.5)))
	assert.Equal(t, "$0.99", FormatUSD(decimal.NewFromFloat(0.99)))
}
