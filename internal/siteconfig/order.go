package siteconfig

import "github.com/shopspring/decimal"

// MaxQuantityPerItem caps a single line item; storefronts clamp the same way.
const MaxQuantityPerItem = 20

// ClampQuantity forces a requested quantity into [0, MaxQuantityPerItem].
func ClampQuantity(qty int) int {
	if qty < 0 {
		return 0
	}
	if qty > MaxQuantityPerItem {
		return MaxQuantityPerItem
	}
	return qty
}

// LineItem is one product/quantity pair in a cart.
type LineItem struct {
	Price    decimal.Decimal
	Quantity int
}

// OrderTotal sums quantity times price across line items, clamping each
// quantity first. Zero-quantity lines contribute nothing.
func OrderTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		qty := ClampQuantity(item.Quantity)
		if qty == 0 {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// FormatUSD renders a dollar amount with two decimal places, e.g. "$54.00".
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
