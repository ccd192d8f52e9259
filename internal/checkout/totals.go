package checkout

import "github.com/shopspring/decimal"

// Shipping and tax schedule. Shipping is waived above the free-shipping
// threshold; both charges are zero for an empty basket.
var (
	flatShipping      = decimal.NewFromInt(20)
	flatTax           = decimal.NewFromInt(20)
	freeShippingAbove = decimal.NewFromInt(1500)
)

// Totals are the derived money amounts shown on the order summary and sent
// with the order payload.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives the order summary for a basket.
func ComputeTotals(b Basket) Totals {
	subtotal := decimal.Zero
	for _, it := range b.Items() {
		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
	}

	shipping := decimal.Zero
	tax := decimal.Zero
	if !b.Empty() {
		if subtotal.LessThanOrEqual(freeShippingAbove) {
			shipping = flatShipping
		}
		tax = flatTax
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
