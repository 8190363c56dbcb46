package types

import "github.com/shopspring/decimal"

// Subtotal sums the Total of every item row across both sections.
// Unset totals contribute nothing. Money arithmetic goes through
// decimal so repeated recomputation cannot drift.
func (d Document) Subtotal() float64 {
	sum := decimal.Zero
	for _, section := range [][]Row{d.MainItems, d.AdditionalItems} {
		for _, r := range section {
			if !r.IsItem() || r.Total == nil {
				continue
			}
			sum = sum.Add(decimal.NewFromFloat(*r.Total))
		}
	}
	return sum.Round(2).InexactFloat64()
}

// GrandTotal applies the document's discount and GST settings to the
// subtotal. Discount is applied first, then GST on the discounted
// amount. A negative result is clamped to zero.
func (d Document) GrandTotal() float64 {
	total := decimal.NewFromFloat(d.Subtotal())

	switch d.Settings.DiscountType {
	case DiscountFlat:
		total = total.Sub(decimal.NewFromFloat(d.Settings.DiscountValue))
	case DiscountPercent:
		pct := decimal.NewFromFloat(d.Settings.DiscountValue).Div(decimal.NewFromInt(100))
		total = total.Sub(total.Mul(pct))
	}
	if total.IsNegative() {
		total = decimal.Zero
	}

	if d.Settings.GSTEnabled {
		rate := decimal.NewFromFloat(d.Settings.GSTRate).Div(decimal.NewFromInt(100))
		total = total.Add(total.Mul(rate))
	}

	return total.Round(2).InexactFloat64()
}

// BalanceDue is the grand total less the recorded paid amount.
func (d Document) BalanceDue() float64 {
	return decimal.NewFromFloat(d.GrandTotal()).
		Sub(decimal.NewFromFloat(d.Settings.PaidAmount)).
		Round(2).InexactFloat64()
}

// ItemCount counts item rows in both sections. Floor and room headers
// are structure, not items, and are excluded.
func (d Document) ItemCount() int {
	n := 0
	for _, section := range [][]Row{d.MainItems, d.AdditionalItems} {
		for _, r := range section {
			if r.IsItem() {
				n++
			}
		}
	}
	return n
}
