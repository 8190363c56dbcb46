package types

import "github.com/shopspring/decimal"

// Recalculate fills the derived numeric fields of an item row from its
// authored ones: sqft from height x width, amount from sqft x rate (or
// plain rate when the row has no dimensions), total from amount x qty
// (qty defaulting to 1). Edit actions call this so the derived fields
// are never independently authored. Non-item rows are left untouched.
func (r *Row) Recalculate() {
	if !r.IsItem() {
		return
	}

	if r.Height != nil && r.Width != nil {
		sqft := decimal.NewFromFloat(*r.Height).
			Mul(decimal.NewFromFloat(*r.Width)).
			Round(2).InexactFloat64()
		r.Sqft = &sqft
	}

	if r.Rate != nil {
		var amount decimal.Decimal
		if r.Sqft != nil {
			amount = decimal.NewFromFloat(*r.Sqft).Mul(decimal.NewFromFloat(*r.Rate))
		} else {
			amount = decimal.NewFromFloat(*r.Rate)
		}
		v := amount.Round(2).InexactFloat64()
		r.Amount = &v
	}

	if r.Amount != nil {
		qty := decimal.NewFromInt(1)
		if r.Qty != nil {
			qty = decimal.NewFromFloat(*r.Qty)
		}
		total := decimal.NewFromFloat(*r.Amount).Mul(qty).Round(2).InexactFloat64()
		r.Total = &total
	}
}
