package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quotienthq/quotient/types"
)

func TestCloneIndependence(t *testing.T) {
	doc := types.NewDocument()
	doc.Client.Name = "Original"
	row := types.NewRow(types.KindItem, "TV Unit")
	row.Rate = types.Float(80000)
	row.Qty = types.Float(1)
	row.Recalculate()
	doc.MainItems = append(doc.MainItems, row)
	doc.Settings.BankAccounts = []types.BankAccount{{BankName: "HDFC"}}

	clone := doc.Clone()
	if diff := cmp.Diff(doc, clone); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}

	// Mutations through the original must not show in the clone.
	doc.Client.Name = "Changed"
	*doc.MainItems[0].Rate = 1
	doc.MainItems[0].Name = "Changed"
	doc.Settings.BankAccounts[0].BankName = "Changed"

	if clone.Client.Name != "Original" {
		t.Error("clone shares client with original")
	}
	if *clone.MainItems[0].Rate != 80000 {
		t.Error("clone shares row numeric pointers with original")
	}
	if clone.MainItems[0].Name != "TV Unit" {
		t.Error("clone shares row slice with original")
	}
	if clone.Settings.BankAccounts[0].BankName != "HDFC" {
		t.Error("clone shares bank accounts with original")
	}
}

func TestCloneNormalizesNilSections(t *testing.T) {
	var doc types.Document
	clone := doc.Clone()
	if clone.MainItems == nil || clone.AdditionalItems == nil {
		t.Error("clone should produce non-nil row sections")
	}
}

func TestRecalculate(t *testing.T) {
	tests := []struct {
		name string
		row  types.Row
		sqft *float64
		amt  *float64
		tot  *float64
	}{
		{
			name: "dimensions and rate",
			row: types.Row{
				Kind:   types.KindItem,
				Height: types.Float(8),
				Width:  types.Float(10),
				Rate:   types.Float(500),
				Qty:    types.Float(1),
			},
			sqft: types.Float(80),
			amt:  types.Float(40000),
			tot:  types.Float(40000),
		},
		{
			name: "rate only, qty 2",
			row: types.Row{
				Kind: types.KindItem,
				Rate: types.Float(12000),
				Qty:  types.Float(2),
			},
			amt: types.Float(12000),
			tot: types.Float(24000),
		},
		{
			name: "no rate leaves derived fields unset",
			row:  types.Row{Kind: types.KindItem, Name: "placeholder"},
		},
		{
			name: "header rows untouched",
			row:  types.Row{Kind: types.KindRoom, Rate: types.Float(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.row
			r.Recalculate()
			if r.Kind == types.KindRoom {
				if r.Amount != nil || r.Total != nil {
					t.Error("header rows must not gain derived fields")
				}
				return
			}
			checkPtr(t, "sqft", tt.sqft, r.Sqft)
			checkPtr(t, "amount", tt.amt, r.Amount)
			checkPtr(t, "total", tt.tot, r.Total)
		})
	}
}

func checkPtr(t *testing.T, field string, want, got *float64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s: expected unset, got %v", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s: expected %v, got unset", field, *want)
	case want != nil && got != nil && *want != *got:
		t.Errorf("%s: expected %v, got %v", field, *want, *got)
	}
}

func TestTotals(t *testing.T) {
	doc := types.NewDocument()
	add := func(rate, qty float64) {
		r := types.NewRow(types.KindItem, "x")
		r.Rate = types.Float(rate)
		r.Qty = types.Float(qty)
		r.Recalculate()
		doc.MainItems = append(doc.MainItems, r)
	}
	add(1000, 1)
	add(500, 2)
	doc.AdditionalItems = append(doc.AdditionalItems, func() types.Row {
		r := types.NewRow(types.KindItem, "extra")
		r.Rate = types.Float(250)
		r.Recalculate()
		return r
	}())

	if got := doc.Subtotal(); got != 2250 {
		t.Fatalf("subtotal: expected 2250, got %v", got)
	}
	if got := doc.ItemCount(); got != 3 {
		t.Fatalf("item count: expected 3, got %v", got)
	}

	t.Run("flat discount", func(t *testing.T) {
		d := doc.Clone()
		d.Settings.DiscountType = types.DiscountFlat
		d.Settings.DiscountValue = 250
		if got := d.GrandTotal(); got != 2000 {
			t.Errorf("expected 2000, got %v", got)
		}
	})

	t.Run("percent discount with GST", func(t *testing.T) {
		d := doc.Clone()
		d.Settings.DiscountType = types.DiscountPercent
		d.Settings.DiscountValue = 10 // 2250 -> 2025
		d.Settings.GSTEnabled = true
		d.Settings.GSTRate = 18 // 2025 * 1.18 = 2389.5
		if got := d.GrandTotal(); got != 2389.5 {
			t.Errorf("expected 2389.5, got %v", got)
		}
	})

	t.Run("discount cannot push total negative", func(t *testing.T) {
		d := doc.Clone()
		d.Settings.DiscountType = types.DiscountFlat
		d.Settings.DiscountValue = 10000
		if got := d.GrandTotal(); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("balance due", func(t *testing.T) {
		d := doc.Clone()
		d.Settings.PaidAmount = 1000
		if got := d.BalanceDue(); got != 1250 {
			t.Errorf("expected 1250, got %v", got)
		}
	})

	t.Run("unset totals contribute nothing", func(t *testing.T) {
		d := doc.Clone()
		d.MainItems = append(d.MainItems, types.NewRow(types.KindItem, "no price"))
		if got := d.Subtotal(); got != 2250 {
			t.Errorf("expected 2250, got %v", got)
		}
	})
}
