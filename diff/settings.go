package diff

import "github.com/quotienthq/quotient/types"

// settingsFields maps each diffed settings scalar to its display label.
var settingsFields = []struct {
	field string
	label string
	get   func(types.Settings) any
}{
	{"discountType", "Discount Type", func(s types.Settings) any { return s.DiscountType }},
	{"discountValue", "Discount", func(s types.Settings) any { return s.DiscountValue }},
	{"gstEnabled", "GST", func(s types.Settings) any { return s.GSTEnabled }},
	{"gstRate", "GST Rate", func(s types.Settings) any { return s.GSTRate }},
	{"paidAmount", "Paid Amount", func(s types.Settings) any { return s.PaidAmount }},
}

func compareSettings(from, to types.Settings) []types.SettingsChange {
	changes := []types.SettingsChange{}
	for _, spec := range settingsFields {
		oldVal, newVal := spec.get(from), spec.get(to)
		if oldVal == newVal {
			continue
		}
		changes = append(changes, types.SettingsChange{
			Field:    spec.field,
			Label:    spec.label,
			OldValue: oldVal,
			NewValue: newVal,
		})
	}
	return changes
}
