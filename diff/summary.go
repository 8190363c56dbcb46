package diff

import "github.com/quotienthq/quotient/types"

// summaryFields is the cheap inline summary set recorded with each
// saved version: enough for a "what changed" badge without walking the
// row lists. The full structural diff stays on-demand.
var summaryFields = []struct {
	field string
	label string
	get   func(types.Version) any
}{
	{"grandTotal", "Grand Total", func(v types.Version) any { return v.GrandTotal }},
	{"itemCount", "Items", func(v types.Version) any { return v.ItemCount }},
	{"clientName", "Client", func(v types.Version) any { return v.Client.Name }},
	{"discount", "Discount", func(v types.Version) any { return v.Settings.DiscountValue }},
	{"gstEnabled", "GST", func(v types.Version) any { return v.Settings.GSTEnabled }},
}

// SummaryChanges compares the summary set of two versions. Used by the
// version store at save time against the immediately preceding version.
func SummaryChanges(from, to types.Version) []types.SummaryChange {
	var changes []types.SummaryChange
	for _, spec := range summaryFields {
		oldVal, newVal := spec.get(from), spec.get(to)
		if oldVal == newVal {
			continue
		}
		changes = append(changes, types.SummaryChange{
			Field:    spec.field,
			Label:    spec.label,
			OldValue: oldVal,
			NewValue: newVal,
		})
	}
	return changes
}
