package diff

import "github.com/quotienthq/quotient/types"

// fieldSpec extracts one comparable field from a row. The label doubles
// as the FieldChange.Field value, which the UI renders verbatim.
type fieldSpec struct {
	label string
	get   func(types.Row) any
}

// itemFields is the comparison set for item rows. Sqft is deliberately
// absent: it is wholly derived from height and width, which are both
// compared, so diffing it would only duplicate their signal.
var itemFields = []fieldSpec{
	{"Name", func(r types.Row) any { return r.Name }},
	{"Height", numeric(func(r types.Row) *float64 { return r.Height })},
	{"Width", numeric(func(r types.Row) *float64 { return r.Width })},
	{"Rate", numeric(func(r types.Row) *float64 { return r.Rate })},
	{"Amount", numeric(func(r types.Row) *float64 { return r.Amount })},
	{"Qty", numeric(func(r types.Row) *float64 { return r.Qty })},
	{"Total", numeric(func(r types.Row) *float64 { return r.Total })},
	{"Note", func(r types.Row) any { return r.Note }},
	{"Highlighted", func(r types.Row) any { return r.Highlighted }},
}

// headerFields is the comparison set for floor and room rows: their
// structural position is the hierarchy itself, so only the label and
// rolled-up total are user data.
var headerFields = []fieldSpec{
	{"Name", func(r types.Row) any { return r.Name }},
	{"Total", numeric(func(r types.Row) *float64 { return r.Total })},
}

// numeric dereferences an optional numeric field into a comparable
// value. nil stays nil: "never set" is distinct from "set to zero".
func numeric(get func(types.Row) *float64) func(types.Row) any {
	return func(r types.Row) any {
		p := get(r)
		if p == nil {
			return nil
		}
		return *p
	}
}

// fieldChanges lists exactly the fields whose values differ between the
// two rows, with old/new values. Empty means the rows are equal.
func fieldChanges(from, to types.Row) []types.FieldChange {
	specs := itemFields
	if !to.IsItem() {
		specs = headerFields
	}

	var changes []types.FieldChange
	for _, spec := range specs {
		oldVal, newVal := spec.get(from), spec.get(to)
		if oldVal == newVal {
			continue
		}
		changes = append(changes, types.FieldChange{
			Field:    spec.label,
			OldValue: oldVal,
			NewValue: newVal,
		})
	}
	return changes
}
