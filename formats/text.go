package formats

import (
	"fmt"
	"strings"

	"github.com/quotienthq/quotient/diff"
	"github.com/quotienthq/quotient/types"
)

// Text is the default console format: aligned, unadorned lines.
var Text = &ReportFormat{
	Name:      "text",
	Extension: ".txt",
	RenderDiff: func(d types.VersionDiff) (string, error) {
		var b strings.Builder

		fmt.Fprintf(&b, "Version %d -> %d", d.FromVersion, d.ToVersion)
		if d.FromDate != "" || d.ToDate != "" {
			fmt.Fprintf(&b, "  (%s -> %s)", d.FromDate, d.ToDate)
		}
		b.WriteString("\n")

		summary := diff.Aggregate(d)
		if !summary.HasChanges() {
			b.WriteString("No changes.\n")
			return b.String(), nil
		}
		fmt.Fprintf(&b, "Total change: %+.2f, item count change: %+d\n",
			d.TotalChange, d.ItemCountChange)
		b.WriteString(strings.Join(summary.Badges(), ", "))
		b.WriteString("\n\n")

		writeItems := func(heading string, items []types.ItemChange) {
			if len(items) == 0 {
				return
			}
			b.WriteString(heading + "\n")
			for _, c := range items {
				fmt.Fprintf(&b, "  %s", c.Item.Name)
				if c.Location != "" {
					fmt.Fprintf(&b, " (%s)", c.Location)
				}
				if c.Section == types.SectionAdditional {
					b.WriteString(" [additional]")
				}
				b.WriteString("\n")
				for _, fc := range c.FieldChanges {
					fmt.Fprintf(&b, "    %s: %s -> %s\n",
						fc.Field, formatValue(fc.OldValue), formatValue(fc.NewValue))
				}
			}
			b.WriteString("\n")
		}
		writeItems("Added:", d.AddedItems)
		writeItems("Deleted:", d.DeletedItems)
		writeItems("Modified:", d.ModifiedItems)

		if len(d.SettingsChanges) > 0 {
			b.WriteString("Settings:\n")
			for _, sc := range d.SettingsChanges {
				fmt.Fprintf(&b, "  %s: %s -> %s\n",
					sc.Label, formatValue(sc.OldValue), formatValue(sc.NewValue))
			}
		}

		return b.String(), nil
	},
	RenderDocument: func(doc types.Document) (string, error) {
		var b strings.Builder

		if doc.Client.Name != "" {
			fmt.Fprintf(&b, "Client: %s\n", doc.Client.Name)
		}
		if doc.Meta.Number != "" {
			fmt.Fprintf(&b, "Quotation: %s  %s\n", doc.Meta.Number, doc.Meta.Date)
		}
		b.WriteString("\n")

		writeRows(&b, "Items", doc.MainItems, "")
		writeRows(&b, "Additional items", doc.AdditionalItems, "")

		fmt.Fprintf(&b, "Subtotal:    %.2f\n", doc.Subtotal())
		fmt.Fprintf(&b, "Grand total: %.2f\n", doc.GrandTotal())
		if doc.Settings.PaidAmount > 0 {
			fmt.Fprintf(&b, "Balance due: %.2f\n", doc.BalanceDue())
		}
		return b.String(), nil
	},
}

func writeRows(b *strings.Builder, heading string, rows []types.Row, indent string) {
	if len(rows) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for _, r := range rows {
		switch r.Kind {
		case types.KindFloor:
			fmt.Fprintf(b, "%s%s\n", indent, r.Name)
		case types.KindRoom:
			fmt.Fprintf(b, "%s  %s\n", indent, r.Name)
		default:
			fmt.Fprintf(b, "%s    %s", indent, r.Name)
			if r.Total != nil {
				fmt.Fprintf(b, "  %.2f", *r.Total)
			}
			if r.Highlighted {
				b.WriteString("  *")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

// formatValue renders a field value for display; nil means the field
// was unset on that side.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "(unset)"
	case float64:
		return fmt.Sprintf("%g", val)
	case string:
		if val == "" {
			return `""`
		}
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func init() {
	if err := Register(Text); err != nil {
		panic(fmt.Sprintf("failed to register text format: %v", err))
	}
}
