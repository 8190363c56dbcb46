package formats

import (
	"fmt"
	"strings"

	"github.com/quotienthq/quotient/diff"
	"github.com/quotienthq/quotient/types"
)

// Markdown renders reports suitable for pasting into notes or review
// comments: headings per change class, tables for field changes.
var Markdown = &ReportFormat{
	Name:      "markdown",
	Extension: ".md",
	RenderDiff: func(d types.VersionDiff) (string, error) {
		var b strings.Builder

		fmt.Fprintf(&b, "# Version %d → %d\n\n", d.FromVersion, d.ToVersion)

		summary := diff.Aggregate(d)
		if !summary.HasChanges() {
			b.WriteString("No changes.\n")
			return b.String(), nil
		}

		fmt.Fprintf(&b, "**Total change:** %+.2f  \n", d.TotalChange)
		fmt.Fprintf(&b, "**Item count change:** %+d\n\n", d.ItemCountChange)

		writeSection := func(heading string, items []types.ItemChange) {
			if len(items) == 0 {
				return
			}
			fmt.Fprintf(&b, "## %s\n\n", heading)
			for _, c := range items {
				fmt.Fprintf(&b, "- **%s**", c.Item.Name)
				if c.Location != "" {
					fmt.Fprintf(&b, " _(%s)_", c.Location)
				}
				b.WriteString("\n")
				for _, fc := range c.FieldChanges {
					fmt.Fprintf(&b, "  - %s: %s → %s\n",
						fc.Field, formatValue(fc.OldValue), formatValue(fc.NewValue))
				}
			}
			b.WriteString("\n")
		}
		writeSection("Added", d.AddedItems)
		writeSection("Deleted", d.DeletedItems)
		writeSection("Modified", d.ModifiedItems)

		if len(d.SettingsChanges) > 0 {
			b.WriteString("## Settings\n\n")
			b.WriteString("| Setting | Old | New |\n|---|---|---|\n")
			for _, sc := range d.SettingsChanges {
				fmt.Fprintf(&b, "| %s | %s | %s |\n",
					sc.Label, formatValue(sc.OldValue), formatValue(sc.NewValue))
			}
			b.WriteString("\n")
		}

		return b.String(), nil
	},
	RenderDocument: func(doc types.Document) (string, error) {
		var b strings.Builder

		title := doc.Client.Name
		if title == "" {
			title = "Quotation"
		}
		fmt.Fprintf(&b, "# %s\n\n", title)
		if doc.Meta.Number != "" {
			fmt.Fprintf(&b, "Quotation %s, %s\n\n", doc.Meta.Number, doc.Meta.Date)
		}

		writeMarkdownRows(&b, doc.MainItems)
		if len(doc.AdditionalItems) > 0 {
			b.WriteString("## Additional items\n\n")
			writeMarkdownRows(&b, doc.AdditionalItems)
		}

		fmt.Fprintf(&b, "**Grand total:** %.2f\n", doc.GrandTotal())
		return b.String(), nil
	},
}

func writeMarkdownRows(b *strings.Builder, rows []types.Row) {
	for _, r := range rows {
		switch r.Kind {
		case types.KindFloor:
			fmt.Fprintf(b, "## %s\n\n", r.Name)
		case types.KindRoom:
			fmt.Fprintf(b, "### %s\n\n", r.Name)
		default:
			fmt.Fprintf(b, "- %s", r.Name)
			if r.Total != nil {
				fmt.Fprintf(b, ": %.2f", *r.Total)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

func init() {
	if err := Register(Markdown); err != nil {
		panic(fmt.Sprintf("failed to register markdown format: %v", err))
	}
}
