package diff

import (
	"fmt"

	"github.com/quotienthq/quotient/types"
)

// Summary is the document-level rollup of a VersionDiff, consumed by
// badge-style UI. Pure data; recompute freely.
type Summary struct {
	Added    int
	Deleted  int
	Modified int
	Settings int

	TotalChange     float64
	ItemCountChange int
}

// Aggregate derives a Summary from a computed diff.
func Aggregate(d types.VersionDiff) Summary {
	return Summary{
		Added:           len(d.AddedItems),
		Deleted:         len(d.DeletedItems),
		Modified:        len(d.ModifiedItems),
		Settings:        len(d.SettingsChanges),
		TotalChange:     d.TotalChange,
		ItemCountChange: d.ItemCountChange,
	}
}

// HasChanges reports whether the diff contains any change at all.
func (s Summary) HasChanges() bool {
	return s.Added > 0 || s.Deleted > 0 || s.Modified > 0 || s.Settings > 0
}

// Badges formats the non-zero counts as short display strings, in the
// fixed order added, deleted, modified, settings.
func (s Summary) Badges() []string {
	var badges []string
	if s.Added > 0 {
		badges = append(badges, fmt.Sprintf("%d added", s.Added))
	}
	if s.Deleted > 0 {
		badges = append(badges, fmt.Sprintf("%d deleted", s.Deleted))
	}
	if s.Modified > 0 {
		badges = append(badges, fmt.Sprintf("%d modified", s.Modified))
	}
	if s.Settings > 0 {
		badges = append(badges, fmt.Sprintf("%d settings", s.Settings))
	}
	return badges
}
