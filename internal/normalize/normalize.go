// Package normalize repairs malformed snapshots before they reach the
// diff engine or the history stack. Legacy persisted data can carry nil
// row sections; callers get empty slices instead so downstream code
// never branches on nil.
package normalize

import "github.com/quotienthq/quotient/types"

// DefaultHistoryCap is the bounded undo/redo stack size used when a
// caller supplies no cap, or a nonsensical one.
const DefaultHistoryCap = 50

// Document ensures both row sections are non-nil. Mutates in place.
func Document(d *types.Document) {
	if d.MainItems == nil {
		d.MainItems = []types.Row{}
	}
	if d.AdditionalItems == nil {
		d.AdditionalItems = []types.Row{}
	}
}

// Version ensures the embedded document snapshot of a version is
// well-formed.
func Version(v *types.Version) {
	Document(&v.Document)
}

// HistoryCap clamps a configured history cap to a usable value.
func HistoryCap(n int) int {
	if n < 1 {
		return DefaultHistoryCap
	}
	return n
}
