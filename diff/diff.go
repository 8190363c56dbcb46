// Package diff computes the structural difference between two document
// snapshots: row-level added/deleted/modified classification with
// field-level detail, plus settings changes. Everything here is pure
// and defensive; malformed snapshots are normalized, never rejected.
package diff

import (
	"github.com/quotienthq/quotient/internal/normalize"
	"github.com/quotienthq/quotient/types"
	"github.com/shopspring/decimal"
)

// Snapshot is the minimal view of a document the engine compares:
// both row sections and the settings scalars.
type Snapshot struct {
	MainItems       []types.Row
	AdditionalItems []types.Row
	Settings        types.Settings
}

// DocumentSnapshot adapts a document for comparison.
func DocumentSnapshot(d types.Document) Snapshot {
	normalize.Document(&d)
	return Snapshot{
		MainItems:       d.MainItems,
		AdditionalItems: d.AdditionalItems,
		Settings:        d.Settings,
	}
}

// Compare diffs two snapshots, from -> to. Rows are matched by id,
// independently within each section: a row that moved between sections
// is reported as a deletion in one and an addition in the other.
// Compare(a, a) yields an empty diff; Compare(a, b) and Compare(b, a)
// mirror each other, with added and deleted swapped and field changes'
// old/new values exchanged.
func Compare(from, to Snapshot) types.VersionDiff {
	d := types.VersionDiff{
		AddedItems:      []types.ItemChange{},
		DeletedItems:    []types.ItemChange{},
		ModifiedItems:   []types.ItemChange{},
		SettingsChanges: []types.SettingsChange{},
	}

	compareSection(&d, types.SectionMain, from.MainItems, to.MainItems)
	compareSection(&d, types.SectionAdditional, from.AdditionalItems, to.AdditionalItems)
	d.SettingsChanges = compareSettings(from.Settings, to.Settings)

	return d
}

// CompareVersions diffs two stored versions and fills in the version
// metadata and aggregate deltas. The aggregates come from each
// version's stored GrandTotal/ItemCount, not from recomputation, so a
// diff over legacy data reflects what the versions recorded.
func CompareVersions(from, to types.Version) types.VersionDiff {
	normalize.Version(&from)
	normalize.Version(&to)

	d := Compare(snapshotOf(from), snapshotOf(to))
	d.FromVersion = from.Number
	d.ToVersion = to.Number
	d.FromDate = from.Date
	d.ToDate = to.Date
	d.TotalChange = decimal.NewFromFloat(to.GrandTotal).
		Sub(decimal.NewFromFloat(from.GrandTotal)).
		Round(2).InexactFloat64()
	d.ItemCountChange = to.ItemCount - from.ItemCount
	return d
}

func snapshotOf(v types.Version) Snapshot {
	return Snapshot{
		MainItems:       v.MainItems,
		AdditionalItems: v.AdditionalItems,
		Settings:        v.Settings,
	}
}

func compareSection(d *types.VersionDiff, section types.Section, fromRows, toRows []types.Row) {
	fromByID := indexByID(fromRows)
	toByID := indexByID(toRows)

	// Added: in to, not in from. Location is derived from the row's
	// position in the snapshot it came from, so walk the to rows.
	for i, row := range toRows {
		if _, ok := fromByID[row.ID]; ok {
			continue
		}
		d.AddedItems = append(d.AddedItems, types.ItemChange{
			Type:     types.ChangeAdded,
			Item:     row.Clone(),
			Section:  section,
			Location: location(toRows, i),
		})
	}

	// Deleted: in from, not in to. The row no longer exists in the to
	// snapshot, so its breadcrumb comes from the from rows.
	for i, row := range fromRows {
		if _, ok := toByID[row.ID]; ok {
			continue
		}
		d.DeletedItems = append(d.DeletedItems, types.ItemChange{
			Type:     types.ChangeDeleted,
			Item:     row.Clone(),
			Section:  section,
			Location: location(fromRows, i),
		})
	}

	// Modified: present in both with at least one differing field.
	for i, toRow := range toRows {
		fromIdx, ok := fromByID[toRow.ID]
		if !ok {
			continue
		}
		fromRow := fromRows[fromIdx]
		changes := fieldChanges(fromRow, toRow)
		if len(changes) == 0 {
			continue
		}
		old := fromRow.Clone()
		d.ModifiedItems = append(d.ModifiedItems, types.ItemChange{
			Type:         types.ChangeModified,
			Item:         toRow.Clone(),
			OldItem:      &old,
			Section:      section,
			Location:     location(toRows, i),
			FieldChanges: changes,
		})
	}
}

func indexByID(rows []types.Row) map[string]int {
	byID := make(map[string]int, len(rows))
	for i, r := range rows {
		byID[r.ID] = i
	}
	return byID
}

// location walks backward from the row at idx to the nearest preceding
// room and floor headers, producing a breadcrumb like
// "Ground Floor > Kitchen". Header rows themselves get the breadcrumb
// of their enclosing scope.
func location(rows []types.Row, idx int) string {
	var floor, room string
	for i := idx - 1; i >= 0; i-- {
		switch rows[i].Kind {
		case types.KindRoom:
			if room == "" && floor == "" {
				room = rows[i].Name
			}
		case types.KindFloor:
			floor = rows[i].Name
		}
		if floor != "" {
			break
		}
	}
	switch {
	case floor != "" && room != "":
		return floor + " > " + room
	case floor != "":
		return floor
	default:
		return room
	}
}
