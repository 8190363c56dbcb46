package diff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quotienthq/quotient/diff"
	"github.com/quotienthq/quotient/testutil"
	"github.com/quotienthq/quotient/types"
)

// versionOf wraps a document as a stored version with computed
// aggregates, the way the version store does at save time.
func versionOf(number int, doc types.Document) types.Version {
	return types.Version{
		Number:     number,
		Date:       "2025-04-01",
		Document:   doc.Clone(),
		GrandTotal: doc.GrandTotal(),
		ItemCount:  doc.ItemCount(),
	}
}

func TestDiffIdempotence(t *testing.T) {
	doc := testutil.ShowroomDocument()
	d := diff.CompareVersions(versionOf(1, doc), versionOf(2, doc))
	testutil.AssertDiffEmpty(t, d)
}

func TestModifiedRate(t *testing.T) {
	// Rate 80000 -> 85000 with derived fields recomputed: Rate, Amount
	// and Total all register, nothing else.
	before := testutil.ShowroomDocument()
	after := before.Clone()
	row := testutil.FindRow(t, after.MainItems, testutil.TVUnitID)
	row.Rate = types.Float(85000)
	row.Recalculate()

	d := diff.CompareVersions(versionOf(1, before), versionOf(2, after))

	testutil.AssertChangeCounts(t, d, 0, 0, 1)
	change := testutil.FindChange(t, d.ModifiedItems, testutil.TVUnitID)
	if change.Type != types.ChangeModified {
		t.Errorf("expected modified, got %s", change.Type)
	}
	if change.OldItem == nil {
		t.Fatal("modified change must carry the old row")
	}
	if *change.OldItem.Rate != 80000 || *change.Item.Rate != 85000 {
		t.Errorf("old/new rate wrong: %v -> %v", *change.OldItem.Rate, *change.Item.Rate)
	}
	if n := len(change.FieldChanges); n != 3 {
		// Rate, Amount, Total all move together when recalculated.
		t.Errorf("expected 3 field changes (Rate, Amount, Total), got %d: %v", n, change.FieldChanges)
	}
	testutil.AssertFieldChange(t, change, "Rate", 80000.0, 85000.0)
	testutil.AssertFieldChange(t, change, "Total", 80000.0, 85000.0)

	if d.TotalChange != 5000 {
		t.Errorf("expected total change 5000, got %v", d.TotalChange)
	}
	if d.ItemCountChange != 0 {
		t.Errorf("expected item count change 0, got %v", d.ItemCountChange)
	}
	if change.Location != "Ground Floor > Living Room" {
		t.Errorf("unexpected location %q", change.Location)
	}
}

func TestFieldChangeCompleteness(t *testing.T) {
	// If exactly rate and total differ, fieldChanges holds exactly
	// those two entries.
	mk := func(rate, total float64) types.Document {
		doc := types.NewDocument()
		doc.MainItems = []types.Row{{
			ID:    "r1",
			Kind:  types.KindItem,
			Name:  "TV Unit",
			Rate:  types.Float(rate),
			Qty:   types.Float(1),
			Total: types.Float(total),
		}}
		return doc
	}

	d := diff.CompareVersions(versionOf(1, mk(80000, 80000)), versionOf(2, mk(85000, 85000)))

	testutil.AssertChangeCounts(t, d, 0, 0, 1)
	change := d.ModifiedItems[0]
	if n := len(change.FieldChanges); n != 2 {
		t.Fatalf("expected exactly 2 field changes, got %d: %v", n, change.FieldChanges)
	}
	testutil.AssertFieldChange(t, change, "Rate", 80000.0, 85000.0)
	testutil.AssertFieldChange(t, change, "Total", 80000.0, 85000.0)
	if d.TotalChange != 5000 {
		t.Errorf("expected total change 5000, got %v", d.TotalChange)
	}
}

func TestDeletedRow(t *testing.T) {
	before := testutil.ShowroomDocument()
	after := before.Clone()
	after.MainItems = removeRow(after.MainItems, testutil.TVUnitID)

	d := diff.CompareVersions(versionOf(2, before), versionOf(3, after))

	testutil.AssertChangeCounts(t, d, 0, 1, 0)
	change := testutil.FindChange(t, d.DeletedItems, testutil.TVUnitID)
	if change.Type != types.ChangeDeleted {
		t.Errorf("expected deleted, got %s", change.Type)
	}
	// The deleted row no longer exists in the to snapshot; its
	// breadcrumb comes from the from side.
	if change.Location != "Ground Floor > Living Room" {
		t.Errorf("unexpected location %q", change.Location)
	}
	if d.ItemCountChange != -1 {
		t.Errorf("expected item count change -1, got %v", d.ItemCountChange)
	}
}

func TestAddedRow(t *testing.T) {
	before := testutil.ShowroomDocument()
	after := before.Clone()

	bed := types.NewRow(types.KindItem, "Bed")
	bed.Rate = types.Float(60000)
	bed.Recalculate()
	after.MainItems = append(after.MainItems, bed)

	d := diff.CompareVersions(versionOf(1, before), versionOf(2, after))

	testutil.AssertChangeCounts(t, d, 1, 0, 0)
	change := testutil.FindChange(t, d.AddedItems, bed.ID)
	if change.Section != types.SectionMain {
		t.Errorf("expected main section, got %s", change.Section)
	}
	if change.Location != "First Floor > Bedroom" {
		t.Errorf("unexpected location %q", change.Location)
	}
	if d.ItemCountChange != 1 {
		t.Errorf("expected item count change 1, got %v", d.ItemCountChange)
	}
}

func TestDiffSymmetry(t *testing.T) {
	a := testutil.ShowroomDocument()
	b := a.Clone()

	// Make all three kinds of change.
	b.MainItems = removeRow(b.MainItems, testutil.SofaID)
	lamp := types.NewRow(types.KindItem, "Lamp")
	lamp.Rate = types.Float(3000)
	lamp.Recalculate()
	b.MainItems = append(b.MainItems, lamp)
	row := testutil.FindRow(t, b.MainItems, testutil.CabinetsID)
	row.Rate = types.Float(130000)
	row.Recalculate()

	ab := diff.CompareVersions(versionOf(1, a), versionOf(2, b))
	ba := diff.CompareVersions(versionOf(2, b), versionOf(1, a))

	// Every added row in one direction is deleted in the other, with
	// identical content.
	if diffStr := cmp.Diff(rowIDs(ab.AddedItems), rowIDs(ba.DeletedItems)); diffStr != "" {
		t.Errorf("added/deleted asymmetry:\n%s", diffStr)
	}
	if diffStr := cmp.Diff(rowIDs(ab.DeletedItems), rowIDs(ba.AddedItems)); diffStr != "" {
		t.Errorf("deleted/added asymmetry:\n%s", diffStr)
	}

	// Modified entries swap item/oldItem and old/new values.
	fwd := testutil.FindChange(t, ab.ModifiedItems, testutil.CabinetsID)
	rev := testutil.FindChange(t, ba.ModifiedItems, testutil.CabinetsID)
	testutil.AssertFieldChange(t, fwd, "Rate", 120000.0, 130000.0)
	testutil.AssertFieldChange(t, rev, "Rate", 130000.0, 120000.0)
	if *fwd.Item.Rate != *rev.OldItem.Rate {
		t.Error("modified item/oldItem not mirrored")
	}

	if ab.TotalChange != -ba.TotalChange {
		t.Errorf("total change not antisymmetric: %v vs %v", ab.TotalChange, ba.TotalChange)
	}
	if ab.ItemCountChange != -ba.ItemCountChange {
		t.Errorf("item count change not antisymmetric: %v vs %v", ab.ItemCountChange, ba.ItemCountChange)
	}
}

func TestUnsetIsNotZero(t *testing.T) {
	before := testutil.ShowroomDocument()
	after := before.Clone()

	// Height goes from unset to an explicit zero.
	row := testutil.FindRow(t, after.MainItems, testutil.SofaID)
	row.Height = types.Float(0)

	d := diff.CompareVersions(versionOf(1, before), versionOf(2, after))
	change := testutil.FindChange(t, d.ModifiedItems, testutil.SofaID)
	testutil.AssertFieldChange(t, change, "Height", nil, 0.0)
}

func TestCrossSectionMoveIsDeletePlusAdd(t *testing.T) {
	before := testutil.ShowroomDocument()
	after := before.Clone()

	// Move the sofa from main to additional, same id.
	sofa := testutil.FindRow(t, after.MainItems, testutil.SofaID).Clone()
	after.MainItems = removeRow(after.MainItems, testutil.SofaID)
	after.AdditionalItems = append(after.AdditionalItems, sofa)

	d := diff.CompareVersions(versionOf(1, before), versionOf(2, after))

	del := testutil.FindChange(t, d.DeletedItems, testutil.SofaID)
	add := testutil.FindChange(t, d.AddedItems, testutil.SofaID)
	if del.Section != types.SectionMain || add.Section != types.SectionAdditional {
		t.Errorf("expected delete in main and add in additional, got %s / %s",
			del.Section, add.Section)
	}
	// A pure move nets out in the aggregate.
	if d.ItemCountChange != 0 {
		t.Errorf("expected item count change 0 for a move, got %v", d.ItemCountChange)
	}
}

func TestHeaderRowsCompareNameAndTotalOnly(t *testing.T) {
	before := testutil.ShowroomDocument()
	after := before.Clone()

	room := testutil.FindRow(t, after.MainItems, testutil.KitchenID)
	room.Name = "Modular Kitchen"
	// Garbage in a structural field of a header must not register.
	room.Rate = types.Float(42)

	d := diff.CompareVersions(versionOf(1, before), versionOf(2, after))
	change := testutil.FindChange(t, d.ModifiedItems, testutil.KitchenID)
	if n := len(change.FieldChanges); n != 1 {
		t.Fatalf("expected only the Name change for a room row, got %d: %v", n, change.FieldChanges)
	}
	testutil.AssertFieldChange(t, change, "Name", "Kitchen", "Modular Kitchen")
}

func TestSettingsDiff(t *testing.T) {
	before := testutil.ShowroomDocument()
	after := before.Clone()
	after.Settings.DiscountType = types.DiscountPercent
	after.Settings.DiscountValue = 5
	after.Settings.GSTEnabled = true
	after.Settings.GSTRate = 18

	d := diff.CompareVersions(versionOf(1, before), versionOf(2, after))
	if n := len(d.SettingsChanges); n != 4 {
		t.Fatalf("expected 4 settings changes, got %d: %v", n, d.SettingsChanges)
	}

	byField := map[string]types.SettingsChange{}
	for _, sc := range d.SettingsChanges {
		byField[sc.Field] = sc
	}
	if sc := byField["discountValue"]; sc.Label != "Discount" || sc.OldValue != 0.0 || sc.NewValue != 5.0 {
		t.Errorf("unexpected discount change: %+v", sc)
	}
	if sc := byField["gstEnabled"]; sc.OldValue != false || sc.NewValue != true {
		t.Errorf("unexpected gst change: %+v", sc)
	}
}

func TestMalformedSnapshotsNormalize(t *testing.T) {
	// Versions missing row sections entirely must diff as empty, not
	// panic.
	from := types.Version{Number: 1}
	to := types.Version{Number: 2}
	d := diff.CompareVersions(from, to)
	testutil.AssertDiffEmpty(t, d)
}

func TestLocationWithoutRoom(t *testing.T) {
	doc := types.NewDocument()
	doc.MainItems = []types.Row{
		{ID: "f1", Kind: types.KindFloor, Name: "Terrace"},
		{ID: "i1", Kind: types.KindItem, Name: "Pergola", Total: types.Float(50000)},
	}
	after := doc.Clone()
	after.MainItems[1].Name = "Pergola Deck"

	d := diff.CompareVersions(versionOf(1, doc), versionOf(2, after))
	change := testutil.FindChange(t, d.ModifiedItems, "i1")
	if change.Location != "Terrace" {
		t.Errorf("expected floor-only breadcrumb, got %q", change.Location)
	}
}

func removeRow(rows []types.Row, id string) []types.Row {
	out := rows[:0]
	for _, r := range rows {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func rowIDs(changes []types.ItemChange) []string {
	ids := make([]string, 0, len(changes))
	for _, c := range changes {
		ids = append(ids, c.Item.ID)
	}
	return ids
}
