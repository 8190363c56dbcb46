package testutil

import (
	"testing"

	"github.com/quotienthq/quotient/types"
)

// AssertDiffEmpty verifies that a diff carries no changes of any kind.
func AssertDiffEmpty(t *testing.T, d types.VersionDiff) {
	t.Helper()
	if n := len(d.AddedItems); n != 0 {
		t.Errorf("expected no added items, got %d", n)
	}
	if n := len(d.DeletedItems); n != 0 {
		t.Errorf("expected no deleted items, got %d", n)
	}
	if n := len(d.ModifiedItems); n != 0 {
		t.Errorf("expected no modified items, got %d", n)
	}
	if n := len(d.SettingsChanges); n != 0 {
		t.Errorf("expected no settings changes, got %d", n)
	}
	if d.TotalChange != 0 {
		t.Errorf("expected zero total change, got %v", d.TotalChange)
	}
	if d.ItemCountChange != 0 {
		t.Errorf("expected zero item count change, got %v", d.ItemCountChange)
	}
}

// AssertChangeCounts verifies the size of each change list.
func AssertChangeCounts(t *testing.T, d types.VersionDiff, added, deleted, modified int) {
	t.Helper()
	if len(d.AddedItems) != added {
		t.Errorf("expected %d added items, got %d", added, len(d.AddedItems))
	}
	if len(d.DeletedItems) != deleted {
		t.Errorf("expected %d deleted items, got %d", deleted, len(d.DeletedItems))
	}
	if len(d.ModifiedItems) != modified {
		t.Errorf("expected %d modified items, got %d", modified, len(d.ModifiedItems))
	}
}

// AssertFieldChange verifies that a modified-item entry contains a
// change for field with the given old and new values.
func AssertFieldChange(t *testing.T, c types.ItemChange, field string, oldValue, newValue any) {
	t.Helper()
	for _, fc := range c.FieldChanges {
		if fc.Field != field {
			continue
		}
		if fc.OldValue != oldValue {
			t.Errorf("field %s: expected old value %v, got %v", field, oldValue, fc.OldValue)
		}
		if fc.NewValue != newValue {
			t.Errorf("field %s: expected new value %v, got %v", field, newValue, fc.NewValue)
		}
		return
	}
	t.Errorf("no field change for %s in %v", field, c.FieldChanges)
}

// FindChange returns the change entry for a row id, failing the test
// if absent.
func FindChange(t *testing.T, changes []types.ItemChange, rowID string) types.ItemChange {
	t.Helper()
	for _, c := range changes {
		if c.Item.ID == rowID {
			return c
		}
	}
	t.Fatalf("no change entry for row %s", rowID)
	return types.ItemChange{}
}
