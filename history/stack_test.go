package history_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quotienthq/quotient/history"
	"github.com/quotienthq/quotient/testutil"
	"github.com/quotienthq/quotient/types"
)

func TestUndoRedoSymmetry(t *testing.T) {
	// N edits, then N undos and N redos, must land field-for-field on
	// the final state.
	const edits = 10

	stack := history.NewStack()
	doc := testutil.ShowroomDocument()
	stack.Push(doc)

	for i := 0; i < edits; i++ {
		doc.Client.Name = fmt.Sprintf("Client %d", i)
		row := testutil.FindRow(t, doc.MainItems, testutil.TVUnitID)
		row.Rate = types.Float(80000 + float64(i)*1000)
		row.Recalculate()
		stack.Push(doc)
	}
	final := doc.Clone()

	for i := 0; i < edits; i++ {
		entry, ok := stack.Undo()
		if !ok {
			t.Fatalf("undo %d failed", i)
		}
		doc = entry.Document
	}
	if got := doc.Client.Name; got == final.Client.Name {
		t.Fatalf("undo did not move away from the final state")
	}

	for i := 0; i < edits; i++ {
		entry, ok := stack.Redo()
		if !ok {
			t.Fatalf("redo %d failed", i)
		}
		doc = entry.Document
	}
	if diff := cmp.Diff(final, doc); diff != "" {
		t.Errorf("state after undo+redo differs from final (-want +got):\n%s", diff)
	}
}

func TestBoundedHistory(t *testing.T) {
	const cap = 5
	stack := history.NewStack(history.WithCap(cap))

	doc := types.NewDocument()
	for i := 0; i < cap+3; i++ {
		doc.Client.Name = fmt.Sprintf("edit-%d", i)
		stack.Push(doc)
	}

	if got := stack.Len(); got != cap {
		t.Fatalf("expected %d entries after overflow, got %d", cap, got)
	}

	// Walk back as far as possible; the oldest surviving entry is
	// edit-3 (edits 0..2 were evicted and are unrecoverable).
	var last history.Entry
	steps := 0
	for stack.CanUndo() {
		entry, ok := stack.Undo()
		if !ok {
			t.Fatal("CanUndo was true but Undo failed")
		}
		last = entry
		steps++
	}
	if steps != cap-1 {
		t.Errorf("expected %d undo steps, got %d", cap-1, steps)
	}
	if got := last.Document.Client.Name; got != "edit-3" {
		t.Errorf("expected oldest surviving entry edit-3, got %s", got)
	}
}

func TestUndoRedoBoundaries(t *testing.T) {
	stack := history.NewStack()

	// Empty stack: everything is a no-op, not an error.
	if _, ok := stack.Undo(); ok {
		t.Error("undo on empty stack should be a no-op")
	}
	if _, ok := stack.Redo(); ok {
		t.Error("redo on empty stack should be a no-op")
	}
	if stack.CanUndo() || stack.CanRedo() {
		t.Error("empty stack should have no undo/redo")
	}

	stack.Push(types.NewDocument())
	if stack.CanUndo() {
		t.Error("single entry cannot be undone past")
	}
	if _, ok := stack.Undo(); ok {
		t.Error("undo at index 0 should be a no-op")
	}
	if _, ok := stack.Redo(); ok {
		t.Error("redo at the tail should be a no-op")
	}
}

func TestPushTruncatesRedoFuture(t *testing.T) {
	stack := history.NewStack()
	doc := types.NewDocument()

	for _, name := range []string{"a", "b", "c"} {
		doc.Client.Name = name
		stack.Push(doc)
	}

	if _, ok := stack.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if !stack.CanRedo() {
		t.Fatal("expected redo after undo")
	}

	// A new edit discards the redo future.
	doc.Client.Name = "d"
	stack.Push(doc)
	if stack.CanRedo() {
		t.Error("push should discard redo history")
	}
	if got := stack.Len(); got != 3 {
		t.Errorf("expected 3 entries (a, b, d), got %d", got)
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	stack := history.NewStack()
	doc := testutil.ShowroomDocument()
	stack.Push(doc)

	// Mutating the live document after the push must not reach into
	// the stored snapshot.
	row := testutil.FindRow(t, doc.MainItems, testutil.TVUnitID)
	*row.Rate = 999999
	stack.Push(doc)

	entry, ok := stack.Undo()
	if !ok {
		t.Fatal("undo failed")
	}
	got := testutil.FindRow(t, entry.Document.MainItems, testutil.TVUnitID)
	if *got.Rate != 80000 {
		t.Errorf("stored snapshot was mutated through the live document: rate %v", *got.Rate)
	}
}
