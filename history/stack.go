// Package history provides the bounded undo/redo stack over document
// snapshots. The stack is linear: a cursor points at the current entry,
// entries past the cursor are redo-able future, and any new push
// discards that future. Once the stack exceeds its cap the oldest
// entries are evicted and become unrecoverable.
package history

import (
	"time"

	"github.com/quotienthq/quotient/internal/normalize"
	"github.com/quotienthq/quotient/types"
)

// Entry is an immutable deep copy of a document at one point in the
// edit timeline.
type Entry struct {
	Document  types.Document
	Timestamp time.Time
}

// Stack is the bounded undo/redo buffer. It is not safe for concurrent
// use; the session serializes access (the document is edited by exactly
// one actor at a time).
type Stack struct {
	entries []Entry
	// index points at the current entry; -1 when empty.
	index    int
	cap      int
	timeFunc func() time.Time
}

// Option configures a Stack.
type Option func(*Stack)

// WithCap sets the maximum number of retained entries. Values below 1
// fall back to the default cap.
func WithCap(n int) Option {
	return func(s *Stack) {
		s.cap = normalize.HistoryCap(n)
	}
}

// WithTimeFunc sets a custom time source for deterministic timestamps
// in tests.
func WithTimeFunc(fn func() time.Time) Option {
	return func(s *Stack) {
		s.timeFunc = fn
	}
}

// NewStack creates an empty stack with the default cap of 50 entries.
func NewStack(opts ...Option) *Stack {
	s := &Stack{
		index:    -1,
		cap:      normalize.DefaultHistoryCap,
		timeFunc: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push records a new snapshot after a committed edit. It deep-copies
// the document, truncates any redo future beyond the cursor, appends,
// and evicts the oldest entry if the stack grew past its cap.
func (s *Stack) Push(doc types.Document) {
	snapshot := doc.Clone()
	normalize.Document(&snapshot)

	s.entries = append(s.entries[:s.index+1], Entry{
		Document:  snapshot,
		Timestamp: s.timeFunc(),
	})
	s.index = len(s.entries) - 1

	if len(s.entries) > s.cap {
		over := len(s.entries) - s.cap
		s.entries = append(s.entries[:0], s.entries[over:]...)
		s.index -= over
	}
}

// Undo moves the cursor one entry back and returns the entry now
// current. At the oldest entry (or on an empty stack) it is a no-op
// and reports false; callers poll CanUndo so this is never an error.
func (s *Stack) Undo() (Entry, bool) {
	if !s.CanUndo() {
		return Entry{}, false
	}
	s.index--
	return s.current(), true
}

// Redo moves the cursor one entry forward and returns that entry.
// At the newest entry it is a no-op and reports false.
func (s *Stack) Redo() (Entry, bool) {
	if !s.CanRedo() {
		return Entry{}, false
	}
	s.index++
	return s.current(), true
}

// CanUndo reports whether an older entry exists. Pure; safe to call on
// every render.
func (s *Stack) CanUndo() bool {
	return s.index > 0
}

// CanRedo reports whether a newer entry exists past the cursor.
func (s *Stack) CanRedo() bool {
	return s.index >= 0 && s.index < len(s.entries)-1
}

// Len returns the number of retained entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear drops all entries. Used when a stored version is loaded:
// that establishes a new editing baseline, not a step in the current
// undo chain.
func (s *Stack) Clear() {
	s.entries = nil
	s.index = -1
}

// current returns a copy of the entry under the cursor. The stored
// snapshot stays private to the stack; callers may mutate the returned
// document freely.
func (s *Stack) current() Entry {
	e := s.entries[s.index]
	return Entry{Document: e.Document.Clone(), Timestamp: e.Timestamp}
}
