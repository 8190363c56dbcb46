// Package session ties the engine together for one editing actor: the
// live document, the undo/redo stack, the version store, and debounced
// persistence through the storage collaborator.
//
// A Session is constructed per document and injected where needed;
// there is no package-level singleton, so independent documents and
// tests coexist in one process.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/quotienthq/quotient/diff"
	"github.com/quotienthq/quotient/history"
	"github.com/quotienthq/quotient/internal/normalize"
	"github.com/quotienthq/quotient/storage"
	"github.com/quotienthq/quotient/types"
	"github.com/quotienthq/quotient/versions"
)

// DefaultDebounce is the write-coalescing window: edits made within it
// collapse into one save reflecting the latest state.
const DefaultDebounce = 1200 * time.Millisecond

// Session owns the live document for a single editing actor.
type Session struct {
	mu sync.Mutex

	doc      types.Document
	history  *history.Stack
	versions *versions.Store
	store    storage.Storage

	logger   *slog.Logger
	debounce time.Duration
	timer    *time.Timer
	closed   bool
}

// Option configures a Session.
type Option func(*Session)

// WithHistoryCap bounds the undo/redo stack.
func WithHistoryCap(n int) Option {
	return func(s *Session) {
		s.history = history.NewStack(history.WithCap(n))
	}
}

// WithDebounce sets the persistence debounce window. Zero or negative
// disables debouncing: every edit saves synchronously.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		s.debounce = d
	}
}

// WithLogger sets the session logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New opens a session over the given storage. Previously persisted
// state is loaded if present; a load failure degrades to an empty
// document rather than failing the session, since storage problems
// must never cost in-memory work.
func New(store storage.Storage, opts ...Option) *Session {
	s := &Session{
		history:  history.NewStack(),
		store:    store,
		logger:   slog.Default(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}

	doc := types.NewDocument()
	var saved []types.Version
	data, err := store.Load()
	if err != nil {
		s.logger.Warn("load failed, starting empty", "error", err)
	} else {
		if data.Document != nil {
			doc = data.Document.Clone()
		}
		saved = data.Versions
	}
	normalize.Document(&doc)

	s.doc = doc
	s.versions = versions.NewStore(saved)
	// Baseline entry so the first edit can be undone back to the
	// loaded state.
	s.history.Push(s.doc)
	return s
}

// Document returns a copy of the live document.
func (s *Session) Document() types.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Edit applies fn to the live document and records the result in
// history as one synchronous step; no other caller can observe the
// document mutated but not yet pushed. A save is scheduled after the
// debounce window.
func (s *Session) Edit(fn func(*types.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.doc)
	normalize.Document(&s.doc)
	s.history.Push(s.doc)
	s.scheduleSaveLocked()
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// Undo replaces the live document wholesale with the previous history
// entry. No-op (false) when nothing can be undone.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.doc = entry.Document
	s.scheduleSaveLocked()
	return true
}

// Redo replaces the live document with the next history entry. No-op
// (false) at the newest entry.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.doc = entry.Document
	s.scheduleSaveLocked()
	return true
}

// SaveVersion snapshots the live document as a new durable version and
// persists immediately; versions are the artifacts meant to survive.
func (s *Session) SaveVersion(note string) types.Version {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.versions.Save(s.doc, note)
	s.saveNowLocked()
	return v
}

// Versions lists all stored versions in ascending number order.
func (s *Session) Versions() []types.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions.List()
}

// SearchVersions finds stored versions matching a text query on note,
// client name, or item names, ranked by relevance.
func (s *Session) SearchVersions(query string) []versions.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions.Search(query)
}

// LoadVersion replaces the live document with a stored version's
// snapshot and restarts history: loading a version is a new editing
// baseline, not a step in the current undo chain.
func (s *Session) LoadVersion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.versions.Load(id)
	if !ok {
		return versions.ErrVersionNotFound
	}
	s.doc = doc
	s.history.Clear()
	s.history.Push(s.doc)
	s.saveNowLocked()
	return nil
}

// DeleteVersion removes a stored version. Version numbers of future
// saves are not renumbered.
func (s *Session) DeleteVersion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.versions.Delete(id) {
		return false
	}
	s.saveNowLocked()
	return true
}

// CompareVersions computes the full structural diff between two stored
// versions. Stateless with respect to the session.
func (s *Session) CompareVersions(fromID, toID string) (types.VersionDiff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions.Compare(fromID, toID)
}

// CompareWithLive diffs a stored version against the live document,
// treating the live state as an unnumbered "to" side.
func (s *Session) CompareWithLive(fromID string) (types.VersionDiff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.versions.Get(fromID)
	if !ok {
		return types.VersionDiff{}, versions.ErrVersionNotFound
	}
	live := types.Version{
		Document:   s.doc.Clone(),
		GrandTotal: s.doc.GrandTotal(),
		ItemCount:  s.doc.ItemCount(),
	}
	return diff.CompareVersions(from, live), nil
}

// Flush forces any pending debounced write to happen now.
func (s *Session) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveNowLocked()
}

// Close cancels any pending write, flushes state, and closes storage.
// The session must not be used afterward.
func (s *Session) Close() error {
	s.mu.Lock()
	s.closed = true
	s.saveNowLocked()
	s.mu.Unlock()
	return s.store.Close()
}

// scheduleSaveLocked arms the single-slot debounce timer: each new edit
// cancels the pending write and reschedules, so at most one write is
// pending and it reads state at fire time (last-write-wins).
func (s *Session) scheduleSaveLocked() {
	if s.debounce <= 0 {
		s.saveNowLocked()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.saveNowLocked()
	})
}

// saveNowLocked writes the current state through the storage
// collaborator. Failure is logged and swallowed: the session keeps
// operating purely in memory and never loses held state.
func (s *Session) saveNowLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	doc := s.doc.Clone()
	data := &storage.StoreData{
		Document: &doc,
		Versions: s.versions.List(),
	}
	if err := s.store.Save(data); err != nil {
		s.logger.Warn("save failed, continuing in memory", "error", err)
	}
}
