// Package versions maintains the durable, append-only list of named
// document snapshots a user explicitly creates, e.g. before exporting a
// PDF. Versions are numbered monotonically from 1 at save time and keep
// their numbers forever; deleting a version leaves a gap.
package versions

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quotienthq/quotient/diff"
	"github.com/quotienthq/quotient/internal/normalize"
	"github.com/quotienthq/quotient/types"
)

// ErrVersionNotFound is returned when an id does not name a stored
// version.
var ErrVersionNotFound = errors.New("version not found")

// Store holds the version list for one document. It is constructed and
// injected per session rather than shared process-wide, so independent
// documents (and tests) can coexist in one process.
type Store struct {
	versions []types.Version
	timeFunc func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTimeFunc sets a custom time source for deterministic timestamps.
func WithTimeFunc(fn func() time.Time) Option {
	return func(s *Store) {
		s.timeFunc = fn
	}
}

// NewStore creates a version store seeded with previously persisted
// versions. The existing slice is deep-copied; the store never aliases
// caller memory.
func NewStore(existing []types.Version, opts ...Option) *Store {
	s := &Store{
		versions: make([]types.Version, 0, len(existing)),
		timeFunc: time.Now,
	}
	for _, v := range existing {
		clone := v.Clone()
		normalize.Version(&clone)
		s.versions = append(s.versions, clone)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save captures doc as a new version numbered one past the last
// surviving version (1 when the list is empty). The inline Changes
// summary is computed against the immediately preceding version; the
// full structural diff stays on demand via Compare.
func (s *Store) Save(doc types.Document, note string) types.Version {
	snapshot := doc.Clone()
	normalize.Document(&snapshot)

	now := s.timeFunc()
	v := types.Version{
		ID:         uuid.New().String(),
		Number:     s.nextNumber(),
		Date:       now.Format("2006-01-02"),
		Timestamp:  now,
		Document:   snapshot,
		GrandTotal: snapshot.GrandTotal(),
		ItemCount:  snapshot.ItemCount(),
		Note:       note,
	}
	if len(s.versions) > 0 {
		prev := s.versions[len(s.versions)-1]
		v.Changes = diff.SummaryChanges(prev, v)
	}

	s.versions = append(s.versions, v)
	return v.Clone()
}

// Get returns the version with the given id.
func (s *Store) Get(id string) (types.Version, bool) {
	for _, v := range s.versions {
		if v.ID == id {
			return v.Clone(), true
		}
	}
	return types.Version{}, false
}

// GetByNumber returns the version with the given user-facing number.
func (s *Store) GetByNumber(n int) (types.Version, bool) {
	for _, v := range s.versions {
		if v.Number == n {
			return v.Clone(), true
		}
	}
	return types.Version{}, false
}

// List returns all versions in ascending number order, which by
// construction is insertion order.
func (s *Store) List() []types.Version {
	out := make([]types.Version, 0, len(s.versions))
	for _, v := range s.versions {
		out = append(out, v.Clone())
	}
	return out
}

// Len reports the number of stored versions.
func (s *Store) Len() int {
	return len(s.versions)
}

// Delete removes the version with the given id. Future saves are not
// renumbered; a gap is expected. Reports whether anything was removed.
func (s *Store) Delete(id string) bool {
	for i, v := range s.versions {
		if v.ID == id {
			s.versions = append(s.versions[:i], s.versions[i+1:]...)
			return true
		}
	}
	return false
}

// Compare computes the full structural diff between two stored
// versions, from -> to. Stateless: the store is not mutated.
func (s *Store) Compare(fromID, toID string) (types.VersionDiff, error) {
	from, ok := s.Get(fromID)
	if !ok {
		return types.VersionDiff{}, ErrVersionNotFound
	}
	to, ok := s.Get(toID)
	if !ok {
		return types.VersionDiff{}, ErrVersionNotFound
	}
	return diff.CompareVersions(from, to), nil
}

// Load returns the document snapshot stored in a version, for the
// caller to adopt as its live document. Loading establishes a new
// editing baseline: the caller must clear its history stack afterward.
func (s *Store) Load(id string) (types.Document, bool) {
	v, ok := s.Get(id)
	if !ok {
		return types.Document{}, false
	}
	return v.Document.Clone(), true
}

// nextNumber follows the "last surviving version + 1" rule: gaps left
// by deletions in the middle persist, while deleting the newest version
// frees its number.
func (s *Store) nextNumber() int {
	if len(s.versions) == 0 {
		return 1
	}
	return s.versions[len(s.versions)-1].Number + 1
}
