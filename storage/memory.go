package storage

import (
	"sync"

	"github.com/quotienthq/quotient/types"
)

// Memory is an in-memory Storage, used by tests and by sessions that
// opt out of persistence. It deep-copies on the way in and out so
// callers cannot alias its internal snapshot.
type Memory struct {
	mu   sync.Mutex
	data *StoreData

	// FailSaves makes every Save report an error without touching the
	// held snapshot. Tests use it to exercise the recover-in-memory
	// contract.
	FailSaves bool
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{data: emptyData()}
}

// Load returns a deep copy of the held snapshot.
func (m *Memory) Load() (*StoreData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneData(m.data), nil
}

// Save replaces the held snapshot with a deep copy of data.
func (m *Memory) Save(data *StoreData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return errSaveFailed
	}
	m.data = cloneData(data)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

// Saved returns the currently held snapshot. Test hook.
func (m *Memory) Saved() *StoreData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneData(m.data)
}

func cloneData(in *StoreData) *StoreData {
	if in == nil {
		return emptyData()
	}
	out := &StoreData{
		Versions: make([]types.Version, 0, len(in.Versions)),
		Metadata: in.Metadata,
	}
	if in.Document != nil {
		doc := in.Document.Clone()
		out.Document = &doc
	}
	for _, v := range in.Versions {
		out.Versions = append(out.Versions, v.Clone())
	}
	return out
}
