// Package storage provides the persistence collaborator for the
// quotation engine. It defines a narrow load/save interface over a
// full snapshot of the live document plus the durable version list,
// and ships a JSON file backend and an in-memory backend.
//
// The engine treats storage failure as recoverable: in-memory state is
// never discarded because a save failed.
package storage

import (
	"time"

	"github.com/quotienthq/quotient/types"
)

// StoreData is the complete unit of persistence: the live document (nil
// when nothing has been saved yet) and every durable version.
type StoreData struct {
	Document *types.Document `json:"document,omitempty"`
	Versions []types.Version `json:"versions"`
	Metadata Metadata        `json:"metadata"`
}

// Metadata carries storage bookkeeping.
type Metadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Storage is the low-level batch persistence interface. Load and Save
// operate on the entire snapshot as a single unit, matching the JSON
// file backend's natural behavior.
type Storage interface {
	// Load reads the entire snapshot. A missing or empty backing file
	// is not an error; it loads as empty StoreData.
	Load() (*StoreData, error)

	// Save writes the entire snapshot.
	Save(data *StoreData) error

	// Close releases any resources held by the storage.
	Close() error
}

func emptyData() *StoreData {
	return &StoreData{Versions: []types.Version{}}
}
