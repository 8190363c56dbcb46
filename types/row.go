// Package types defines the core value types for the quotation document
// engine: rows, documents, settings, durable versions and the diff result
// types shared by every other package.
package types

import "github.com/google/uuid"

// RowKind discriminates the three row variants in a quotation.
// Rows form a flat, ordered sequence encoding a tree of depth <= 2:
// every row between a room row and the next room/floor row belongs
// to that room.
type RowKind string

const (
	KindFloor RowKind = "floor"
	KindRoom  RowKind = "room"
	KindItem  RowKind = "item"
)

// Row is one line in a quotation: a floor header, a room header, or a
// priced item. The numeric fields are pointers because "not set" is a
// distinct state from zero and must survive serialization and diffing.
type Row struct {
	ID   string  `json:"id"`
	Kind RowKind `json:"kind"`
	Name string  `json:"name"`

	// Item-only fields. Sqft, Amount and Total are derived from the
	// authored fields (height/width/rate/qty) by edit actions; the diff
	// engine still compares them as ordinary fields.
	Height      *float64 `json:"height,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Sqft        *float64 `json:"sqft,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Qty         *float64 `json:"qty,omitempty"`
	Total       *float64 `json:"total,omitempty"`
	Note        string   `json:"note,omitempty"`
	Highlighted bool     `json:"highlighted,omitempty"`
}

// NewRow creates a row of the given kind with a fresh stable ID.
// IDs are never reused or reassigned for the lifetime of the row.
func NewRow(kind RowKind, name string) Row {
	return Row{
		ID:   uuid.New().String(),
		Kind: kind,
		Name: name,
	}
}

// IsItem reports whether the row is a priced item (as opposed to a
// floor or room header).
func (r Row) IsItem() bool {
	return r.Kind == KindItem
}

// Clone returns a structurally independent copy of the row.
func (r Row) Clone() Row {
	out := r
	out.Height = clonePtr(r.Height)
	out.Width = clonePtr(r.Width)
	out.Sqft = clonePtr(r.Sqft)
	out.Rate = clonePtr(r.Rate)
	out.Amount = clonePtr(r.Amount)
	out.Qty = clonePtr(r.Qty)
	out.Total = clonePtr(r.Total)
	return out
}

// CloneRows deep-copies a row slice. A nil input yields an empty,
// non-nil slice so snapshots never carry nil sections.
func CloneRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Clone())
	}
	return out
}

// Float returns a pointer to v. Convenience for building rows whose
// optional numeric fields are set.
func Float(v float64) *float64 {
	return &v
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
