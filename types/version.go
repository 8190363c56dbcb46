package types

import "time"

// Version is a durable, user-named document snapshot kept for long-term
// comparison and audit. Versions are never mutated after creation except
// by deletion; Number values are strictly increasing at save time and
// gaps left by deletions are never filled.
type Version struct {
	ID        string    `json:"id"`
	Number    int       `json:"version"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`

	Document

	GrandTotal float64 `json:"grand_total"`
	ItemCount  int     `json:"item_count"`
	Note       string  `json:"note,omitempty"`

	// Changes is the cheap inline summary computed against the
	// immediately preceding version at save time. The full structural
	// diff is recomputed on demand, never stored.
	Changes []SummaryChange `json:"changes,omitempty"`
}

// Clone returns an independent copy of the version, including its
// embedded document snapshot.
func (v Version) Clone() Version {
	out := v
	out.Document = v.Document.Clone()
	if v.Changes != nil {
		out.Changes = make([]SummaryChange, len(v.Changes))
		copy(out.Changes, v.Changes)
	}
	return out
}
