package types

// ChangeType classifies a row-level change in a VersionDiff.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeDeleted  ChangeType = "deleted"
	ChangeModified ChangeType = "modified"
)

// Section names the row list a change belongs to. A row that moved from
// main to additional is reported as a deletion in one section and an
// addition in the other; sections are diffed independently.
type Section string

const (
	SectionMain       Section = "main"
	SectionAdditional Section = "additional"
)

// FieldChange is a single field's old/new value pair within a modified
// row. Field is already a display label ("Rate", "Height"). Values are
// nil when the field was unset on that side.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// ItemChange is one row-level entry in a VersionDiff.
type ItemChange struct {
	Type    ChangeType `json:"type"`
	Item    Row        `json:"item"`
	OldItem *Row       `json:"old_item,omitempty"`
	Section Section    `json:"section"`

	// Location is a human-readable breadcrumb, e.g.
	// "Ground Floor > Kitchen", derived from the row's position in the
	// snapshot it came from.
	Location     string        `json:"location,omitempty"`
	FieldChanges []FieldChange `json:"field_changes,omitempty"`
}

// SettingsChange records one changed settings scalar between versions.
type SettingsChange struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// SummaryChange is one entry of the cheap per-version summary stored
// inline with a saved version (grand total, item count, client name,
// discount, GST flag).
type SummaryChange struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// VersionDiff is the computed structural difference between two
// versions, from -> to.
type VersionDiff struct {
	FromVersion int    `json:"from_version"`
	ToVersion   int    `json:"to_version"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`

	TotalChange     float64 `json:"total_change"`
	ItemCountChange int     `json:"item_count_change"`

	AddedItems      []ItemChange     `json:"added_items"`
	DeletedItems    []ItemChange     `json:"deleted_items"`
	ModifiedItems   []ItemChange     `json:"modified_items"`
	SettingsChanges []SettingsChange `json:"settings_changes"`
}
