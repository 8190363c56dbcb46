// Package formats renders diff reports and document summaries in
// pluggable output formats. Formats register themselves by name; the
// CLI resolves the --format flag against the registry.
package formats

import (
	"fmt"
	"strings"

	"github.com/quotienthq/quotient/types"
)

// ReportFormat defines how diff reports and document summaries are
// rendered.
type ReportFormat struct {
	// Name is the format identifier (alphanumeric, dashes, underscores,
	// lowercase).
	Name string

	// Extension is the file extension including the dot (e.g. ".md").
	Extension string

	// RenderDiff renders a computed version diff as a report.
	RenderDiff func(d types.VersionDiff) (string, error)

	// RenderDocument renders a document summary (rows and totals).
	RenderDocument func(doc types.Document) (string, error)
}

// registry holds all available report formats
var registry = make(map[string]*ReportFormat)

// Register adds a new report format to the registry
func Register(format *ReportFormat) error {
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}

	if !strings.HasPrefix(format.Extension, ".") {
		format.Extension = "." + format.Extension
	}

	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}

	registry[format.Name] = format
	return nil
}

// Get returns a report format by name
func Get(name string) (*ReportFormat, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return format, nil
}

// List returns all registered format names
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// isValidFormatName checks if a format name is valid
func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
