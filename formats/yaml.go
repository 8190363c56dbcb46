package formats

import (
	"fmt"

	"github.com/quotienthq/quotient/types"
	"gopkg.in/yaml.v3"
)

// YAML emits the raw structures, for piping into other tooling.
var YAML = &ReportFormat{
	Name:      "yaml",
	Extension: ".yaml",
	RenderDiff: func(d types.VersionDiff) (string, error) {
		out, err := yaml.Marshal(d)
		if err != nil {
			return "", fmt.Errorf("failed to marshal diff: %w", err)
		}
		return string(out), nil
	},
	RenderDocument: func(doc types.Document) (string, error) {
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("failed to marshal document: %w", err)
		}
		return string(out), nil
	},
}

func init() {
	if err := Register(YAML); err != nil {
		panic(fmt.Sprintf("failed to register yaml format: %v", err))
	}
}
