package export

import (
	"io"

	"github.com/iksnae/org-builder/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports scenarios in YAML format
type YAMLExporter struct{}

// Export exports a scenario to YAML format
func (e *YAMLExporter) Export(scenario *internal.Scenario, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(scenario)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
