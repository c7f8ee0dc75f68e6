package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/org-builder/internal"
)

// JSONExporter exports scenarios in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a scenario to JSON format
func (e *JSONExporter) Export(scenario *internal.Scenario, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(scenario)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
