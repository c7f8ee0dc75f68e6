package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/org-builder/internal"
)

// JSONLExporter exports scenarios in JSONL format, one position slot per
// line in tree order
type JSONLExporter struct{}

// Export exports a scenario to JSONL format
func (e *JSONLExporter) Export(scenario *internal.Scenario, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, node := range internal.Flatten(scenario.Nodes, scenario.RootID) {
		obj := map[string]interface{}{
			"id":    node.ID,
			"title": node.Position.Title,
			"level": node.Position.Level,
		}
		if node.Position.Department != "" {
			obj["department"] = node.Position.Department
		}
		if node.ParentID != "" {
			obj["parentId"] = node.ParentID
		}
		if node.Employee != nil {
			obj["employee"] = node.Employee.Name
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode node: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
