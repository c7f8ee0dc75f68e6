package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/org-builder/internal"
	"gopkg.in/yaml.v3"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "json", wantExt: "json"},
		{format: "jsonl", wantExt: "jsonl"},
		{format: "md", wantExt: "md"},
		{format: "markdown", wantExt: "md"},
		{format: "yaml", wantExt: "yaml"},
		{format: "xml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewExporter(%q) succeeded, want error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter(%q) error = %v", tt.format, err)
			}
			if got := exporter.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}

func TestJSONExporter(t *testing.T) {
	scenario := internal.BuildTestScenario()
	var buf bytes.Buffer

	if err := (&JSONExporter{}).Export(scenario, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded internal.Scenario
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != scenario.ID {
		t.Errorf("decoded id = %q, want %q", decoded.ID, scenario.ID)
	}
	if len(decoded.Nodes) != len(scenario.Nodes) {
		t.Errorf("decoded nodes = %d, want %d", len(decoded.Nodes), len(scenario.Nodes))
	}
}

func TestJSONLExporter(t *testing.T) {
	scenario := internal.BuildTestScenario()
	var buf bytes.Buffer

	if err := (&JSONLExporter{}).Export(scenario, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	lines := 0
	sawRoot := false
	for scanner.Scan() {
		lines++
		var obj map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
		if obj["id"] == "n1" {
			sawRoot = true
			if _, hasParent := obj["parentId"]; hasParent {
				t.Error("root line carries a parentId")
			}
			if obj["employee"] != "Pat Morgan" {
				t.Errorf("root employee = %v, want Pat Morgan", obj["employee"])
			}
		}
	}
	if lines != 4 {
		t.Errorf("output lines = %d, want 4", lines)
	}
	if !sawRoot {
		t.Error("root node missing from output")
	}
}

func TestJSONLExporter_TreeOrder(t *testing.T) {
	scenario := internal.BuildTestScenario()
	var buf bytes.Buffer

	if err := (&JSONLExporter{}).Export(scenario, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if !strings.Contains(first, `"n1"`) {
		t.Errorf("first line %q is not the root node", first)
	}
}

func TestMarkdownExporter(t *testing.T) {
	scenario := internal.BuildTestScenario()
	scenario.FreeAgents = []*internal.Employee{{ID: "fa1", Name: "Taylor Brooks", Department: "Sales"}}
	var buf bytes.Buffer

	if err := (&MarkdownExporter{}).Export(scenario, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Test Scenario",
		"**Headcount:** 3",
		"**Open positions:** 1",
		"## Structure",
		"**Chief Executive Officer**: Pat Morgan",
		"**VP of Engineering**: open",
		"## Free Agents",
		"Taylor Brooks (Sales)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}

	// Reports are indented beneath their manager.
	if !strings.Contains(out, "  - **VP of Sales**") {
		t.Error("VP of Sales is not indented under the root")
	}
}

func TestYAMLExporter(t *testing.T) {
	scenario := internal.BuildTestScenario()
	var buf bytes.Buffer

	if err := (&YAMLExporter{}).Export(scenario, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded internal.Scenario
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Name != scenario.Name {
		t.Errorf("decoded name = %q, want %q", decoded.Name, scenario.Name)
	}
	if len(decoded.Nodes) != len(scenario.Nodes) {
		t.Errorf("decoded nodes = %d, want %d", len(decoded.Nodes), len(scenario.Nodes))
	}
}
