package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/org-builder/internal"
)

// MarkdownExporter exports scenarios as a readable Markdown report
type MarkdownExporter struct{}

// Export exports a scenario to Markdown format
func (e *MarkdownExporter) Export(scenario *internal.Scenario, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", scenario.Name)

	health := internal.AnalyzeHealth(scenario)
	_, _ = fmt.Fprintf(w, "**Headcount:** %d  \n", health.Headcount)
	_, _ = fmt.Fprintf(w, "**Open positions:** %d  \n", health.OpenPositions)
	_, _ = fmt.Fprintf(w, "**Layers:** %d\n\n", health.Layers)

	if scenario.RootID != "" {
		_, _ = fmt.Fprintf(w, "## Structure\n\n")
		e.writeNode(w, scenario, scenario.RootID, 0)
		_, _ = fmt.Fprintln(w)
	}

	if len(scenario.FreeAgents) > 0 {
		_, _ = fmt.Fprintf(w, "## Free Agents\n\n")
		for _, agent := range scenario.FreeAgents {
			_, _ = fmt.Fprintf(w, "- %s", agent.Name)
			if agent.Department != "" {
				_, _ = fmt.Fprintf(w, " (%s)", agent.Department)
			}
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(health.Flags) > 0 {
		_, _ = fmt.Fprintf(w, "## Flags\n\n")
		for _, flag := range health.Flags {
			_, _ = fmt.Fprintf(w, "- **%s:** %s\n", flag.Severity, flag.Message)
		}
	}

	return nil
}

func (e *MarkdownExporter) writeNode(w io.Writer, scenario *internal.Scenario, nodeID string, depth int) {
	node, ok := scenario.Nodes[nodeID]
	if !ok {
		return
	}

	occupant := "open"
	if node.Employee != nil {
		occupant = node.Employee.Name
	}
	indent := strings.Repeat("  ", depth)
	_, _ = fmt.Fprintf(w, "%s- **%s**: %s\n", indent, node.Position.Title, occupant)

	for _, childID := range node.Children {
		e.writeNode(w, scenario, childID, depth+1)
	}
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
