package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/org-builder/internal"
	"github.com/spf13/cobra"
)

var healthSuggest bool

var (
	healthTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("83"))
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Analyze the structure of the org chart",
	Long: `Analyze the org chart for structural issues: spans of control above
the recommended maximum and vacant executive positions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := loadBaseline()
		if err != nil {
			return fmt.Errorf("failed to load baseline: %w", err)
		}

		health := internal.AnalyzeHealth(scenario)

		fmt.Println(healthTitleStyle.Render(fmt.Sprintf("Org health: %s", scenario.Name)))
		fmt.Printf("  Headcount:      %d\n", health.Headcount)
		fmt.Printf("  Open positions: %d\n", health.OpenPositions)
		fmt.Printf("  Layers:         %d\n", health.Layers)
		fmt.Println()

		if len(health.Flags) == 0 {
			fmt.Println(okStyle.Render("No structural issues found."))
		} else {
			for _, flag := range health.Flags {
				style := warningStyle
				if flag.Severity == internal.SeverityCritical {
					style = criticalStyle
				}
				fmt.Println(style.Render(fmt.Sprintf("[%s] %s", flag.Severity, flag.Message)))
			}
		}

		if healthSuggest {
			printSuggestions(scenario)
		}
		return nil
	},
}

// printSuggestions ranks current employees against each open position's
// required skills.
func printSuggestions(scenario *internal.Scenario) {
	employees := internal.CollectEmployees(scenario.Nodes, scenario.RootID)
	employees = append(employees, scenario.FreeAgents...)

	for _, node := range internal.Flatten(scenario.Nodes, scenario.RootID) {
		if node.Filled() {
			continue
		}
		candidates := internal.SuggestCandidates(employees, node.Position, 3)
		if len(candidates) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", healthTitleStyle.Render(fmt.Sprintf("Candidates for %s", node.Position.Title)))
		for _, c := range candidates {
			fmt.Printf("  %s (%d%% fit)\n", c.Employee.Name, c.Score)
		}
	}
}

func init() {
	rootCmd.AddCommand(healthCmd)
	healthCmd.Flags().BoolVar(&healthSuggest, "suggest", false, "Suggest internal candidates for open positions")
}
