package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/org-builder/internal"
	"github.com/spf13/cobra"
)

var showOpenOnly bool

var (
	// Styles for the tree view
	treeTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	positionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	occupantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	openSlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the org tree",
	Long:  `Render the baseline organization as an indented tree, one position per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := loadBaseline()
		if err != nil {
			return fmt.Errorf("failed to load baseline: %w", err)
		}

		fmt.Println(treeTitleStyle.Render(scenario.Name))

		if scenario.RootID == "" {
			fmt.Println(occupantStyle.Render("(empty tree)"))
			return nil
		}

		printTree(scenario, scenario.RootID, "")
		return nil
	},
}

func printTree(scenario *internal.Scenario, nodeID, prefix string) {
	node, ok := scenario.Nodes[nodeID]
	if !ok {
		return
	}

	if !showOpenOnly || !node.Filled() {
		line := prefix + positionStyle.Render(node.Position.Title)
		if node.Filled() {
			line += " " + occupantStyle.Render(fmt.Sprintf("(%s)", node.Employee.Name))
		} else {
			line += " " + openSlotStyle.Render("(open)")
		}
		fmt.Println(line)
	}

	childPrefix := prefix + branchStyle.Render("  ")
	for _, childID := range node.Children {
		printTree(scenario, childID, childPrefix)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showOpenOnly, "open", false, "Show only open (vacant) positions")
}
