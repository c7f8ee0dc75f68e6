package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/org-builder/internal"
	"github.com/spf13/cobra"
)

var (
	listDepartment string
	listOpenOnly   bool
)

var listHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("212"))

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List positions and their occupants",
	Long:  `List every position in the org chart with its level, department, and occupant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := loadBaseline()
		if err != nil {
			return fmt.Errorf("failed to load baseline: %w", err)
		}

		nodes := filterNodes(scenario, listDepartment, listOpenOnly)
		if len(nodes) == 0 {
			fmt.Println("No matching positions.")
			return nil
		}

		fmt.Println(listHeaderStyle.Render(fmt.Sprintf("%-35s %-5s %-15s %s", "POSITION", "LVL", "DEPARTMENT", "OCCUPANT")))
		for _, node := range nodes {
			occupant := "(open)"
			if node.Filled() {
				occupant = node.Employee.Name
			}
			fmt.Printf("%-35s L%-4d %-15s %s\n", node.Position.Title, node.Position.Level, node.Position.Department, occupant)
		}
		fmt.Printf("\n%d positions\n", len(nodes))
		return nil
	},
}

func filterNodes(scenario *internal.Scenario, department string, openOnly bool) []*internal.OrgNode {
	var nodes []*internal.OrgNode
	for _, node := range scenario.Nodes {
		if department != "" && !strings.EqualFold(node.Position.Department, department) {
			continue
		}
		if openOnly && node.Filled() {
			continue
		}
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Position.Level != nodes[j].Position.Level {
			return nodes[i].Position.Level < nodes[j].Position.Level
		}
		return nodes[i].Position.Title < nodes[j].Position.Title
	})
	return nodes
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listDepartment, "department", "", "Only show positions in this department")
	listCmd.Flags().BoolVar(&listOpenOnly, "open", false, "Only show open (vacant) positions")
}
