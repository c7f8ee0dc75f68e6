package internal

import (
	"fmt"
	"time"
)

// BuildTestScenario creates a small mutable scenario for tests:
//
//	CEO (root, occupied)
//	├── VP of Sales (occupied)
//	│   └── Account Executive (occupied)
//	└── VP of Engineering (open)
func BuildTestScenario() *Scenario {
	scenario := &Scenario{
		ID:        "test-scenario",
		Name:      "Test Scenario",
		CreatedAt: time.Now(),
		Nodes:     make(map[string]*OrgNode),
	}

	root := AddTestNode(scenario, "", "Chief Executive Officer", 1, "Pat Morgan")
	sales := AddTestNode(scenario, root, "VP of Sales", 3, "Jordan Reyes")
	AddTestNode(scenario, sales, "Account Executive", 5, "Casey Lin")
	AddTestNode(scenario, root, "VP of Engineering", 3, "")
	scenario.RootID = root

	return scenario
}

// AddTestNode inserts a node directly into a scenario, wiring the parent's
// children list. An empty employeeName leaves the slot open. Returns the
// new node's id.
func AddTestNode(scenario *Scenario, parentID, title string, level int, employeeName string) string {
	seq := len(scenario.Nodes) + 1
	id := fmt.Sprintf("n%d", seq)
	node := &OrgNode{
		ID: id,
		Position: &Position{
			ID:    fmt.Sprintf("p%d", seq),
			Title: title,
			Level: level,
		},
		ParentID: parentID,
	}
	if employeeName != "" {
		node.Employee = &Employee{
			ID:   fmt.Sprintf("e%d", seq),
			Name: employeeName,
		}
	}
	scenario.Nodes[id] = node
	if parentID != "" {
		scenario.Nodes[parentID].Children = append(scenario.Nodes[parentID].Children, id)
	}
	if scenario.RootID == "" && parentID == "" {
		scenario.RootID = id
	}
	return id
}
