package internal

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// OrgFile is the YAML description of a baseline org: a recursive position
// tree, optionally with occupants.
type OrgFile struct {
	Name string       `yaml:"name"`
	Root *OrgFileNode `yaml:"root"`
}

// OrgFileNode is one position entry in an org file.
type OrgFileNode struct {
	Title          string         `yaml:"title"`
	Description    string         `yaml:"description,omitempty"`
	Level          int            `yaml:"level"`
	Department     string         `yaml:"department,omitempty"`
	RequiredSkills []string       `yaml:"required_skills,omitempty"`
	Employee       *Employee      `yaml:"employee,omitempty"`
	Reports        []*OrgFileNode `yaml:"reports,omitempty"`
}

// LoadOrgFile reads a YAML org file and builds a baseline scenario from it.
func LoadOrgFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SnapshotError{Path: path, Op: "read", Err: err}
	}

	var file OrgFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &SnapshotError{Path: path, Op: "parse", Err: err}
	}
	if file.Root == nil {
		return nil, &SnapshotError{Path: path, Op: "parse", Err: fmt.Errorf("org file has no root position")}
	}

	name := file.Name
	if name == "" {
		name = "Current Org (Baseline)"
	}
	scenario := &Scenario{
		ID:         "baseline",
		Name:       name,
		IsBaseline: true,
		CreatedAt:  time.Now(),
		Nodes:      make(map[string]*OrgNode),
	}

	var build func(entry *OrgFileNode, parentID string) string
	build = func(entry *OrgFileNode, parentID string) string {
		node := &OrgNode{
			ID: uuid.NewString(),
			Position: &Position{
				ID:             uuid.NewString(),
				Title:          entry.Title,
				Description:    entry.Description,
				RequiredSkills: entry.RequiredSkills,
				Level:          entry.Level,
				Department:     entry.Department,
			},
			Employee: entry.Employee,
			ParentID: parentID,
		}
		if node.Employee != nil && node.Employee.ID == "" {
			node.Employee.ID = uuid.NewString()
		}
		scenario.Nodes[node.ID] = node
		if parentID != "" {
			scenario.Nodes[parentID].Children = append(scenario.Nodes[parentID].Children, node.ID)
		}
		for _, report := range entry.Reports {
			build(report, node.ID)
		}
		return node.ID
	}

	scenario.RootID = build(file.Root, "")

	LogDebug("Loaded org file %s with %d positions", path, len(scenario.Nodes))
	return scenario, nil
}
