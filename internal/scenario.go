package internal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScenarioManager owns the committed scenario state: the baseline seeded at
// startup plus any derived what-if scenarios. All structural mutation goes
// through ApplyCommand, which refuses to touch the baseline.
type ScenarioManager struct {
	scenarios map[string]*Scenario
	order     []string
	activeID  string
}

// NewScenarioManager seeds a manager with the given baseline scenario.
func NewScenarioManager(baseline *Scenario) *ScenarioManager {
	m := &ScenarioManager{
		scenarios: map[string]*Scenario{baseline.ID: baseline},
		order:     []string{baseline.ID},
		activeID:  baseline.ID,
	}
	return m
}

// Active returns the currently selected scenario.
func (m *ScenarioManager) Active() *Scenario {
	return m.scenarios[m.activeID]
}

// SetActive switches the selected scenario.
func (m *ScenarioManager) SetActive(id string) error {
	if _, ok := m.scenarios[id]; !ok {
		return &ApplyError{ScenarioID: id, Reason: "unknown scenario"}
	}
	m.activeID = id
	return nil
}

// Get looks up a scenario by id.
func (m *ScenarioManager) Get(id string) (*Scenario, bool) {
	s, ok := m.scenarios[id]
	return s, ok
}

// Scenarios returns every scenario in creation order.
func (m *ScenarioManager) Scenarios() []*Scenario {
	out := make([]*Scenario, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.scenarios[id])
	}
	return out
}

// Baseline returns the baseline scenario.
func (m *ScenarioManager) Baseline() *Scenario {
	for _, id := range m.order {
		if m.scenarios[id].IsBaseline {
			return m.scenarios[id]
		}
	}
	return nil
}

// CreateScenario derives a new mutable scenario from the baseline. The
// node map is deep-copied so later edits never leak back into the
// baseline. An empty name gets a generated one.
func (m *ScenarioManager) CreateScenario(name string) *Scenario {
	baseline := m.Baseline()
	if name == "" {
		name = fmt.Sprintf("Scenario %d", len(m.order))
	}
	s := &Scenario{
		ID:         uuid.NewString(),
		Name:       name,
		CreatedAt:  time.Now(),
		Nodes:      CloneNodes(baseline.Nodes),
		RootID:     baseline.RootID,
		FreeAgents: append([]*Employee(nil), baseline.FreeAgents...),
	}
	m.scenarios[s.ID] = s
	m.order = append(m.order, s.ID)
	return s
}

// EnsureMutable returns the active scenario if it is editable, otherwise
// branches a fresh scenario off the baseline and makes it active. This is
// how chat-applied changes behave when the user is still looking at the
// baseline.
func (m *ScenarioManager) EnsureMutable() (*Scenario, bool) {
	active := m.Active()
	if !active.IsBaseline {
		return active, false
	}
	s := m.CreateScenario("")
	m.activeID = s.ID
	return s, true
}

// ApplyCommand applies a structured command to the identified scenario,
// replacing its node map wholesale so prior snapshots stay valid.
// Baseline scenarios are refused, and cycle-creating moves are rejected
// before any mutation happens.
func (m *ScenarioManager) ApplyCommand(command *ChatCommand, scenarioID string) error {
	scenario, ok := m.scenarios[scenarioID]
	if !ok {
		return &ApplyError{ScenarioID: scenarioID, Reason: "unknown scenario"}
	}
	if scenario.IsBaseline {
		return &ApplyError{ScenarioID: scenarioID, Reason: "baseline scenario is read-only"}
	}

	switch command.Type {
	case CommandCreateTeam, CommandCreatePosition:
		return m.applyCreate(scenario, command)
	case CommandMoveNode:
		return m.applyMove(scenario, command)
	case CommandRemovePosition:
		return m.applyRemove(scenario, command)
	case CommandReassignPerson:
		return m.applyReassign(scenario, command)
	default:
		return &ApplyError{ScenarioID: scenarioID, Reason: fmt.Sprintf("unsupported command type %q", command.Type)}
	}
}

func (m *ScenarioManager) applyCreate(scenario *Scenario, command *ChatCommand) error {
	nodes := scenario.Nodes
	parentID := command.ParentID

	for i, pos := range command.Positions {
		node := &OrgNode{
			ID: uuid.NewString(),
			Position: &Position{
				ID:          uuid.NewString(),
				Title:       pos.Title,
				Description: pos.Description,
				Level:       pos.Level,
				Department:  "General",
			},
		}

		target := command.ParentID
		if i > 0 {
			target = parentID
		}
		nodes = InsertNode(nodes, node, target)

		// Team members report to the synthesized lead, not the
		// original parent.
		if i == 0 && command.Type == CommandCreateTeam {
			parentID = node.ID
		}

		if scenario.RootID == "" && target == "" {
			scenario.RootID = node.ID
		}
	}

	scenario.Nodes = nodes
	return nil
}

func (m *ScenarioManager) applyMove(scenario *Scenario, command *ChatCommand) error {
	updated, ok := Reparent(scenario.Nodes, command.NodeID, command.NewParentID)
	if !ok {
		return &TreeError{
			Op:     "reparent",
			NodeID: command.NodeID,
			Reason: fmt.Sprintf("cannot move %q under %q: target is the node itself or one of its descendants", command.NodeTitle, command.NewParentTitle),
		}
	}
	scenario.Nodes = updated
	return nil
}

func (m *ScenarioManager) applyRemove(scenario *Scenario, command *ChatCommand) error {
	updated, displaced := RemoveSubtree(scenario.Nodes, command.NodeID)
	scenario.Nodes = updated
	scenario.FreeAgents = append(scenario.FreeAgents, displaced...)
	if scenario.RootID == command.NodeID {
		scenario.RootID = ""
	}
	return nil
}

func (m *ScenarioManager) applyReassign(scenario *Scenario, command *ChatCommand) error {
	if _, ok := scenario.Nodes[command.NewPositionID]; !ok {
		return &ApplyError{ScenarioID: scenario.ID, Reason: fmt.Sprintf("target position %q not found", command.NewPositionTitle)}
	}

	updated := CloneNodes(scenario.Nodes)

	var person *Employee
	for _, node := range updated {
		if node.Employee != nil && node.Employee.ID == command.PersonID {
			person = node.Employee
			node.Employee = nil
			break
		}
	}
	if person == nil {
		for i, agent := range scenario.FreeAgents {
			if agent.ID == command.PersonID {
				person = agent
				scenario.FreeAgents = append(scenario.FreeAgents[:i:i], scenario.FreeAgents[i+1:]...)
				break
			}
		}
	}
	if person == nil {
		return &ApplyError{ScenarioID: scenario.ID, Reason: fmt.Sprintf("person %q not found", command.PersonName)}
	}

	target := updated[command.NewPositionID]
	if target.Employee != nil {
		// Displaced occupant waits in the free-agent pool.
		scenario.FreeAgents = append(scenario.FreeAgents, target.Employee)
	}
	target.Employee = person

	scenario.Nodes = updated
	return nil
}
