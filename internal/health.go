package internal

import (
	"fmt"
	"sort"
)

// maxSpanOfControl is the direct-report count above which a manager gets
// flagged.
const maxSpanOfControl = 7

// FlagType categorizes a health flag
type FlagType string

const (
	FlagSpan    FlagType = "span"
	FlagVacancy FlagType = "vacancy"
)

// FlagSeverity grades a health flag
type FlagSeverity string

const (
	SeverityWarning  FlagSeverity = "warning"
	SeverityCritical FlagSeverity = "critical"
)

// HealthFlag is one issue detected in the org structure
type HealthFlag struct {
	Type     FlagType     `json:"type"`
	Severity FlagSeverity `json:"severity"`
	Message  string       `json:"message"`
	NodeIDs  []string     `json:"nodeIds,omitempty"`
}

// OrgHealth summarizes the structural health of a scenario's tree
type OrgHealth struct {
	Headcount     int          `json:"headcount"`
	OpenPositions int          `json:"openPositions"`
	Layers        int          `json:"layers"`
	Flags         []HealthFlag `json:"flags,omitempty"`
}

// AnalyzeHealth computes headcount, depth, and structural flags from the
// live tree.
func AnalyzeHealth(scenario *Scenario) OrgHealth {
	health := OrgHealth{}

	for _, node := range orderedNodes(scenario.Nodes) {
		if node.Filled() {
			health.Headcount++
		} else {
			health.OpenPositions++
			if node.Position.Level <= 2 {
				health.Flags = append(health.Flags, HealthFlag{
					Type:     FlagVacancy,
					Severity: SeverityCritical,
					Message:  fmt.Sprintf("%s position is vacant", node.Position.Title),
					NodeIDs:  []string{node.ID},
				})
			}
		}

		if len(node.Children) > maxSpanOfControl {
			health.Flags = append(health.Flags, HealthFlag{
				Type:     FlagSpan,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s has %d direct reports (recommended: at most %d)",
					node.Position.Title, len(node.Children), maxSpanOfControl),
				NodeIDs: []string{node.ID},
			})
		}
	}

	if scenario.RootID != "" {
		health.Layers = treeDepth(scenario.Nodes, scenario.RootID)
	}

	return health
}

func treeDepth(nodes map[string]*OrgNode, nodeID string) int {
	node, ok := nodes[nodeID]
	if !ok {
		return 0
	}
	deepest := 0
	for _, childID := range node.Children {
		if d := treeDepth(nodes, childID); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Candidate pairs an employee with a fit score for an open position
type Candidate struct {
	Employee *Employee `json:"employee"`
	Score    int       `json:"score"`
}

// SuggestCandidates ranks employees against a position's required skills.
// Each required skill contributes the best fuzzy similarity against the
// employee's skills; the employee's match score breaks ties.
func SuggestCandidates(employees []*Employee, position *Position, limit int) []Candidate {
	if len(position.RequiredSkills) == 0 || len(employees) == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(employees))
	for _, emp := range employees {
		if len(emp.Skills) == 0 {
			continue
		}
		total := 0
		for _, required := range position.RequiredSkills {
			best := 0
			for _, skill := range emp.Skills {
				if score := Similarity(required, skill); score > best {
					best = score
				}
			}
			total += best
		}
		score := total / len(position.RequiredSkills)
		if score > 0 {
			candidates = append(candidates, Candidate{Employee: emp, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Employee.MatchScore > candidates[j].Employee.MatchScore
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
