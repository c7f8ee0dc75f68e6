package internal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens a SQLite HR snapshot in read-only mode.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &SnapshotError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &SnapshotError{Path: path, Op: "open", Err: fmt.Errorf("database ping failed: %w", err)}
	}

	return db, nil
}

// LoadOrgDatabase reads a baseline scenario from an HR snapshot database.
// Expected tables:
//
//	positions(id, title, description, level, department, skills)
//	employees(id, name, email, department, skills, match_score)
//	org_nodes(id, position_id, employee_id, parent_id, sort_order)
//
// skills columns are comma-separated. employee_id and parent_id may be NULL.
func LoadOrgDatabase(db *sql.DB, path string) (*Scenario, error) {
	positions, err := loadPositions(db)
	if err != nil {
		return nil, &SnapshotError{Path: path, Op: "read", Err: err}
	}
	employees, err := loadEmployees(db)
	if err != nil {
		return nil, &SnapshotError{Path: path, Op: "read", Err: err}
	}

	scenario := &Scenario{
		ID:         "baseline",
		Name:       "Current Org (Baseline)",
		IsBaseline: true,
		CreatedAt:  time.Now(),
		Nodes:      make(map[string]*OrgNode),
	}

	rows, err := db.Query(`SELECT id, position_id, employee_id, parent_id FROM org_nodes ORDER BY sort_order, id`)
	if err != nil {
		return nil, &SnapshotError{Path: path, Op: "read", Err: err}
	}
	defer rows.Close()

	var order []string
	for rows.Next() {
		var id, positionID string
		var employeeID, parentID sql.NullString
		if err := rows.Scan(&id, &positionID, &employeeID, &parentID); err != nil {
			return nil, &SnapshotError{Path: path, Op: "read", Err: err}
		}

		position, ok := positions[positionID]
		if !ok {
			return nil, &SnapshotError{Path: path, Op: "parse",
				Err: fmt.Errorf("org node %s references unknown position %s", id, positionID)}
		}

		node := &OrgNode{ID: id, Position: position}
		if employeeID.Valid {
			employee, ok := employees[employeeID.String]
			if !ok {
				LogWarn("org node %s references unknown employee %s, leaving slot open", id, employeeID.String)
			}
			node.Employee = employee
		}
		if parentID.Valid {
			node.ParentID = parentID.String
		}
		scenario.Nodes[id] = node
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &SnapshotError{Path: path, Op: "read", Err: err}
	}

	// Children lists follow row order; the root is the single parentless node.
	for _, id := range order {
		node := scenario.Nodes[id]
		if node.ParentID == "" {
			if scenario.RootID != "" {
				return nil, &SnapshotError{Path: path, Op: "parse",
					Err: fmt.Errorf("multiple root nodes: %s and %s", scenario.RootID, id)}
			}
			scenario.RootID = id
			continue
		}
		parent, ok := scenario.Nodes[node.ParentID]
		if !ok {
			return nil, &SnapshotError{Path: path, Op: "parse",
				Err: fmt.Errorf("org node %s references unknown parent %s", id, node.ParentID)}
		}
		parent.Children = append(parent.Children, id)
	}

	LogDebug("Loaded org database %s with %d positions", path, len(scenario.Nodes))
	return scenario, nil
}

func loadPositions(db *sql.DB) (map[string]*Position, error) {
	rows, err := db.Query(`SELECT id, title, description, level, department, skills FROM positions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make(map[string]*Position)
	for rows.Next() {
		var p Position
		var description, department, skills sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &description, &p.Level, &department, &skills); err != nil {
			return nil, err
		}
		p.Description = description.String
		p.Department = department.String
		p.RequiredSkills = splitSkills(skills.String)
		positions[p.ID] = &p
	}
	return positions, rows.Err()
}

func loadEmployees(db *sql.DB) (map[string]*Employee, error) {
	rows, err := db.Query(`SELECT id, name, email, department, skills, match_score FROM employees`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make(map[string]*Employee)
	for rows.Next() {
		var e Employee
		var email, department, skills sql.NullString
		var matchScore sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Name, &email, &department, &skills, &matchScore); err != nil {
			return nil, err
		}
		e.Email = email.String
		e.Department = department.String
		e.Skills = splitSkills(skills.String)
		e.MatchScore = int(matchScore.Int64)
		employees[e.ID] = &e
	}
	return employees, rows.Err()
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
