package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const orgSchema = `
CREATE TABLE positions (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	level INTEGER NOT NULL,
	department TEXT,
	skills TEXT
);
CREATE TABLE employees (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT,
	department TEXT,
	skills TEXT,
	match_score INTEGER
);
CREATE TABLE org_nodes (
	id TEXT PRIMARY KEY,
	position_id TEXT NOT NULL,
	employee_id TEXT,
	parent_id TEXT,
	sort_order INTEGER
);`

func openOrgDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open database %s: %v", dsn, err)
	}

	if _, err := db.Exec(orgSchema); err != nil {
		db.Close()
		t.Fatalf("Failed to create org schema: %v", err)
	}

	return db
}

// CreateInMemoryOrgDB creates an in-memory SQLite database with the HR
// snapshot schema.
func CreateInMemoryOrgDB(t *testing.T) *sql.DB {
	t.Helper()
	return openOrgDB(t, ":memory:")
}

// CreateTestOrgDB creates a test database with a small three-node org:
// a CEO with a VP of Sales and a vacant VP of Engineering beneath.
func CreateTestOrgDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryOrgDB(t)
	seedOrgDB(t, db)
	return db
}

// CreateOrgDBFixture writes the same snapshot to a file on disk and
// returns its path.
func CreateOrgDBFixture(t *testing.T) string {
	t.Helper()
	dir := CreateTempDir(t)
	path := filepath.Join(dir, "org.db")
	db := openOrgDB(t, path)
	seedOrgDB(t, db)
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close org database fixture: %v", err)
	}
	return path
}

func seedOrgDB(t *testing.T, db *sql.DB) {
	t.Helper()

	stmts := []struct {
		query string
		args  []interface{}
	}{
		{
			query: "INSERT INTO positions (id, title, description, level, department, skills) VALUES (?, ?, ?, ?, ?, ?)",
			args:  []interface{}{"pos-ceo", "Chief Executive Officer", "Lead the company", 1, "Executive", "Leadership,Strategy"},
		},
		{
			query: "INSERT INTO positions (id, title, description, level, department, skills) VALUES (?, ?, ?, ?, ?, ?)",
			args:  []interface{}{"pos-sales", "VP of Sales", "Drive revenue", 3, "Sales", "Sales Leadership,Negotiation"},
		},
		{
			query: "INSERT INTO positions (id, title, description, level, department, skills) VALUES (?, ?, ?, ?, ?, ?)",
			args:  []interface{}{"pos-eng", "VP of Engineering", "Lead engineering", 3, "Technology", "Engineering Management,Architecture"},
		},
		{
			query: "INSERT INTO employees (id, name, email, department, skills, match_score) VALUES (?, ?, ?, ?, ?, ?)",
			args:  []interface{}{"emp-1", "Sarah Chen", "sarah.chen@company.com", "Executive", "Leadership,Strategy", 95},
		},
		{
			query: "INSERT INTO employees (id, name, email, department, skills, match_score) VALUES (?, ?, ?, ?, ?, ?)",
			args:  []interface{}{"emp-2", "Michael Torres", "michael.torres@company.com", "Sales", "Sales Leadership,CRM", 88},
		},
		{
			query: "INSERT INTO org_nodes (id, position_id, employee_id, parent_id, sort_order) VALUES (?, ?, ?, ?, ?)",
			args:  []interface{}{"node-1", "pos-ceo", "emp-1", nil, 1},
		},
		{
			query: "INSERT INTO org_nodes (id, position_id, employee_id, parent_id, sort_order) VALUES (?, ?, ?, ?, ?)",
			args:  []interface{}{"node-2", "pos-sales", "emp-2", "node-1", 2},
		},
		{
			query: "INSERT INTO org_nodes (id, position_id, employee_id, parent_id, sort_order) VALUES (?, ?, ?, ?, ?)",
			args:  []interface{}{"node-3", "pos-eng", nil, "node-1", 3},
		},
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt.query, stmt.args...); err != nil {
			db.Close()
			t.Fatalf("Failed to seed org database: %v", err)
		}
	}
}
