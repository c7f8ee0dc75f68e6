package cmd

import (
	"testing"

	"github.com/iksnae/org-builder/testutil"
)

func resetSources(t *testing.T) {
	t.Helper()
	prevOrg, prevDB := orgFile, orgDB
	t.Cleanup(func() {
		orgFile, orgDB = prevOrg, prevDB
	})
	orgFile, orgDB = "", ""
}

func TestLoadBaseline_Seed(t *testing.T) {
	resetSources(t)

	scenario, err := loadBaseline()
	if err != nil {
		t.Fatalf("loadBaseline() error = %v", err)
	}
	if !scenario.IsBaseline {
		t.Error("seeded baseline is not marked as baseline")
	}
	if len(scenario.Nodes) == 0 {
		t.Error("seeded baseline has no nodes")
	}
}

func TestLoadBaseline_OrgFile(t *testing.T) {
	resetSources(t)
	orgFile = testutil.CreateOrgFileFixture(t)

	scenario, err := loadBaseline()
	if err != nil {
		t.Fatalf("loadBaseline() error = %v", err)
	}
	if scenario.Name != "Test Org" {
		t.Errorf("scenario name = %q, want Test Org", scenario.Name)
	}
}

func TestLoadBaseline_Database(t *testing.T) {
	resetSources(t)
	orgDB = testutil.CreateOrgDBFixture(t)

	scenario, err := loadBaseline()
	if err != nil {
		t.Fatalf("loadBaseline() error = %v", err)
	}
	if len(scenario.Nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(scenario.Nodes))
	}
}

func TestLoadBaseline_BothSourcesRejected(t *testing.T) {
	resetSources(t)
	orgFile = "org.yaml"
	orgDB = "org.db"

	if _, err := loadBaseline(); err == nil {
		t.Error("loadBaseline() accepted both --org and --db")
	}
}
