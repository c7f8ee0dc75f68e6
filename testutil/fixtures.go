package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleOrgYAML is a minimal org file used by loader and command tests.
const SampleOrgYAML = `name: Test Org
root:
  title: Chief Executive Officer
  level: 1
  department: Executive
  employee:
    name: Sarah Chen
    email: sarah.chen@company.com
  reports:
    - title: VP of Sales
      level: 3
      department: Sales
      employee:
        name: Michael Torres
    - title: VP of Engineering
      level: 3
      department: Technology
`

// CreateOrgFileFixture writes a sample YAML org file and returns its path.
func CreateOrgFileFixture(t *testing.T) string {
	t.Helper()
	dir := CreateTempDir(t)
	path := filepath.Join(dir, "org.yaml")
	if err := os.WriteFile(path, []byte(SampleOrgYAML), 0644); err != nil {
		t.Fatalf("Failed to write org file fixture: %v", err)
	}
	return path
}

