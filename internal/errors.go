package internal

import "fmt"

// TreeError represents a structural-invariant violation, rejected before
// any mutation is applied
type TreeError struct {
	Op     string // "reparent", "remove", "insert"
	NodeID string
	Reason string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("tree error: %s %s: %s", e.Op, e.NodeID, e.Reason)
}

// ApplyError represents a command rejected at the mutation boundary
type ApplyError struct {
	ScenarioID string
	Reason     string
	Err        error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply error [%s]: %s", e.ScenarioID, e.Reason)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// SnapshotError represents errors loading an org snapshot
type SnapshotError struct {
	Path string
	Op   string // "open", "read", "parse"
	Err  error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
