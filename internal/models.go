package internal

import "time"

// Position is a role definition within the organization
type Position struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty" yaml:"required_skills,omitempty"`
	Level          int      `json:"level" yaml:"level"`
	Department     string   `json:"department,omitempty" yaml:"department,omitempty"`
}

// Employee is a person who can occupy a position slot
type Employee struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email,omitempty" yaml:"email,omitempty"`
	Department string   `json:"department,omitempty" yaml:"department,omitempty"`
	Skills     []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	MatchScore int      `json:"matchScore,omitempty" yaml:"match_score,omitempty"` // 0-100, used for ranking suggestions
}

// OrgNode is a position slot in a specific scenario's tree.
// An empty ParentID marks the root. A nil Employee means the slot is open.
type OrgNode struct {
	ID       string    `json:"id" yaml:"id"`
	Position *Position `json:"position" yaml:"position"`
	Employee *Employee `json:"employee,omitempty" yaml:"employee,omitempty"`
	ParentID string    `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	Children []string  `json:"children,omitempty" yaml:"children,omitempty"`
	// Layout coordinates, presentation-only
	X float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Filled reports whether the slot has an occupant.
func (n *OrgNode) Filled() bool {
	return n.Employee != nil
}

// Scenario is a named, independent copy of an org tree.
// The baseline scenario is read-only; derived scenarios are freely mutable.
type Scenario struct {
	ID         string              `json:"id" yaml:"id"`
	Name       string              `json:"name" yaml:"name"`
	IsBaseline bool                `json:"isBaseline" yaml:"is_baseline"`
	CreatedAt  time.Time           `json:"createdAt" yaml:"created_at"`
	Nodes      map[string]*OrgNode `json:"nodes" yaml:"nodes"`
	RootID     string              `json:"rootId,omitempty" yaml:"root_id,omitempty"`
	FreeAgents []*Employee         `json:"freeAgents,omitempty" yaml:"free_agents,omitempty"`
}

// MessageRole identifies who authored a chat message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one entry in a session's transcript
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Action    *ChatAction `json:"action,omitempty"`
}

// ChatActionType discriminates the optional payload on an assistant message
type ChatActionType string

const (
	ActionPreview       ChatActionType = "preview"
	ActionClarification ChatActionType = "clarification"
	ActionError         ChatActionType = "error"
)

// ChatAction carries exactly one kind of payload, per Type
type ChatAction struct {
	Type    ChatActionType        `json:"type"`
	Command *ChatCommand          `json:"command,omitempty"` // preview
	Options []ClarificationOption `json:"options,omitempty"` // clarification
	Message string                `json:"message,omitempty"` // error
}

// ClarificationOption is one selectable answer to an ambiguous reference
type ClarificationOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	ID    string `json:"id,omitempty"`
}

// CommandType discriminates the closed set of structured operations
type CommandType string

const (
	CommandCreateTeam     CommandType = "create_team"
	CommandCreatePosition CommandType = "create_position"
	CommandMoveNode       CommandType = "move_node"
	CommandRemovePosition CommandType = "remove_position"
	CommandReassignPerson CommandType = "reassign_person"
)

// NewPositionData describes a position to be created by a command
type NewPositionData struct {
	Title       string `json:"title"`
	Level       int    `json:"level"`
	Description string `json:"description,omitempty"`
}

// ChatCommand is a structured operation produced by the parser.
// References carry both the resolved id and the resolved display title
// so confirmation text stays human-readable.
type ChatCommand struct {
	Type CommandType `json:"type"`

	// create_team / create_position
	ParentTitle string            `json:"parentTitle,omitempty"`
	ParentID    string            `json:"parentId,omitempty"`
	TeamName    string            `json:"teamName,omitempty"`
	Positions   []NewPositionData `json:"positions,omitempty"` // first entry is the team lead

	// move_node / remove_position
	NodeTitle      string `json:"nodeTitle,omitempty"`
	NodeID         string `json:"nodeId,omitempty"`
	NewParentTitle string `json:"newParentTitle,omitempty"`
	NewParentID    string `json:"newParentId,omitempty"`

	// reassign_person
	PersonName       string `json:"personName,omitempty"`
	PersonID         string `json:"personId,omitempty"`
	NewPositionTitle string `json:"newPositionTitle,omitempty"`
	NewPositionID    string `json:"newPositionId,omitempty"`
}

// PendingMove records a node awaiting reparent in a preview
type PendingMove struct {
	NodeID      string `json:"nodeId"`
	NewParentID string `json:"newParentId"`
}

// PreviewState is the ephemeral overlay for a not-yet-applied command.
// Pending node ids carry the "preview-" prefix so they can never collide
// with committed node ids.
type PreviewState struct {
	PendingNodes    []*OrgNode    `json:"pendingNodes,omitempty"`
	PendingMoves    []PendingMove `json:"pendingMoves,omitempty"`
	PendingRemovals []string      `json:"pendingRemovals,omitempty"`
	Command         *ChatCommand  `json:"command"`
}
