package internal

import (
	"fmt"

	"github.com/google/uuid"
)

// PreviewIDPrefix marks synthesized preview node ids. Committed nodes get
// plain UUIDs, so prefixed ids can never collide with real ones.
const PreviewIDPrefix = "preview-"

func previewNodeID() string {
	return PreviewIDPrefix + uuid.NewString()
}

// GeneratePreview synthesizes the non-committed overlay for a command
// without touching the real tree. For create_team the member nodes are
// parented at the synthesized lead's id even though the lead does not
// exist in the tree yet; the renderer chains them under it.
func GeneratePreview(command *ChatCommand) *PreviewState {
	preview := &PreviewState{Command: command}

	switch command.Type {
	case CommandCreateTeam:
		if len(command.Positions) == 0 {
			return preview
		}
		lead := command.Positions[0]
		leadID := previewNodeID()
		preview.PendingNodes = append(preview.PendingNodes, &OrgNode{
			ID: leadID,
			Position: &Position{
				ID:          PreviewIDPrefix + "pos-lead",
				Title:       lead.Title,
				Description: lead.Description,
				Level:       lead.Level,
				Department:  "General",
			},
			ParentID: command.ParentID,
		})
		for i, pos := range command.Positions[1:] {
			preview.PendingNodes = append(preview.PendingNodes, &OrgNode{
				ID: previewNodeID(),
				Position: &Position{
					ID:          fmt.Sprintf("%spos-member-%d", PreviewIDPrefix, i),
					Title:       pos.Title,
					Description: pos.Description,
					Level:       pos.Level,
					Department:  "General",
				},
				ParentID: leadID,
			})
		}

	case CommandCreatePosition:
		if len(command.Positions) == 0 {
			return preview
		}
		pos := command.Positions[0]
		preview.PendingNodes = append(preview.PendingNodes, &OrgNode{
			ID: previewNodeID(),
			Position: &Position{
				ID:          PreviewIDPrefix + "pos",
				Title:       pos.Title,
				Description: pos.Description,
				Level:       pos.Level,
				Department:  "General",
			},
			ParentID: command.ParentID,
		})

	case CommandMoveNode:
		preview.PendingMoves = append(preview.PendingMoves, PendingMove{
			NodeID:      command.NodeID,
			NewParentID: command.NewParentID,
		})

	case CommandRemovePosition:
		// Subtree expansion happens at apply time; the preview flags only
		// the removal root.
		preview.PendingRemovals = append(preview.PendingRemovals, command.NodeID)
	}

	return preview
}
