package internal

import (
	"errors"
	"strings"
	"testing"
)

func newTestSession(t *testing.T) (*ChatSession, *ScenarioManager) {
	t.Helper()
	baseline := BuildTestScenario()
	baseline.IsBaseline = true
	manager := NewScenarioManager(baseline)
	session := NewChatSession(manager.Active, manager)
	session.SetThinkDelay(0)
	return session, manager
}

func TestChatSession_SendMessageProducesPreview(t *testing.T) {
	session, _ := newTestSession(t)

	produced := session.SendMessage("add a Product Manager under the CEO")

	if len(produced) != 2 {
		t.Fatalf("SendMessage() produced %d messages, want 2", len(produced))
	}
	if produced[0].Role != RoleUser || produced[1].Role != RoleAssistant {
		t.Errorf("roles = [%s %s], want [user assistant]", produced[0].Role, produced[1].Role)
	}
	action := produced[1].Action
	if action == nil || action.Type != ActionPreview {
		t.Fatalf("assistant action = %+v, want preview", action)
	}
	if !session.HasPreview() {
		t.Error("session has no live preview after a parsed command")
	}
	if !strings.Contains(produced[1].Content, "Product Manager") {
		t.Errorf("confirmation %q does not mention the new position", produced[1].Content)
	}
}

func TestChatSession_EmptyInputIgnored(t *testing.T) {
	session, _ := newTestSession(t)

	if produced := session.SendMessage("   "); produced != nil {
		t.Errorf("SendMessage(blank) = %+v, want nil", produced)
	}
	if len(session.Messages()) != 0 {
		t.Error("blank input reached the transcript")
	}
}

func TestChatSession_UnparseableInput(t *testing.T) {
	session, _ := newTestSession(t)

	produced := session.SendMessage("please do something nice")

	action := produced[len(produced)-1].Action
	if action == nil || action.Type != ActionError {
		t.Fatalf("assistant action = %+v, want error", action)
	}
	if session.HasPreview() {
		t.Error("unparseable input produced a preview")
	}
}

func TestChatSession_ClarificationFlow(t *testing.T) {
	session, manager := newTestSession(t)
	baseline := manager.Baseline()
	AddTestNode(baseline, baseline.RootID, "Director of Sales", 3, "")
	AddTestNode(baseline, baseline.RootID, "Director of Marketing", 3, "")

	produced := session.SendMessage("remove the Director")

	action := produced[len(produced)-1].Action
	if action == nil || action.Type != ActionClarification {
		t.Fatalf("assistant action = %+v, want clarification", action)
	}
	if !session.AwaitingClarification() {
		t.Fatal("session is not awaiting clarification")
	}
	if len(action.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(action.Options))
	}

	answer := session.SendMessage("Director of Marketing")
	final := answer[len(answer)-1]
	if final.Action == nil || final.Action.Type != ActionPreview {
		t.Fatalf("post-answer action = %+v, want preview", final.Action)
	}
	if session.AwaitingClarification() {
		t.Error("clarification still pending after a valid answer")
	}
	if final.Action.Command.NodeTitle != "Director of Marketing" {
		t.Errorf("resolved node = %q, want Director of Marketing", final.Action.Command.NodeTitle)
	}
}

func TestChatSession_ClarificationRejectsUnknownAnswer(t *testing.T) {
	session, manager := newTestSession(t)
	baseline := manager.Baseline()
	AddTestNode(baseline, baseline.RootID, "Director of Sales", 3, "")
	AddTestNode(baseline, baseline.RootID, "Director of Marketing", 3, "")

	session.SendMessage("remove the Director")
	produced := session.SendMessage("the blue one")

	last := produced[len(produced)-1]
	if last.Role != RoleAssistant || !strings.Contains(last.Content, "select one of the options") {
		t.Errorf("unexpected response to a bad answer: %q", last.Content)
	}
	if !session.AwaitingClarification() {
		t.Error("bad answer dismissed the pending clarification")
	}
}

func TestChatSession_SelectClarificationOption(t *testing.T) {
	session, manager := newTestSession(t)
	baseline := manager.Baseline()
	AddTestNode(baseline, baseline.RootID, "Director of Sales", 3, "")
	AddTestNode(baseline, baseline.RootID, "Director of Marketing", 3, "")

	session.SendMessage("remove the Director")
	produced := session.SelectClarificationOption("Director of Sales")

	final := produced[len(produced)-1]
	if final.Action == nil || final.Action.Type != ActionPreview {
		t.Fatalf("post-selection action = %+v, want preview", final.Action)
	}
	if final.Action.Command.NodeTitle != "Director of Sales" {
		t.Errorf("resolved node = %q, want Director of Sales", final.Action.Command.NodeTitle)
	}
}

func TestChatSession_ApplyPreview(t *testing.T) {
	session, manager := newTestSession(t)

	session.SendMessage("remove the Account Executive")
	if !session.HasPreview() {
		t.Fatal("no preview to apply")
	}

	// Branch off the baseline the way the chat surface does.
	manager.EnsureMutable()
	if err := session.ApplyPreview(); err != nil {
		t.Fatalf("ApplyPreview() error = %v", err)
	}

	if session.HasPreview() {
		t.Error("preview survived a successful apply")
	}
	active := manager.Active()
	if len(active.Nodes) != 3 {
		t.Errorf("active nodes = %d, want 3", len(active.Nodes))
	}
	if len(manager.Baseline().Nodes) != 4 {
		t.Error("apply mutated the baseline")
	}
	messages := session.Messages()
	last := messages[len(messages)-1]
	if !strings.Contains(last.Content, "applied successfully") {
		t.Errorf("final message = %q, want success confirmation", last.Content)
	}
}

func TestChatSession_ApplyPreviewAgainstBaselineFails(t *testing.T) {
	session, _ := newTestSession(t)

	session.SendMessage("remove the Account Executive")
	err := session.ApplyPreview()
	if err == nil {
		t.Fatal("applying against the read-only baseline succeeded")
	}
	var applyErr *ApplyError
	if !errors.As(err, &applyErr) {
		t.Errorf("error type = %T, want *ApplyError", err)
	}
	if session.HasPreview() {
		t.Error("failed apply kept the preview alive")
	}
	messages := session.Messages()
	last := messages[len(messages)-1]
	if last.Action == nil || last.Action.Type != ActionError {
		t.Errorf("failed apply did not surface an error message: %+v", last)
	}
}

func TestChatSession_ApplyPreviewWithoutPreview(t *testing.T) {
	session, _ := newTestSession(t)
	if err := session.ApplyPreview(); err != nil {
		t.Errorf("ApplyPreview() with no preview = %v, want nil", err)
	}
}

func TestChatSession_ClearPreview(t *testing.T) {
	session, _ := newTestSession(t)

	session.SendMessage("remove the Account Executive")
	session.ClearPreview()

	if session.HasPreview() {
		t.Error("preview survived ClearPreview")
	}
	messages := session.Messages()
	last := messages[len(messages)-1]
	if !strings.Contains(last.Content, "Preview cleared") {
		t.Errorf("final message = %q, want cleared notice", last.Content)
	}
}

func TestChatSession_ClearChatResetsEverything(t *testing.T) {
	session, manager := newTestSession(t)
	baseline := manager.Baseline()
	AddTestNode(baseline, baseline.RootID, "Director of Sales", 3, "")
	AddTestNode(baseline, baseline.RootID, "Director of Marketing", 3, "")

	session.SendMessage("remove the Director")
	session.ClearChat()

	if len(session.Messages()) != 0 {
		t.Error("transcript survived ClearChat")
	}
	if session.HasPreview() {
		t.Error("preview survived ClearChat")
	}
	if session.AwaitingClarification() {
		t.Error("clarification survived ClearChat")
	}

	// A fresh command right after the reset starts a clean exchange.
	produced := session.SendMessage("add a Product Manager under the CEO")
	if len(produced) != 2 {
		t.Errorf("post-reset SendMessage produced %d messages, want 2", len(produced))
	}
}

func TestCommandDescription(t *testing.T) {
	tests := []struct {
		name    string
		command *ChatCommand
		want    string
	}{
		{
			name: "create team",
			command: &ChatCommand{
				Type:        CommandCreateTeam,
				TeamName:    "Design",
				ParentTitle: "Chief Technology Officer",
				Positions: []NewPositionData{
					{Title: "Design Lead"},
					{Title: "Design Specialist"},
				},
			},
			want: "Design",
		},
		{
			name: "move",
			command: &ChatCommand{
				Type:           CommandMoveNode,
				NodeTitle:      "VP of Sales",
				NewParentTitle: "Chief Executive Officer",
			},
			want: "VP of Sales",
		},
		{
			name: "remove",
			command: &ChatCommand{
				Type:      CommandRemovePosition,
				NodeTitle: "Director of Finance",
			},
			want: "Director of Finance",
		},
		{
			name: "reassign",
			command: &ChatCommand{
				Type:             CommandReassignPerson,
				PersonName:       "Casey Lin",
				NewPositionTitle: "VP of Engineering",
			},
			want: "Casey Lin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommandDescription(tt.command)
			if !strings.Contains(got, tt.want) {
				t.Errorf("CommandDescription() = %q, want mention of %q", got, tt.want)
			}
		})
	}
}
