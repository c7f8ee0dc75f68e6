package internal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultThinkDelay is the artificial pause before a parse result is
// surfaced, simulating assistant thinking.
const DefaultThinkDelay = 300 * time.Millisecond

// CommandApplier is the external mutation boundary that owns committed
// scenario state.
type CommandApplier interface {
	ApplyCommand(command *ChatCommand, scenarioID string) error
}

// SnapshotFunc supplies the current scenario snapshot before each parse.
type SnapshotFunc func() *Scenario

type pendingClarification struct {
	originalInput string
	phrase        string
	options       []ClarificationOption
}

// ChatSession orchestrates one conversation: it feeds raw input through
// the parser, owns the single outstanding clarification and the single
// live preview, and hands approved commands to the applier. Inputs are
// serialized; a second message blocks until the first has been processed.
type ChatSession struct {
	mu sync.Mutex

	parser     *Parser
	snapshot   SnapshotFunc
	applier    CommandApplier
	thinkDelay time.Duration

	messages      []ChatMessage
	preview       *PreviewState
	clarification *pendingClarification
	processing    bool
}

// NewChatSession creates a session bound to a snapshot provider and an
// applier.
func NewChatSession(snapshot SnapshotFunc, applier CommandApplier) *ChatSession {
	return &ChatSession{
		parser:     NewParser(),
		snapshot:   snapshot,
		applier:    applier,
		thinkDelay: DefaultThinkDelay,
	}
}

// SetThinkDelay overrides the artificial thinking delay. Zero disables it.
func (s *ChatSession) SetThinkDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thinkDelay = d
}

// Messages returns a copy of the transcript.
func (s *ChatSession) Messages() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatMessage(nil), s.messages...)
}

// Preview returns the live preview, or nil.
func (s *ChatSession) Preview() *PreviewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// HasPreview reports whether apply/clear actions should be offered.
func (s *ChatSession) HasPreview() bool {
	return s.Preview() != nil
}

// IsProcessing reports whether an input is currently being handled.
func (s *ChatSession) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

// AwaitingClarification reports whether the session is waiting for the
// user to pick between ambiguous matches.
func (s *ChatSession) AwaitingClarification() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clarification != nil
}

func (s *ChatSession) appendMessage(role MessageRole, content string, action *ChatAction) ChatMessage {
	msg := ChatMessage{
		ID:        "msg-" + uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Action:    action,
	}
	s.messages = append(s.messages, msg)
	return msg
}

// SendMessage feeds one raw input through the session. The returned
// messages are the transcript entries the call produced (the echoed user
// turn plus the assistant's response).
func (s *ChatSession) SendMessage(input string) []ChatMessage {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.processing = true
	defer func() { s.processing = false }()

	before := len(s.messages)
	s.appendMessage(RoleUser, input, nil)

	if s.clarification != nil {
		s.handleClarificationAnswer(input)
		return append([]ChatMessage(nil), s.messages[before:]...)
	}

	if s.thinkDelay > 0 {
		time.Sleep(s.thinkDelay)
	}

	s.handleParse(input)
	return append([]ChatMessage(nil), s.messages[before:]...)
}

func (s *ChatSession) handleClarificationAnswer(input string) {
	pending := s.clarification

	var chosen *ClarificationOption
	for i := range pending.options {
		opt := &pending.options[i]
		if strings.EqualFold(opt.Label, input) || strings.EqualFold(opt.Value, input) {
			chosen = opt
			break
		}
	}

	if chosen == nil {
		s.appendMessage(RoleAssistant, "Please select one of the options above or type your command again.", nil)
		return
	}

	s.clarification = nil
	rewritten := ReplacePhrase(pending.originalInput, pending.phrase, chosen.Value)
	s.handleParse(rewritten)
}

func (s *ChatSession) handleParse(input string) {
	result := s.parser.Parse(input, s.snapshot().Nodes)

	switch {
	case result.ErrorMessage != "":
		s.appendMessage(RoleAssistant, result.ErrorMessage, &ChatAction{
			Type:    ActionError,
			Message: result.ErrorMessage,
		})

	case result.Clarification != nil:
		s.clarification = &pendingClarification{
			originalInput: input,
			phrase:        result.Clarification.Phrase,
			options:       result.Clarification.Options,
		}
		s.appendMessage(RoleAssistant, result.Clarification.Message, &ChatAction{
			Type:    ActionClarification,
			Options: result.Clarification.Options,
		})

	case result.Command != nil:
		s.preview = GeneratePreview(result.Command)
		content := CommandDescription(result.Command) +
			"\n\nPreview is ready. Type \"apply\" to confirm or keep refining."
		s.appendMessage(RoleAssistant, content, &ChatAction{
			Type:    ActionPreview,
			Command: result.Command,
		})
	}
}

// SelectClarificationOption answers a pending clarification by label; it
// is equivalent to sending the label as a message.
func (s *ChatSession) SelectClarificationOption(label string) []ChatMessage {
	return s.SendMessage(label)
}

// ApplyPreview hands the stored command to the applier. On success the
// preview and any stale clarification are cleared together; on failure
// the error is surfaced in the transcript and the preview is discarded.
func (s *ChatSession) ApplyPreview() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.preview == nil || s.preview.Command == nil {
		return nil
	}

	command := s.preview.Command
	err := s.applier.ApplyCommand(command, s.snapshot().ID)
	if err != nil {
		s.appendMessage(RoleAssistant, fmt.Sprintf("I couldn't apply that change: %v", err), &ChatAction{
			Type:    ActionError,
			Message: err.Error(),
		})
		s.preview = nil
		return err
	}

	s.appendMessage(RoleAssistant, "✓ Changes applied successfully!", nil)
	s.preview = nil
	s.clarification = nil
	return nil
}

// ClearPreview discards the live preview without mutating anything.
func (s *ChatSession) ClearPreview() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.preview == nil {
		return
	}
	s.preview = nil
	s.appendMessage(RoleAssistant, "Preview cleared. What would you like to do?", nil)
}

// ClearChat resets transcript, preview, and clarification memory as one
// unit.
func (s *ChatSession) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	s.preview = nil
	s.clarification = nil
}

// CommandDescription builds the human-readable confirmation line for a
// structured command.
func CommandDescription(command *ChatCommand) string {
	switch command.Type {
	case CommandCreateTeam:
		titles := make([]string, len(command.Positions))
		for i, pos := range command.Positions {
			titles[i] = pos.Title
		}
		return fmt.Sprintf("I'll create a %q team with %d positions under %s:\n• %s",
			command.TeamName, len(command.Positions), command.ParentTitle, strings.Join(titles, "\n• "))
	case CommandCreatePosition:
		title := ""
		if len(command.Positions) > 0 {
			title = command.Positions[0].Title
		}
		return fmt.Sprintf("I'll add a new %q position under %s.", title, command.ParentTitle)
	case CommandMoveNode:
		return fmt.Sprintf("I'll move %q to report under %s.", command.NodeTitle, command.NewParentTitle)
	case CommandRemovePosition:
		return fmt.Sprintf("I'll remove the %q position from the org chart.", command.NodeTitle)
	case CommandReassignPerson:
		return fmt.Sprintf("I'll reassign %s to the %s position.", command.PersonName, command.NewPositionTitle)
	default:
		return "Processing your request..."
	}
}
