package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/org-builder/internal"
	"github.com/spf13/cobra"
)

var chatDelayMs int

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	scenarioStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("83")).
			Bold(true)
)

const chatHelp = `Start an interactive session against the loaded org chart.

Type plain-language commands like:
  create a marketing team under the COO
  add a product manager under the VP of Engineering
  move the design team under the CTO
  remove the director of finance
  reassign Sarah to the VP of Sales role

Session commands:
  apply       commit the pending preview to the active scenario
  clear       discard the pending preview
  reset       wipe the transcript, preview, and clarification state
  tree        print the active scenario's org tree
  scenarios   list scenarios and mark the active one
  quit        leave the session`

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive org editing session",
	Long:  chatHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseline, err := loadBaseline()
		if err != nil {
			return fmt.Errorf("failed to load baseline: %w", err)
		}
		manager := internal.NewScenarioManager(baseline)
		session := internal.NewChatSession(manager.Active, manager)
		if cmd.Flags().Changed("delay") {
			session.SetThinkDelay(time.Duration(chatDelayMs) * time.Millisecond)
		}

		return runChatLoop(session, manager, os.Stdin)
	},
}

// runChatLoop reads lines until EOF or quit. It is separated from the
// cobra handler so tests can drive it with a scripted reader.
func runChatLoop(session *internal.ChatSession, manager *internal.ScenarioManager, in io.Reader) error {
	fmt.Println(assistantStyle.Render("Hi! Describe a change to the org chart and I'll preview it before anything is committed."))
	fmt.Println(hintStyle.Render("Type 'help' for session commands, 'quit' to leave."))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print(promptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Println(chatHelp)
			continue
		case "apply":
			handleApply(session, manager)
			continue
		case "clear":
			session.ClearPreview()
			printNewMessages(session, 0)
			continue
		case "reset":
			session.ClearChat()
			fmt.Println(hintStyle.Render("Session reset."))
			continue
		case "tree":
			printTree(manager.Active(), manager.Active().RootID, "")
			continue
		case "scenarios":
			printScenarios(manager)
			continue
		}

		// Bare numbers answer an outstanding clarification by position.
		if session.AwaitingClarification() {
			if resolved, ok := resolveOptionNumber(session, input); ok {
				input = resolved
			}
		}

		before := len(session.Messages())
		session.SendMessage(input)
		printNewMessages(session, before)
	}
}

func handleApply(session *internal.ChatSession, manager *internal.ScenarioManager) {
	if !session.HasPreview() {
		fmt.Println(hintStyle.Render("Nothing to apply. Describe a change first."))
		return
	}
	scenario, branched := manager.EnsureMutable()
	if branched {
		fmt.Println(scenarioStyle.Render(fmt.Sprintf("Branched %q so the baseline stays untouched.", scenario.Name)))
	}
	before := len(session.Messages())
	if err := session.ApplyPreview(); err != nil {
		internal.LogDebug("apply failed: %v", err)
	}
	printNewMessages(session, before)
}

// resolveOptionNumber maps "1".."n" onto the labels of the pending
// clarification's options.
func resolveOptionNumber(session *internal.ChatSession, input string) (string, bool) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return "", false
	}
	options := lastClarificationOptions(session)
	if n < 1 || n > len(options) {
		return "", false
	}
	return options[n-1].Label, true
}

func lastClarificationOptions(session *internal.ChatSession) []internal.ClarificationOption {
	messages := session.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		action := messages[i].Action
		if action != nil && action.Type == internal.ActionClarification {
			return action.Options
		}
	}
	return nil
}

func printNewMessages(session *internal.ChatSession, from int) {
	messages := session.Messages()
	for _, msg := range messages[from:] {
		if msg.Role != internal.RoleAssistant {
			continue
		}
		style := assistantStyle
		if msg.Action != nil && msg.Action.Type == internal.ActionError {
			style = errorStyle
		}
		fmt.Println(style.Render(msg.Content))

		if msg.Action == nil {
			continue
		}
		switch msg.Action.Type {
		case internal.ActionClarification:
			for i, opt := range msg.Action.Options {
				fmt.Println(optionStyle.Render(fmt.Sprintf("  %d. %s", i+1, opt.Label)))
			}
			fmt.Println(hintStyle.Render("Answer with a number or the option text."))
		case internal.ActionPreview:
			fmt.Println(hintStyle.Render("Type 'apply' to commit or 'clear' to discard."))
		}
	}
}

func printScenarios(manager *internal.ScenarioManager) {
	active := manager.Active()
	for _, scenario := range manager.Scenarios() {
		marker := "  "
		if scenario.ID == active.ID {
			marker = scenarioStyle.Render("* ")
		}
		label := scenario.Name
		if scenario.IsBaseline {
			label += " (baseline)"
		}
		fmt.Printf("%s%s\n", marker, label)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().IntVar(&chatDelayMs, "delay", int(internal.DefaultThinkDelay/time.Millisecond), "Artificial thinking delay in milliseconds (0 disables)")
}
