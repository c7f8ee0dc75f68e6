package internal

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Intent patterns, tried in order. First match wins. These mirror the
// grammar users actually type: leading verb, target phrase, preposition,
// reference phrase.
var (
	createTeamPattern = regexp.MustCompile(
		`(?i)(?:create|add)\s+(?:a\s+)?(?:new\s+)?(.+?)\s+team\s+(?:under|reporting\s+to|below)\s+(?:the\s+)?(.+?)(?:\s+with\s+(\d+)\s+(?:people|positions|members))?$`)
	createPositionPattern = regexp.MustCompile(
		`(?i)(?:create|add)\s+(?:a\s+)?(?:new\s+)?(.+?)\s+(?:position\s+)?(?:under|reporting\s+to|below)\s+(?:the\s+)?(.+)$`)
	movePattern = regexp.MustCompile(
		`(?i)move\s+(?:the\s+)?(.+?)\s+(?:under|to|below|reporting\s+to)\s+(?:the\s+)?(.+)$`)
	removePattern = regexp.MustCompile(
		`(?i)(?:remove|delete|cut)\s+(?:the\s+)?(.+?)(?:\s+position)?$`)
	reassignPattern = regexp.MustCompile(
		`(?i)(?:reassign|move|assign)\s+(.+?)\s+to\s+(?:the\s+)?(.+?)(?:\s+position)?$`)
)

const usageExamples = `I didn't understand that command. Try something like:
• "Create a new Marketing team under the COO with 3 people"
• "Add a Product Manager position under the CTO"
• "Move VP of Sales under the CEO"
• "Remove the Director of DevOps position"`

// Clarification asks the user to pick between ambiguous matches. Phrase is
// the referenced text that must be substituted with the chosen value before
// the original input is parsed again.
type Clarification struct {
	Message string
	Phrase  string
	Options []ClarificationOption
}

// ParseResult is the outcome of one parse attempt: exactly one of Command,
// Clarification, or ErrorMessage is set.
type ParseResult struct {
	Command       *ChatCommand
	Clarification *Clarification
	ErrorMessage  string
}

// Parser turns free-text instructions into structured commands, resolving
// position and person references against a scenario's node map.
type Parser struct {
	threshold int
}

// NewParser creates a Parser with the default confidence threshold.
func NewParser() *Parser {
	return &Parser{threshold: DefaultConfidenceThreshold}
}

// Parse tests input against the intent patterns in priority order and
// resolves every extracted reference. Ambiguous references produce a
// Clarification; unresolvable ones an error message.
func (p *Parser) Parse(input string, nodes map[string]*OrgNode) ParseResult {
	if m := createTeamPattern.FindStringSubmatch(input); m != nil {
		return p.parseCreateTeam(m, nodes)
	}
	if m := createPositionPattern.FindStringSubmatch(input); m != nil {
		return p.parseCreatePosition(m, nodes)
	}
	if m := movePattern.FindStringSubmatch(input); m != nil {
		return p.parseMove(m, nodes)
	}
	if m := removePattern.FindStringSubmatch(input); m != nil {
		return p.parseRemove(m, nodes)
	}
	if m := reassignPattern.FindStringSubmatch(input); m != nil {
		return p.parseReassign(m, nodes)
	}

	return ParseResult{ErrorMessage: usageExamples}
}

func (p *Parser) parseCreateTeam(m []string, nodes map[string]*OrgNode) ParseResult {
	teamName := strings.TrimSpace(m[1])
	parentQuery := strings.TrimSpace(m[2])
	count := 3
	if m[3] != "" {
		if n, err := strconv.Atoi(m[3]); err == nil && n > 0 {
			count = n
		}
	}

	parent, outcome := p.resolveTitle(parentQuery, nodes)
	if outcome != nil {
		return *outcome
	}

	teamName = titleCase(teamName)
	positions := []NewPositionData{{
		Title:       teamName + " Lead",
		Level:       4,
		Description: fmt.Sprintf("Lead the %s team", teamName),
	}}
	for i := 0; i < count-1; i++ {
		positions = append(positions, NewPositionData{
			Title:       teamName + " Specialist",
			Level:       5,
			Description: fmt.Sprintf("%s team member", teamName),
		})
	}

	return ParseResult{Command: &ChatCommand{
		Type:        CommandCreateTeam,
		ParentTitle: parent.Position.Title,
		ParentID:    parent.ID,
		TeamName:    teamName,
		Positions:   positions,
	}}
}

func (p *Parser) parseCreatePosition(m []string, nodes map[string]*OrgNode) ParseResult {
	title := strings.TrimSpace(m[1])
	parentQuery := strings.TrimSpace(m[2])

	parent, outcome := p.resolveTitle(parentQuery, nodes)
	if outcome != nil {
		return *outcome
	}

	return ParseResult{Command: &ChatCommand{
		Type:        CommandCreatePosition,
		ParentTitle: parent.Position.Title,
		ParentID:    parent.ID,
		Positions: []NewPositionData{{
			Title:       titleCase(title),
			Level:       4,
			Description: fmt.Sprintf("New %s position", title),
		}},
	}}
}

func (p *Parser) parseMove(m []string, nodes map[string]*OrgNode) ParseResult {
	nodeQuery := strings.TrimSpace(m[1])
	parentQuery := strings.TrimSpace(m[2])

	node, outcome := p.resolveTitle(nodeQuery, nodes)
	if outcome != nil {
		return *outcome
	}
	parent, outcome := p.resolveTitle(parentQuery, nodes)
	if outcome != nil {
		return *outcome
	}

	return ParseResult{Command: &ChatCommand{
		Type:           CommandMoveNode,
		NodeTitle:      node.Position.Title,
		NodeID:         node.ID,
		NewParentTitle: parent.Position.Title,
		NewParentID:    parent.ID,
	}}
}

func (p *Parser) parseRemove(m []string, nodes map[string]*OrgNode) ParseResult {
	nodeQuery := strings.TrimSpace(m[1])

	node, outcome := p.resolveTitle(nodeQuery, nodes)
	if outcome != nil {
		return *outcome
	}

	return ParseResult{Command: &ChatCommand{
		Type:      CommandRemovePosition,
		NodeTitle: node.Position.Title,
		NodeID:    node.ID,
	}}
}

func (p *Parser) parseReassign(m []string, nodes map[string]*OrgNode) ParseResult {
	personQuery := strings.TrimSpace(m[1])
	positionQuery := strings.TrimSpace(m[2])

	personNode, outcome := p.resolvePerson(personQuery, nodes)
	if outcome != nil {
		return *outcome
	}
	target, outcome := p.resolveTitle(positionQuery, nodes)
	if outcome != nil {
		return *outcome
	}

	return ParseResult{Command: &ChatCommand{
		Type:             CommandReassignPerson,
		PersonName:       personNode.Employee.Name,
		PersonID:         personNode.Employee.ID,
		NewPositionTitle: target.Position.Title,
		NewPositionID:    target.ID,
	}}
}

// resolveTitle resolves query against every position title in the tree.
// The second return value is non-nil when resolution did not produce an
// unambiguous node, carrying the clarification or error result.
func (p *Parser) resolveTitle(query string, nodes map[string]*OrgNode) (*OrgNode, *ParseResult) {
	ordered := orderedNodes(nodes)
	titles := make([]string, len(ordered))
	for i, node := range ordered {
		titles[i] = node.Position.Title
	}

	result := BestMatch(query, titles, p.threshold)
	if result.Match != nil {
		return ordered[result.Match.Index], nil
	}

	if len(result.Alternatives) > 0 {
		options := make([]ClarificationOption, 0, len(result.Alternatives))
		for _, alt := range result.Alternatives {
			node := ordered[alt.Index]
			options = append(options, ClarificationOption{
				Label: node.Position.Title,
				Value: node.Position.Title,
				ID:    node.ID,
			})
		}
		return nil, &ParseResult{Clarification: &Clarification{
			Message: fmt.Sprintf("I found multiple matches for %q. Which one did you mean?", query),
			Phrase:  query,
			Options: options,
		}}
	}

	return nil, &ParseResult{ErrorMessage: fmt.Sprintf(
		"I couldn't find a position matching %q. Please try again with a different name.", query)}
}

// resolvePerson resolves query against the names of employees currently
// occupying a slot.
func (p *Parser) resolvePerson(query string, nodes map[string]*OrgNode) (*OrgNode, *ParseResult) {
	var occupied []*OrgNode
	for _, node := range orderedNodes(nodes) {
		if node.Employee != nil {
			occupied = append(occupied, node)
		}
	}
	names := make([]string, len(occupied))
	for i, node := range occupied {
		names[i] = node.Employee.Name
	}

	result := BestMatch(query, names, p.threshold)
	if result.Match != nil {
		return occupied[result.Match.Index], nil
	}

	if len(result.Alternatives) > 0 {
		options := make([]ClarificationOption, 0, len(result.Alternatives))
		for _, alt := range result.Alternatives {
			node := occupied[alt.Index]
			options = append(options, ClarificationOption{
				Label: node.Employee.Name,
				Value: node.Employee.Name,
				ID:    node.ID,
			})
		}
		return nil, &ParseResult{Clarification: &Clarification{
			Message: fmt.Sprintf("I found multiple people matching %q. Which one did you mean?", query),
			Phrase:  query,
			Options: options,
		}}
	}

	return nil, &ParseResult{ErrorMessage: fmt.Sprintf(
		"I couldn't find anyone matching %q. Please try again.", query)}
}

// orderedNodes returns nodes in a deterministic order so candidate
// ranking is stable across parses of the same tree.
func orderedNodes(nodes map[string]*OrgNode) []*OrgNode {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	ordered := make([]*OrgNode, len(ids))
	for i, id := range ids {
		ordered[i] = nodes[id]
	}
	return ordered
}

// ReplacePhrase substitutes the first case-insensitive occurrence of
// phrase in input with value, used to splice a clarification answer back
// into the original command text.
func ReplacePhrase(input, phrase, value string) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(phrase))
	if err != nil {
		return input
	}
	replaced := false
	return re.ReplaceAllStringFunc(input, func(match string) string {
		if replaced {
			return match
		}
		replaced = true
		return value
	})
}

// titleCase upper-cases the first rune, leaving the rest of the phrase as
// the user typed it.
func titleCase(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
