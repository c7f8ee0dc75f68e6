package internal

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// DefaultMinScore is the floor below which search results are discarded
	DefaultMinScore = 50
	// DefaultConfidenceThreshold is the score at which a best match is
	// accepted without asking the user
	DefaultConfidenceThreshold = 80
	// matchMargin is how far the top score must beat the runner-up for an
	// automatic match. Near-ties (e.g. two "Director of ..." titles both
	// scoring 90 via containment) go to clarification instead.
	matchMargin = 10
)

// Similarity scores how alike two strings are on a 0-100 scale.
// Exact case-insensitive match is 100, a query matching the other
// string's initials is 95, whole-word containment (either direction) is
// 90, and anything else falls back to normalized Levenshtein distance.
// The initials check outranks containment so an acronym like "cto" is
// never claimed by a title that merely embeds it mid-word ("director").
func Similarity(a, b string) int {
	al := strings.ToLower(strings.TrimSpace(a))
	bl := strings.ToLower(strings.TrimSpace(b))

	if al == bl {
		return 100
	}

	if al == initials(bl) || bl == initials(al) {
		return 95
	}

	if containsPhrase(al, bl) || containsPhrase(bl, al) {
		return 90
	}

	maxLen := utf8.RuneCountInString(al)
	if n := utf8.RuneCountInString(bl); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}

	distance := fuzzy.LevenshteinDistance(al, bl)
	score := int(math.Round((1 - float64(distance)/float64(maxLen)) * 100))
	if score < 0 {
		score = 0
	}
	return score
}

// containsPhrase reports whether sub occurs in s aligned on word
// boundaries: "sales" inside "vp of sales" counts, "cto" inside
// "director" does not.
func containsPhrase(s, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(" "+s+" ", " "+sub+" ")
}

// initials concatenates the first letter of every word, so
// "chief technology officer" becomes "cto".
func initials(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		r := []rune(word)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}

// Match pairs a candidate index with its final score
type Match struct {
	Index int
	Text  string
	Score int
}

// Search scores every candidate against the query and returns those at or
// above minScore, best first. Word pairs where one word is a prefix of
// the other add +10 each, capped at 100 total; mid-word overlap earns
// nothing. Ties keep input order.
func Search(query string, candidates []string, minScore int) []Match {
	var results []Match

	queryWords := strings.Fields(strings.ToLower(query))

	for i, text := range candidates {
		score := Similarity(query, text)

		textWords := strings.Fields(strings.ToLower(text))
		bonus := 0
		for _, qw := range queryWords {
			for _, tw := range textWords {
				if strings.HasPrefix(tw, qw) || strings.HasPrefix(qw, tw) {
					bonus += 10
				}
			}
		}

		final := score + bonus
		if final > 100 {
			final = 100
		}

		if final >= minScore {
			results = append(results, Match{Index: i, Text: text, Score: final})
		}
	}

	// Stable insertion keeps input order on equal scores
	sortMatchesByScore(results)
	return results
}

func sortMatchesByScore(matches []Match) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Score > matches[j-1].Score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

// BestMatchResult is the outcome of resolving a query against candidates.
// When Match is nil but Alternatives is non-empty the reference is
// ambiguous and needs a clarification turn.
type BestMatchResult struct {
	Match        *Match
	Confidence   int
	Alternatives []Match
}

// BestMatch resolves query to at most one candidate. A verbatim title
// wins immediately, regardless of how close longer candidates score via
// containment bonuses. Otherwise the top result wins when it scores at
// or above threshold and clears the runner-up by matchMargin; failing
// that the top results come back as alternatives for disambiguation. An
// empty candidate set yields no match and no alternatives.
func BestMatch(query string, candidates []string, threshold int) BestMatchResult {
	matches := Search(query, candidates, 40)

	if len(matches) == 0 {
		return BestMatchResult{}
	}

	trimmed := strings.TrimSpace(query)
	for i := range matches {
		if !strings.EqualFold(strings.TrimSpace(matches[i].Text), trimmed) {
			continue
		}
		exact := matches[i]
		var alternatives []Match
		for j := range matches {
			if j != i {
				alternatives = append(alternatives, matches[j])
			}
		}
		if len(alternatives) > 3 {
			alternatives = alternatives[:3]
		}
		return BestMatchResult{Match: &exact, Confidence: exact.Score, Alternatives: alternatives}
	}

	best := matches[0]
	clearsMargin := len(matches) == 1 || best.Score-matches[1].Score >= matchMargin

	if best.Score >= threshold && clearsMargin {
		alternatives := matches[1:]
		if len(alternatives) > 3 {
			alternatives = alternatives[:3]
		}
		return BestMatchResult{Match: &best, Confidence: best.Score, Alternatives: alternatives}
	}

	alternatives := matches
	if len(alternatives) > 4 {
		alternatives = alternatives[:4]
	}
	return BestMatchResult{Confidence: best.Score, Alternatives: alternatives}
}
