package internal

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical", a: "VP of Sales", b: "VP of Sales", want: 100},
		{name: "case insensitive", a: "vp of sales", b: "VP of Sales", want: 100},
		{name: "whitespace trimmed", a: "  CEO  ", b: "ceo", want: 100},
		{name: "substring containment", a: "Sales", b: "VP of Sales", want: 90},
		{name: "containment either direction", a: "VP of Sales", b: "Sales", want: 90},
		{name: "initialism", a: "cto", b: "Chief Technology Officer", want: 95},
		{name: "initialism reversed", a: "Chief Technology Officer", b: "CTO", want: 95},
		{name: "both empty", a: "", b: "", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity_SelfIsAlways100(t *testing.T) {
	inputs := []string{"CEO", "VP of Engineering", "Director of DevOps", "a", "Product Manager"}
	for _, s := range inputs {
		if got := Similarity(s, s); got != 100 {
			t.Errorf("Similarity(%q, %q) = %d, want 100", s, s, got)
		}
	}
}

func TestSimilarity_Typo(t *testing.T) {
	// One missing letter still scores well above the confidence threshold.
	got := Similarity("VP of Sles", "VP of Sales")
	if got < DefaultConfidenceThreshold {
		t.Errorf("Similarity(typo) = %d, want >= %d", got, DefaultConfidenceThreshold)
	}
	if got >= 100 {
		t.Errorf("Similarity(typo) = %d, want < 100", got)
	}
}

func TestSimilarity_MidWordOverlapDoesNotContain(t *testing.T) {
	// "director" embeds "cto" as raw bytes; that must not count as
	// containment or the acronym gets claimed by the wrong title.
	if got := Similarity("cto", "Director of DevOps"); got >= DefaultMinScore {
		t.Errorf("Similarity(cto, Director of DevOps) = %d, want < %d", got, DefaultMinScore)
	}
	if got := Similarity("Director", "Director of DevOps"); got != 90 {
		t.Errorf("Similarity(whole word) = %d, want 90", got)
	}
}

func TestSimilarity_RuneLengths(t *testing.T) {
	// Levenshtein counts runes, so the normalizing length must too.
	// "café" and "cafe" are 4 runes apart by 1 edit: (1 - 1/4) * 100.
	if got := Similarity("café", "cafe"); got != 75 {
		t.Errorf("Similarity(café, cafe) = %d, want 75", got)
	}
}

func TestSimilarity_Unrelated(t *testing.T) {
	if got := Similarity("Marketing", "Chief Executive Officer"); got >= DefaultMinScore {
		t.Errorf("Similarity(unrelated) = %d, want < %d", got, DefaultMinScore)
	}
}

func TestSearch(t *testing.T) {
	candidates := []string{"VP of Engineering", "VP of Sales", "Chief Executive Officer"}

	results := Search("engineering", candidates, DefaultMinScore)
	if len(results) != 1 {
		t.Fatalf("Search() returned %d results, want 1: %+v", len(results), results)
	}
	if results[0].Index != 0 {
		t.Errorf("Search() top index = %d, want 0", results[0].Index)
	}
	if results[0].Score != 100 {
		t.Errorf("Search() top score = %d, want 100 (containment plus word bonus)", results[0].Score)
	}
}

func TestSearch_OrderAndBounds(t *testing.T) {
	candidates := []string{"Director of Sales", "Director of Marketing"}
	results := Search("Director", candidates, DefaultMinScore)

	if len(results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(results))
	}
	// Tied scores keep input order.
	if results[0].Index != 0 || results[1].Index != 1 {
		t.Errorf("Search() tie order = [%d %d], want [0 1]", results[0].Index, results[1].Index)
	}
	for _, r := range results {
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("Search() score %d out of [0,100]", r.Score)
		}
	}
}

func TestSearch_EmptyCandidates(t *testing.T) {
	if results := Search("anything", nil, DefaultMinScore); len(results) != 0 {
		t.Errorf("Search() with no candidates = %+v, want empty", results)
	}
}

func TestBestMatch_UnambiguousWinner(t *testing.T) {
	candidates := []string{"VP of Sales", "VP of Engineering", "Chief Executive Officer"}
	result := BestMatch("VP of Sles", candidates, DefaultConfidenceThreshold)

	if result.Match == nil {
		t.Fatalf("BestMatch() returned no match, alternatives: %+v", result.Alternatives)
	}
	if result.Match.Text != "VP of Sales" {
		t.Errorf("BestMatch() = %q, want %q", result.Match.Text, "VP of Sales")
	}
	if result.Confidence < DefaultConfidenceThreshold {
		t.Errorf("BestMatch() confidence = %d, want >= %d", result.Confidence, DefaultConfidenceThreshold)
	}
}

func TestBestMatch_InitialismBeatsEmbeddedLetters(t *testing.T) {
	candidates := []string{"Chief Technology Officer", "Director of DevOps"}
	result := BestMatch("CTO", candidates, DefaultConfidenceThreshold)

	if result.Match == nil {
		t.Fatalf("BestMatch() returned no match, alternatives: %+v", result.Alternatives)
	}
	if result.Match.Text != "Chief Technology Officer" {
		t.Errorf("BestMatch() = %q, want Chief Technology Officer", result.Match.Text)
	}
}

func TestBestMatch_ExactTitleWinsOverLongerTie(t *testing.T) {
	// The longer title ties at 100 via containment plus word bonuses; a
	// verbatim query must still resolve without a clarification turn.
	candidates := []string{"VP of Sales Operations", "VP of Sales"}
	result := BestMatch("vp of sales", candidates, DefaultConfidenceThreshold)

	if result.Match == nil {
		t.Fatalf("BestMatch() returned no match, alternatives: %+v", result.Alternatives)
	}
	if result.Match.Text != "VP of Sales" {
		t.Errorf("BestMatch() = %q, want VP of Sales", result.Match.Text)
	}
	if result.Confidence != 100 {
		t.Errorf("BestMatch() confidence = %d, want 100", result.Confidence)
	}
}

func TestBestMatch_NearTieNeedsClarification(t *testing.T) {
	// Both directors hit the same containment score; neither may win.
	candidates := []string{"Director of Sales", "Director of Marketing"}
	result := BestMatch("Director", candidates, DefaultConfidenceThreshold)

	if result.Match != nil {
		t.Fatalf("BestMatch() resolved %q, want ambiguity", result.Match.Text)
	}
	if len(result.Alternatives) != 2 {
		t.Errorf("BestMatch() alternatives = %d, want 2", len(result.Alternatives))
	}
}

func TestBestMatch_EmptyCandidates(t *testing.T) {
	result := BestMatch("CEO", nil, DefaultConfidenceThreshold)
	if result.Match != nil || len(result.Alternatives) != 0 {
		t.Errorf("BestMatch() with no candidates = %+v, want zero result", result)
	}
}

func TestBestMatch_NoPlausibleCandidate(t *testing.T) {
	result := BestMatch("Quantum Dept", []string{"CEO"}, DefaultConfidenceThreshold)
	if result.Match != nil {
		t.Errorf("BestMatch() resolved %q for an unrelated query", result.Match.Text)
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("BestMatch() alternatives = %+v, want none", result.Alternatives)
	}
}

func TestBestMatch_AlternativesCapped(t *testing.T) {
	candidates := []string{
		"Director of Sales",
		"Director of Marketing",
		"Director of Finance",
		"Director of DevOps",
		"Director of Operations",
	}
	result := BestMatch("Director", candidates, DefaultConfidenceThreshold)

	if result.Match != nil {
		t.Fatalf("BestMatch() resolved %q, want ambiguity", result.Match.Text)
	}
	if len(result.Alternatives) > 4 {
		t.Errorf("BestMatch() alternatives = %d, want at most 4", len(result.Alternatives))
	}
}
