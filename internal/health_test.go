package internal

import "testing"

func TestAnalyzeHealth(t *testing.T) {
	scenario := BuildTestScenario()

	health := AnalyzeHealth(scenario)

	if health.Headcount != 3 {
		t.Errorf("headcount = %d, want 3", health.Headcount)
	}
	if health.OpenPositions != 1 {
		t.Errorf("open positions = %d, want 1", health.OpenPositions)
	}
	if health.Layers != 3 {
		t.Errorf("layers = %d, want 3", health.Layers)
	}
	// VP of Engineering is open but at level 3; no executive vacancy flag.
	for _, flag := range health.Flags {
		if flag.Type == FlagVacancy {
			t.Errorf("unexpected vacancy flag: %+v", flag)
		}
	}
}

func TestAnalyzeHealth_ExecutiveVacancy(t *testing.T) {
	scenario := BuildTestScenario()
	AddTestNode(scenario, scenario.RootID, "Chief Financial Officer", 2, "")

	health := AnalyzeHealth(scenario)

	var vacancy *HealthFlag
	for i := range health.Flags {
		if health.Flags[i].Type == FlagVacancy {
			vacancy = &health.Flags[i]
		}
	}
	if vacancy == nil {
		t.Fatal("open executive slot produced no vacancy flag")
	}
	if vacancy.Severity != SeverityCritical {
		t.Errorf("vacancy severity = %q, want critical", vacancy.Severity)
	}
}

func TestAnalyzeHealth_WideSpan(t *testing.T) {
	scenario := BuildTestScenario()
	for i := 0; i < maxSpanOfControl+1; i++ {
		AddTestNode(scenario, "n4", "Software Engineer", 5, "")
	}

	health := AnalyzeHealth(scenario)

	var span *HealthFlag
	for i := range health.Flags {
		if health.Flags[i].Type == FlagSpan {
			span = &health.Flags[i]
		}
	}
	if span == nil {
		t.Fatal("over-wide span produced no flag")
	}
	if span.Severity != SeverityWarning {
		t.Errorf("span severity = %q, want warning", span.Severity)
	}
	if len(span.NodeIDs) != 1 || span.NodeIDs[0] != "n4" {
		t.Errorf("span flag nodes = %v, want [n4]", span.NodeIDs)
	}
}

func TestAnalyzeHealth_EmptyScenario(t *testing.T) {
	scenario := &Scenario{ID: "empty", Nodes: map[string]*OrgNode{}}

	health := AnalyzeHealth(scenario)

	if health.Headcount != 0 || health.OpenPositions != 0 || health.Layers != 0 {
		t.Errorf("empty scenario health = %+v, want zeros", health)
	}
	if len(health.Flags) != 0 {
		t.Errorf("empty scenario raised flags: %+v", health.Flags)
	}
}

func TestSuggestCandidates(t *testing.T) {
	employees := []*Employee{
		{ID: "e1", Name: "Alex Kim", Skills: []string{"Go", "Distributed Systems"}},
		{ID: "e2", Name: "Riley Shaw", Skills: []string{"Sales", "Negotiation"}},
		{ID: "e3", Name: "Sam Patel", Skills: []string{"Go", "Kubernetes", "Architecture"}},
	}
	position := &Position{
		ID:             "p1",
		Title:          "Staff Engineer",
		RequiredSkills: []string{"Go", "Architecture"},
	}

	candidates := SuggestCandidates(employees, position, 2)

	if len(candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(candidates))
	}
	if candidates[0].Employee.ID != "e3" {
		t.Errorf("top candidate = %q, want e3 (both skills match)", candidates[0].Employee.ID)
	}
	if candidates[0].Score < candidates[1].Score {
		t.Error("candidates are not sorted best first")
	}
}

func TestSuggestCandidates_NoRequiredSkills(t *testing.T) {
	employees := []*Employee{{ID: "e1", Name: "Alex Kim", Skills: []string{"Go"}}}
	position := &Position{ID: "p1", Title: "Advisor"}

	if got := SuggestCandidates(employees, position, 3); got != nil {
		t.Errorf("SuggestCandidates() without required skills = %+v, want nil", got)
	}
}

func TestSuggestCandidates_NoEmployees(t *testing.T) {
	position := &Position{ID: "p1", Title: "Staff Engineer", RequiredSkills: []string{"Go"}}
	if got := SuggestCandidates(nil, position, 3); got != nil {
		t.Errorf("SuggestCandidates() without employees = %+v, want nil", got)
	}
}
