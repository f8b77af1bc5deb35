package triage

import (
	"reflect"
	"testing"
)

func TestEvaluateConflictScenario(t *testing.T) {
	// An unsimulated idea is a process item, so the opportunity trigger
	// must stay silent even though the EV bar is cleared.
	facts := Facts{
		PortfolioID:      "PF-001",
		ActiveIdeaCount:  0,
		HasEVData:        true,
		ExpectedReturn:   0.25,
		UnsimulatedIdeas: []UnsimulatedIdea{{IdeaID: "IDEA-001", DaysOld: 2}},
	}

	items := Evaluate(facts, DefaultPolicy())

	if !containsType(items, TypeIdeaNotSimulated) {
		t.Error("expected idea_not_simulated item")
	}
	if containsType(items, TypeOpportunityNoIdea) {
		t.Error("opportunity_no_idea must be suppressed by the process item")
	}
}

func TestEvaluateMutualExclusion(t *testing.T) {
	// Every process trigger individually suppresses the opportunity item.
	processFacts := []Facts{
		{StalledProposals: []StalledProposal{{ProposalID: "PROP-001", DaysPending: 10}}},
		{UnexecutedApprovals: []UnexecutedApproval{{DecisionID: "DEC-001", DaysSinceDecision: 1}}},
		{UnsimulatedIdeas: []UnsimulatedIdea{{IdeaID: "IDEA-001"}}},
	}

	for _, pf := range processFacts {
		facts := pf
		facts.PortfolioID = "PF-001"
		facts.ActiveIdeaCount = 0
		facts.HasEVData = true
		facts.ExpectedReturn = 0.30

		items := Evaluate(facts, DefaultPolicy())
		if containsType(items, TypeOpportunityNoIdea) {
			t.Errorf("opportunity fired alongside process items: %v", itemIDs(items))
		}
	}

	// A risk-only pass does not suppress.
	facts := Facts{
		PortfolioID:    "PF-001",
		HasEVData:      true,
		ExpectedReturn: 0.30,
		ThesisAgeDays:  intPtr(100),
	}
	items := Evaluate(facts, DefaultPolicy())
	if !containsType(items, TypeOpportunityNoIdea) {
		t.Errorf("opportunity suppressed by risk-only items: %v", itemIDs(items))
	}
}

func TestEvaluateOrderingScenario(t *testing.T) {
	// red:process ranks before red:risk regardless of age.
	facts := Facts{
		PortfolioID: "PF-001",
		UnexecutedApprovals: []UnexecutedApproval{
			{DecisionID: "DEC-001", DaysSinceDecision: 1},
		},
		ThesisAgeDays: intPtr(200),
	}

	items := Evaluate(facts, DefaultPolicy())

	want := []ItemType{TypeExecutionNotConfirmed, TypeThesisStale}
	if len(items) != len(want) {
		t.Fatalf("got %d items %v, want %d", len(items), itemIDs(items), len(want))
	}
	for i, typ := range want {
		if items[i].Type != typ {
			t.Errorf("items[%d].Type = %s, want %s", i, items[i].Type, typ)
		}
	}
}

func TestEvaluateDeterminism(t *testing.T) {
	facts := Facts{
		PortfolioID:     "PF-001",
		ActiveIdeaCount: 2,
		StalledProposals: []StalledProposal{
			{ProposalID: "PROP-001", Portfolio: "A", Ticker: "NVDA", DaysPending: 7},
		},
		UnexecutedApprovals: []UnexecutedApproval{
			{DecisionID: "DEC-001", Portfolio: "A", Ticker: "AMD", DaysSinceDecision: 7},
		},
		UnsimulatedIdeas: []UnsimulatedIdea{{IdeaID: "IDEA-001", DaysOld: 7}},
		RatingChanges:    []RatingChange{{Ticker: "TSM", DaysSince: 7}},
		ThesisAgeDays:    intPtr(95),
	}

	first := Evaluate(facts, DefaultPolicy())
	for i := 0; i < 10; i++ {
		again := Evaluate(facts, DefaultPolicy())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("evaluation %d differs from first:\n%v\n%v", i, itemIDs(first), itemIDs(again))
		}
	}

	// Total order: no two items may compare equal under the three-level sort.
	for i := range first {
		for j := i + 1; j < len(first); j++ {
			a, b := first[i], first[j]
			if rankOf(a) == rankOf(b) && a.AgeDays == b.AgeDays && a.ID == b.ID {
				t.Errorf("items %d and %d compare equal: %s", i, j, a.ID)
			}
		}
	}
}

func TestEvaluateDismissibilityInvariant(t *testing.T) {
	// Exercise every trigger at once; no red item may be dismissible.
	facts := Facts{
		PortfolioID:     "PF-001",
		ActiveIdeaCount: 1,
		StalledProposals: []StalledProposal{
			{ProposalID: "PROP-001", DaysPending: 9},
		},
		UnexecutedApprovals: []UnexecutedApproval{
			{DecisionID: "DEC-001", DaysSinceDecision: 2},
		},
		UnsimulatedIdeas: []UnsimulatedIdea{{IdeaID: "IDEA-001", DaysOld: 1}},
		RatingChanges:    []RatingChange{{Ticker: "NVDA", DaysSince: 5}},
		ThesisAgeDays:    intPtr(200),
	}

	for _, item := range Evaluate(facts, DefaultPolicy()) {
		if item.Severity == SeverityRed && item.Dismissible {
			t.Errorf("red item %s is dismissible", item.ID)
		}
		if item.Type == TypeThesisStale {
			wantDismissible := item.AgeDays < DefaultPolicy().ThesisRedDays
			if item.Dismissible != wantDismissible {
				t.Errorf("thesis_stale dismissible = %v at age %d", item.Dismissible, item.AgeDays)
			}
		}
	}
}

func TestEvaluateEmptyFacts(t *testing.T) {
	if items := Evaluate(Facts{}, DefaultPolicy()); len(items) != 0 {
		t.Errorf("empty facts produced items: %v", itemIDs(items))
	}
}

func TestSortItemsTiebreaks(t *testing.T) {
	items := []Item{
		{ID: "b", Severity: SeverityOrange, Category: CategoryRisk, AgeDays: 5},
		{ID: "a", Severity: SeverityOrange, Category: CategoryRisk, AgeDays: 5},
		{ID: "c", Severity: SeverityOrange, Category: CategoryRisk, AgeDays: 9},
		{ID: "d", Severity: SeverityRed, Category: CategoryAlpha, AgeDays: 0},
	}

	SortItems(items)

	wantIDs := []string{"d", "c", "a", "b"}
	for i, id := range wantIDs {
		if items[i].ID != id {
			t.Errorf("items[%d].ID = %s, want %s (full order %v)", i, items[i].ID, id, itemIDs(items))
		}
	}
}

func containsType(items []Item, typ ItemType) bool {
	for _, it := range items {
		if it.Type == typ {
			return true
		}
	}
	return false
}

func itemIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
