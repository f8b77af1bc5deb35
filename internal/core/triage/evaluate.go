package triage

import "sort"

// FiredSummary records which categories produced an item during stage one.
// Stage-two (gated) triggers evaluate against this summary instead of an
// ad hoc boolean threaded between evaluators.
type FiredSummary struct {
	Process bool
	Risk    bool
	Alpha   bool
}

func (s *FiredSummary) record(c Category) {
	switch c {
	case CategoryProcess:
		s.Process = true
	case CategoryRisk:
		s.Risk = true
	case CategoryAlpha:
		s.Alpha = true
	}
}

// stageOneEvaluators run unconditionally, in a fixed order. The order does
// not affect the result (the final sort is total) but keeps evaluation
// reproducible for debugging.
var stageOneEvaluators = []func(Facts, Policy) *Item{
	evaluateProposalStalled,
	evaluateExecutionNotConfirmed,
	evaluateIdeaNotSimulated,
	evaluateThesisStale,
	evaluateRatingNoFollowup,
}

// stageTwoEvaluators run against the stage-one fired summary.
var stageTwoEvaluators = []func(Facts, Policy, FiredSummary) *Item{
	evaluateOpportunityNoIdea,
}

// rankTable maps severity:category pairs to sort rank. Unlisted pairs rank
// last. This table, together with the age and id tiebreaks, defines the
// total order the UI depends on.
var rankTable = map[string]int{
	"red:process":    0,
	"red:risk":       1,
	"red:alpha":      2,
	"orange:process": 3,
	"orange:risk":    4,
	"orange:alpha":   5,
	"gray:process":   6,
	"gray:risk":      7,
	"gray:alpha":     8,
}

const unrankedLast = 99

func rankOf(it Item) int {
	if r, ok := rankTable[string(it.Severity)+":"+string(it.Category)]; ok {
		return r
	}
	return unrankedLast
}

// Evaluate is the engine's single public entry point. It runs every trigger
// against the facts snapshot, applies cross-trigger suppression, and returns
// the items in a deterministic total order: rank table ascending, then age
// descending, then id ascending. Identical input always yields an identical
// result; no two distinct items compare equal because ids are unique per
// trigger subject.
func Evaluate(f Facts, p Policy) []Item {
	var items []Item
	var fired FiredSummary

	for _, eval := range stageOneEvaluators {
		if it := eval(f, p); it != nil {
			items = append(items, *it)
			fired.record(it.Category)
		}
	}
	for _, eval := range stageTwoEvaluators {
		if it := eval(f, p, fired); it != nil {
			items = append(items, *it)
		}
	}

	SortItems(items)
	return items
}

// SortItems orders items by the three-level total order. Exposed so callers
// that merge or filter item lists can restore the canonical order.
func SortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		ri, rj := rankOf(items[i]), rankOf(items[j])
		if ri != rj {
			return ri < rj
		}
		if items[i].AgeDays != items[j].AgeDays {
			return items[i].AgeDays > items[j].AgeDays
		}
		return items[i].ID < items[j].ID
	})
}
