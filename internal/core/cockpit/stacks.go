package cockpit

import (
	"sort"

	"github.com/example/deskflow/internal/core/triage"
)

// BreakdownEntry is one row of a frequency table.
type BreakdownEntry struct {
	Key   string
	Count int
}

// Stack is a UI-facing aggregate of same-kind items with derived score and
// breakdowns. Stacks are reconstructed on every aggregation call.
type Stack struct {
	Kind               triage.Kind
	Band               Band
	Items              []triage.Item
	AttentionScore     int
	OldestAgeDays      int
	MedianAgeDays      int
	PortfolioBreakdown []BreakdownEntry
	TickerBreakdown    []BreakdownEntry
}

// BandView holds the stacks assigned to one band, sorted by score.
type BandView struct {
	Band   Band
	Stacks []Stack
}

// View is the full banded cockpit output.
type View struct {
	Bands []BandView
}

// Score weights. The score is intentionally a plain additive sum so each
// contribution stays independently testable.
const (
	scoreTopBand       = 50
	scorePerOldestDay  = 2
	scorePerPortfolio  = 10
	scorePerItem       = 3
	scorePerRedItem    = 20
	scorePerOrangeItem = 5
)

// BuildStacks groups items by kind, derives per-stack aggregates, and
// returns the four urgency bands with stacks sorted by attention score
// descending. Input order does not matter; grouping preserves first-seen
// order only for breakdown tie stability.
func BuildStacks(items []triage.Item) View {
	groups := make(map[triage.Kind][]triage.Item)
	var kindOrder []triage.Kind
	for _, it := range items {
		kind := ClassifyKind(it)
		if _, seen := groups[kind]; !seen {
			kindOrder = append(kindOrder, kind)
		}
		groups[kind] = append(groups[kind], it)
	}

	stacks := make([]Stack, 0, len(kindOrder))
	for _, kind := range kindOrder {
		stacks = append(stacks, buildStack(kind, groups[kind]))
	}

	view := View{}
	for _, band := range bandOrder {
		bv := BandView{Band: band}
		for _, st := range stacks {
			if st.Band == band {
				bv.Stacks = append(bv.Stacks, st)
			}
		}
		sort.SliceStable(bv.Stacks, func(i, j int) bool {
			return bv.Stacks[i].AttentionScore > bv.Stacks[j].AttentionScore
		})
		view.Bands = append(view.Bands, bv)
	}
	return view
}

func buildStack(kind triage.Kind, items []triage.Item) Stack {
	st := Stack{
		Kind:               kind,
		Items:              sortStackItems(items),
		OldestAgeDays:      oldestAge(items),
		MedianAgeDays:      medianAge(items),
		PortfolioBreakdown: breakdown(items, func(it triage.Item) string { return it.Portfolio }),
		TickerBreakdown:    breakdown(items, func(it triage.Item) string { return it.Ticker }),
	}
	st.Band = BandFor(kind, items)
	st.AttentionScore = attentionScore(st)
	return st
}

// sortStackItems orders items within a stack by severity descending then
// age descending.
func sortStackItems(items []triage.Item) []triage.Item {
	sorted := make([]triage.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].Severity.Ordinal(), sorted[j].Severity.Ordinal()
		if si != sj {
			return si > sj
		}
		return sorted[i].AgeDays > sorted[j].AgeDays
	})
	return sorted
}

func oldestAge(items []triage.Item) int {
	oldest := 0
	for _, it := range items {
		if it.AgeDays > oldest {
			oldest = it.AgeDays
		}
	}
	return oldest
}

// medianAge returns the median item age; an even-length list rounds down
// (lower middle value).
func medianAge(items []triage.Item) int {
	if len(items) == 0 {
		return 0
	}
	ages := make([]int, len(items))
	for i, it := range items {
		ages[i] = it.AgeDays
	}
	sort.Ints(ages)
	return ages[(len(ages)-1)/2]
}

// breakdown builds a frequency table over a key function, sorted by count
// descending with first-seen order breaking ties. Empty keys are skipped.
func breakdown(items []triage.Item, key func(triage.Item) string) []BreakdownEntry {
	counts := make(map[string]int)
	var order []string
	for _, it := range items {
		k := key(it)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	entries := make([]BreakdownEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, BreakdownEntry{Key: k, Count: counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// attentionScore computes the additive stack score from the derived
// aggregates. No multiplicative interactions.
func attentionScore(st Stack) int {
	score := 0
	if st.Band == BandDecideNow {
		score += scoreTopBand
	}
	score += scorePerOldestDay * st.OldestAgeDays
	score += scorePerPortfolio * len(st.PortfolioBreakdown)
	score += scorePerItem * len(st.Items)
	for _, it := range st.Items {
		switch it.Severity {
		case triage.SeverityRed:
			score += scorePerRedItem
		case triage.SeverityOrange:
			score += scorePerOrangeItem
		}
	}
	return score
}

// Open invokes the caller-supplied navigation callback with the primary
// action of a single-item stack. Multi-item stacks have no single next
// step, so Open is a no-op for them; the aggregator never navigates itself.
func (s Stack) Open(navigate func(triage.ActionRef) error) error {
	if navigate == nil || len(s.Items) != 1 {
		return nil
	}
	return navigate(s.Items[0].Primary)
}
