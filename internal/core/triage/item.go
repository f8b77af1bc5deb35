// Package triage contains the pure attention-prioritization engine.
// Evaluators are pure functions over a caller-supplied facts snapshot;
// nothing in this package performs I/O or reads the clock.
package triage

// ItemType identifies the trigger that produced an item.
type ItemType string

// Item type constants (closed enumeration).
const (
	TypeProposalStalled       ItemType = "proposal_stalled"
	TypeIdeaNotSimulated      ItemType = "idea_not_simulated"
	TypeExecutionNotConfirmed ItemType = "execution_not_confirmed"
	TypeOpportunityNoIdea     ItemType = "opportunity_no_idea"
	TypeThesisStale           ItemType = "thesis_stale"
	TypeRatingNoFollowup      ItemType = "rating_no_followup"
)

// Severity is an ordinal urgency tier, not just a label.
type Severity string

// Severity constants, most severe first.
const (
	SeverityRed    Severity = "red"
	SeverityOrange Severity = "orange"
	SeverityGray   Severity = "gray"
)

// Ordinal returns a comparable rank for a severity (higher = more severe).
func (s Severity) Ordinal() int {
	switch s {
	case SeverityRed:
		return 3
	case SeverityOrange:
		return 2
	case SeverityGray:
		return 1
	default:
		return 0
	}
}

// Category groups triggers by the concern they protect.
type Category string

// Category constants.
const (
	CategoryProcess Category = "process"
	CategoryAlpha   Category = "alpha"
	CategoryRisk    Category = "risk"
)

// Kind is the semantic grouping used by the cockpit aggregator.
// Each evaluator stamps the kind at construction so that downstream
// code never has to parse item ids.
type Kind string

// Kind constants.
const (
	KindProposals     Kind = "proposals"
	KindExecutions    Kind = "executions"
	KindIdeas         Kind = "ideas"
	KindTheses        Kind = "theses"
	KindRatings       Kind = "ratings"
	KindOpportunities Kind = "opportunities"
)

// Chip is a structured key/value display datum. Proper nouns (tickers,
// portfolio names) live only in chips, never in the description template.
type Chip struct {
	Label string
	Value string
}

// ActionRef describes an actionable next step. The engine never executes
// the action; callers invoke it through their own navigation layer.
type ActionRef struct {
	Label   string
	Command string
}

// Item is the canonical unit of attention produced by one trigger.
// Items are constructed fresh on every evaluation and never mutated.
type Item struct {
	ID          string // deterministic from trigger kind + subject id
	Type        ItemType
	Kind        Kind
	Severity    Severity
	Category    Category
	AgeDays     int
	Dismissible bool
	Description string
	Chips       []Chip
	Portfolio   string // empty when the item has no portfolio subject
	Ticker      string // empty when the item has no ticker subject
	Primary     ActionRef
	Secondary   *ActionRef
}
