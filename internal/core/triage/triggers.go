package triage

import (
	"fmt"
	"math"
	"strconv"
)

// Each evaluator has the contract (Facts, Policy) -> *Item with nil meaning
// "do not fire". Evaluators are independent of each other at call time;
// cross-trigger suppression happens in the orchestrator, never here.

// evaluateProposalStalled fires on the first stalled-proposal record once its
// pending age reaches the threshold (inclusive). Only the first record is
// surfaced per evaluation even when several qualify.
func evaluateProposalStalled(f Facts, p Policy) *Item {
	if len(f.StalledProposals) == 0 {
		return nil
	}
	rec := f.StalledProposals[0]
	if rec.DaysPending < p.StalledDaysThreshold {
		return nil
	}
	return &Item{
		ID:          string(TypeProposalStalled) + ":" + rec.ProposalID,
		Type:        TypeProposalStalled,
		Kind:        KindProposals,
		Severity:    SeverityRed,
		Category:    CategoryProcess,
		AgeDays:     rec.DaysPending,
		Dismissible: false,
		Description: "A proposal has been pending review past the stalled threshold.",
		Chips: []Chip{
			{Label: "Portfolio", Value: rec.Portfolio},
			{Label: "Ticker", Value: rec.Ticker},
			{Label: "Pending", Value: strconv.Itoa(rec.DaysPending) + "d"},
		},
		Portfolio: rec.Portfolio,
		Ticker:    rec.Ticker,
		Primary:   ActionRef{Label: "Review proposal", Command: "proposal show " + rec.ProposalID},
	}
}

// evaluateExecutionNotConfirmed fires on the first approved decision whose
// execution has not been confirmed, if any exist.
func evaluateExecutionNotConfirmed(f Facts, _ Policy) *Item {
	if len(f.UnexecutedApprovals) == 0 {
		return nil
	}
	rec := f.UnexecutedApprovals[0]
	return &Item{
		ID:          string(TypeExecutionNotConfirmed) + ":" + rec.DecisionID,
		Type:        TypeExecutionNotConfirmed,
		Kind:        KindExecutions,
		Severity:    SeverityRed,
		Category:    CategoryProcess,
		AgeDays:     rec.DaysSinceDecision,
		Dismissible: false,
		Description: "An approved decision has no confirmed execution.",
		Chips: []Chip{
			{Label: "Portfolio", Value: rec.Portfolio},
			{Label: "Ticker", Value: rec.Ticker},
			{Label: "Decided", Value: strconv.Itoa(rec.DaysSinceDecision) + "d ago"},
		},
		Portfolio: rec.Portfolio,
		Ticker:    rec.Ticker,
		Primary:   ActionRef{Label: "Confirm execution", Command: "proposal execute " + rec.DecisionID},
	}
}

// evaluateIdeaNotSimulated reports the count of unsimulated active ideas,
// not a single instance. Age is the oldest unsimulated idea's age so that
// a long-ignored backlog outranks a fresh one on ties.
func evaluateIdeaNotSimulated(f Facts, _ Policy) *Item {
	if len(f.UnsimulatedIdeas) == 0 {
		return nil
	}
	oldest := 0
	for _, idea := range f.UnsimulatedIdeas {
		if idea.DaysOld > oldest {
			oldest = idea.DaysOld
		}
	}
	first := f.UnsimulatedIdeas[0]
	return &Item{
		ID:          string(TypeIdeaNotSimulated),
		Type:        TypeIdeaNotSimulated,
		Kind:        KindIdeas,
		Severity:    SeverityOrange,
		Category:    CategoryProcess,
		AgeDays:     oldest,
		Dismissible: true,
		Description: "Active ideas have no simulation run.",
		Chips: []Chip{
			{Label: "Count", Value: strconv.Itoa(len(f.UnsimulatedIdeas))},
			{Label: "Oldest", Value: strconv.Itoa(oldest) + "d"},
		},
		Portfolio: first.Portfolio,
		Primary:   ActionRef{Label: "Run simulations", Command: "idea list --unsimulated"},
	}
}

// evaluateThesisStale fires only when a thesis age is known. A nil age means
// no thesis, which is a different problem and never fires here. Severity
// escalates to red at the red threshold, and a critically stale thesis is
// deliberately not dismissible: once red it must stay visible.
func evaluateThesisStale(f Facts, p Policy) *Item {
	if f.ThesisAgeDays == nil {
		return nil
	}
	age := *f.ThesisAgeDays
	if age < p.ThesisOrangeDays {
		return nil
	}
	severity := SeverityOrange
	dismissible := true
	if age >= p.ThesisRedDays {
		severity = SeverityRed
		dismissible = false
	}
	return &Item{
		ID:          string(TypeThesisStale) + ":" + f.PortfolioID,
		Type:        TypeThesisStale,
		Kind:        KindTheses,
		Severity:    severity,
		Category:    CategoryRisk,
		AgeDays:     age,
		Dismissible: dismissible,
		Description: "The portfolio thesis has not been reviewed within the staleness window.",
		Chips: []Chip{
			{Label: "Portfolio", Value: f.PortfolioID},
			{Label: "Age", Value: strconv.Itoa(age) + "d"},
		},
		Portfolio: f.PortfolioID,
		Primary:   ActionRef{Label: "Review thesis", Command: "portfolio review-thesis " + f.PortfolioID},
	}
}

// evaluateRatingNoFollowup fires on the first rating-change record inside the
// closed lookback window (inclusive). Older changes are moot and must not
// resurface.
func evaluateRatingNoFollowup(f Facts, p Policy) *Item {
	if len(f.RatingChanges) == 0 {
		return nil
	}
	rec := f.RatingChanges[0]
	if rec.DaysSince > p.RatingFollowupWindowDays {
		return nil
	}
	return &Item{
		ID:          string(TypeRatingNoFollowup) + ":" + rec.Ticker,
		Type:        TypeRatingNoFollowup,
		Kind:        KindRatings,
		Severity:    SeverityOrange,
		Category:    CategoryRisk,
		AgeDays:     rec.DaysSince,
		Dismissible: true,
		Description: "A rating changed recently with no follow-up idea.",
		Chips: []Chip{
			{Label: "Ticker", Value: rec.Ticker},
			{Label: "Change", Value: rec.OldRating + " → " + rec.NewRating},
			{Label: "Changed", Value: strconv.Itoa(rec.DaysSince) + "d ago"},
		},
		Portfolio: rec.Portfolio,
		Ticker:    rec.Ticker,
		Primary:   ActionRef{Label: "Create follow-up idea", Command: "idea create " + rec.Ticker},
	}
}

// evaluateOpportunityNoIdea is the gated trigger: it fires only when EV data
// exists, the absolute expected return clears the bar, no idea is active, and
// no process-category item fired in the same pass. The gate encodes the rule
// "don't tell someone to create an idea if the workflow is already in motion".
func evaluateOpportunityNoIdea(f Facts, p Policy, fired FiredSummary) *Item {
	if !f.HasEVData {
		return nil
	}
	if math.Abs(f.ExpectedReturn) < p.EVThreshold {
		return nil
	}
	if f.ActiveIdeaCount != 0 {
		return nil
	}
	if fired.Process {
		return nil
	}
	secondary := &ActionRef{Label: "View expected value", Command: "portfolio list"}
	return &Item{
		ID:          string(TypeOpportunityNoIdea) + ":" + f.PortfolioID,
		Type:        TypeOpportunityNoIdea,
		Kind:        KindOpportunities,
		Severity:    SeverityOrange,
		Category:    CategoryAlpha,
		AgeDays:     0,
		Dismissible: true,
		Description: "Expected return clears the opportunity bar but no idea is open.",
		Chips: []Chip{
			{Label: "Portfolio", Value: f.PortfolioID},
			{Label: "Expected return", Value: fmt.Sprintf("%+.1f%%", f.ExpectedReturn*100)},
		},
		Portfolio: f.PortfolioID,
		Primary:   ActionRef{Label: "Create idea", Command: "idea create --portfolio " + f.PortfolioID},
		Secondary: secondary,
	}
}
