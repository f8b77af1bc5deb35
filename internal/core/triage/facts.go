package triage

// Policy holds the business thresholds injected into the evaluator set.
// The engine never decides why a threshold has its value; callers supply
// policy and the defaults below are only a convenience.
type Policy struct {
	ThesisOrangeDays         int     // thesis age at which staleness fires
	ThesisRedDays            int     // thesis age at which staleness escalates
	RatingFollowupWindowDays int     // closed lookback window for rating changes
	EVThreshold              float64 // absolute expected-return bar for opportunities
	StalledDaysThreshold     int     // pending days before a proposal is stalled
}

// DefaultPolicy returns the standard threshold set.
func DefaultPolicy() Policy {
	return Policy{
		ThesisOrangeDays:         90,
		ThesisRedDays:            180,
		RatingFollowupWindowDays: 14,
		EVThreshold:              0.15,
		StalledDaysThreshold:     3,
	}
}

// StalledProposal is one pending proposal record in the facts snapshot.
type StalledProposal struct {
	ProposalID  string
	Portfolio   string
	Ticker      string
	DaysPending int
}

// UnexecutedApproval is one approved-but-unconfirmed decision record.
type UnexecutedApproval struct {
	DecisionID        string
	Portfolio         string
	Ticker            string
	DaysSinceDecision int
}

// UnsimulatedIdea is one active idea without a simulation run.
type UnsimulatedIdea struct {
	IdeaID    string
	Portfolio string
	Ticker    string
	DaysOld   int
}

// RatingChange is one recent rating change without a follow-up idea.
type RatingChange struct {
	Portfolio string
	Ticker    string
	OldRating string
	NewRating string
	DaysSince int
}

// Facts is the input snapshot for one evaluation call. It is owned by the
// caller, constructed fresh per call, and read-only to the engine. Absent
// or unknown signals (nil pointers, empty lists) never fire a trigger.
type Facts struct {
	PortfolioID string

	ActiveIdeaCount int

	UnsimulatedIdeas    []UnsimulatedIdea
	StalledProposals    []StalledProposal
	UnexecutedApprovals []UnexecutedApproval
	RatingChanges       []RatingChange

	// ThesisAgeDays is nil when the portfolio has no thesis on record.
	ThesisAgeDays *int

	HasEVData      bool
	ExpectedReturn float64
}
