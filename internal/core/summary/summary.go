// Package summary computes the five-stage workflow status strip.
// The calculator is a pure function over aggregate counts; it never reads
// individual workflow records.
package summary

// StageStatus is the status of one workflow stage.
type StageStatus string

// Stage status constants.
const (
	StatusDone    StageStatus = "done"
	StatusPending StageStatus = "pending"
	StatusBlocked StageStatus = "blocked"
	StatusNone    StageStatus = "none"
)

// Counts is the aggregate input snapshot. ThesisAgeDays is nil when the
// portfolio has no thesis on record.
type Counts struct {
	ActiveIdeaCount         int
	SimulatedIdeaCount      int
	OpenProposalCount       int
	StalledProposalCount    int
	UnexecutedApprovalCount int
	CompletedExecutionCount int
	ThesisAgeDays           *int
}

// Thresholds mirror the triage staleness policy so that the research stage
// and the thesis-stale trigger agree on what "stale" means.
const (
	thesisPendingDays = 90
	thesisBlockedDays = 180
)

// Summary is the five-stage status record. The five fields are independent;
// any interaction between rules is encoded explicitly in Compute.
type Summary struct {
	Research  StageStatus
	Idea      StageStatus
	Proposal  StageStatus
	Decision  StageStatus
	Execution StageStatus
}

// Compute derives the workflow summary from counts alone.
func Compute(c Counts) Summary {
	return Summary{
		Research:  researchStatus(c),
		Idea:      ideaStatus(c),
		Proposal:  proposalStatus(c),
		Decision:  decisionStatus(c),
		Execution: executionStatus(c),
	}
}

// researchStatus: no thesis means the stage has not started; a critically
// stale thesis blocks, a stale one is pending, otherwise done.
func researchStatus(c Counts) StageStatus {
	if c.ThesisAgeDays == nil {
		return StatusNone
	}
	age := *c.ThesisAgeDays
	if age >= thesisBlockedDays {
		return StatusBlocked
	}
	if age >= thesisPendingDays {
		return StatusPending
	}
	return StatusDone
}

// ideaStatus: zero active ideas is always none, regardless of other signals.
func ideaStatus(c Counts) StageStatus {
	if c.ActiveIdeaCount == 0 {
		return StatusNone
	}
	if c.SimulatedIdeaCount < c.ActiveIdeaCount {
		return StatusPending
	}
	return StatusDone
}

// proposalStatus: a stalled proposal blocks the stage; otherwise open
// proposals are pending, and the stage is done once no proposals remain
// open but a decision or execution exists downstream.
func proposalStatus(c Counts) StageStatus {
	if c.StalledProposalCount > 0 {
		return StatusBlocked
	}
	if c.OpenProposalCount > 0 {
		return StatusPending
	}
	if c.UnexecutedApprovalCount > 0 || c.CompletedExecutionCount > 0 {
		return StatusDone
	}
	return StatusNone
}

// decisionStatus: blocked-by-stall is checked before done-by-approval-or-
// execution; the order is load-bearing.
func decisionStatus(c Counts) StageStatus {
	if c.StalledProposalCount > 0 {
		return StatusBlocked
	}
	if c.UnexecutedApprovalCount > 0 || c.CompletedExecutionCount > 0 {
		return StatusDone
	}
	if c.OpenProposalCount > 0 {
		return StatusPending
	}
	return StatusNone
}

// executionStatus: blocked takes precedence over done whenever both
// conditions could apply.
func executionStatus(c Counts) StageStatus {
	if c.UnexecutedApprovalCount > 0 {
		return StatusBlocked
	}
	if c.CompletedExecutionCount > 0 {
		return StatusDone
	}
	return StatusNone
}
