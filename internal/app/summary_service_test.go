package app

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/example/deskflow/internal/core/summary"
	"github.com/example/deskflow/internal/core/triage"
	"github.com/example/deskflow/internal/models"
)

func newSummaryFixture(t *testing.T) (*fixture, *SummaryServiceImpl) {
	t.Helper()
	f := newFixture(t)
	svc := NewSummaryService(
		f.portfolios, f.ideas, f.proposals, f.decisions,
		triage.DefaultPolicy().StalledDaysThreshold,
	)
	return f, svc
}

func TestGatherCounts(t *testing.T) {
	f, svc := newSummaryFixture(t)

	f.portfolios.portfolios["PF-001"].ThesisUpdatedAt = sql.NullTime{Time: f.daysAgo(30), Valid: true}

	f.ideas.ideas = []*models.Idea{
		{ID: "IDEA-001", PortfolioID: "PF-001", Status: models.IdeaStatusActive, Simulated: true, CreatedAt: f.daysAgo(10)},
		{ID: "IDEA-002", PortfolioID: "PF-001", Status: models.IdeaStatusActive, Simulated: false, CreatedAt: f.daysAgo(5)},
		{ID: "IDEA-003", PortfolioID: "PF-001", Status: models.IdeaStatusClosed, Simulated: true, CreatedAt: f.daysAgo(60)},
	}
	f.proposals.proposals = []*models.Proposal{
		{ID: "PROP-001", PortfolioID: "PF-001", Status: models.ProposalStatusPending, SubmittedAt: f.daysAgo(4)},
		{ID: "PROP-002", PortfolioID: "PF-001", Status: models.ProposalStatusPending, SubmittedAt: f.daysAgo(1)},
		{ID: "PROP-003", PortfolioID: "PF-001", Status: models.ProposalStatusDecided, SubmittedAt: f.daysAgo(20)},
	}
	f.decisions.portfolioByProposal["PROP-003"] = "PF-001"
	f.decisions.decisions = []*models.Decision{
		{ID: "DEC-001", ProposalID: "PROP-003", Outcome: models.DecisionOutcomeApproved, DecidedAt: f.daysAgo(18), Executed: true, ExecutedAt: sql.NullTime{Time: f.daysAgo(17), Valid: true}},
	}

	counts, err := svc.GatherCounts(context.Background(), "PF-001", f.now)
	if err != nil {
		t.Fatalf("GatherCounts() error = %v", err)
	}

	if counts.ActiveIdeaCount != 2 {
		t.Errorf("ActiveIdeaCount = %d, want 2", counts.ActiveIdeaCount)
	}
	if counts.SimulatedIdeaCount != 1 {
		t.Errorf("SimulatedIdeaCount = %d, want 1", counts.SimulatedIdeaCount)
	}
	if counts.OpenProposalCount != 2 {
		t.Errorf("OpenProposalCount = %d, want 2 (decided excluded)", counts.OpenProposalCount)
	}
	if counts.StalledProposalCount != 1 {
		t.Errorf("StalledProposalCount = %d, want 1", counts.StalledProposalCount)
	}
	if counts.UnexecutedApprovalCount != 0 {
		t.Errorf("UnexecutedApprovalCount = %d, want 0", counts.UnexecutedApprovalCount)
	}
	if counts.CompletedExecutionCount != 1 {
		t.Errorf("CompletedExecutionCount = %d, want 1", counts.CompletedExecutionCount)
	}
	if counts.ThesisAgeDays == nil || *counts.ThesisAgeDays != 30 {
		t.Errorf("ThesisAgeDays = %v, want 30", counts.ThesisAgeDays)
	}
}

func TestComputeEndToEnd(t *testing.T) {
	f, svc := newSummaryFixture(t)

	// Fresh thesis, one simulated idea, an approved-but-unexecuted decision.
	f.portfolios.portfolios["PF-001"].ThesisUpdatedAt = sql.NullTime{Time: f.daysAgo(10), Valid: true}
	f.ideas.ideas = []*models.Idea{
		{ID: "IDEA-001", PortfolioID: "PF-001", Status: models.IdeaStatusActive, Simulated: true, CreatedAt: f.daysAgo(8)},
	}
	f.proposals.proposals = []*models.Proposal{
		{ID: "PROP-001", PortfolioID: "PF-001", Status: models.ProposalStatusDecided, SubmittedAt: f.daysAgo(6)},
	}
	f.decisions.portfolioByProposal["PROP-001"] = "PF-001"
	f.decisions.decisions = []*models.Decision{
		{ID: "DEC-001", ProposalID: "PROP-001", Outcome: models.DecisionOutcomeApproved, DecidedAt: f.daysAgo(4)},
	}

	got, err := svc.Compute(context.Background(), "PF-001", f.now)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	want := summary.Summary{
		Research:  summary.StatusDone,
		Idea:      summary.StatusDone,
		Proposal:  summary.StatusDone,
		Decision:  summary.StatusDone,
		Execution: summary.StatusBlocked,
	}
	if got != want {
		t.Errorf("Compute() = %+v, want %+v", got, want)
	}
}

func TestComputeUnknownPortfolio(t *testing.T) {
	_, svc := newSummaryFixture(t)

	if _, err := svc.Compute(context.Background(), "PF-404", time.Now()); err == nil {
		t.Error("Compute() for unknown portfolio succeeded, want error")
	}
}
