package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/core/summary"
	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/ports/secondary"
)

// SummaryServiceImpl implements the SummaryService interface.
type SummaryServiceImpl struct {
	portfolioRepo secondary.PortfolioRepository
	ideaRepo      secondary.IdeaRepository
	proposalRepo  secondary.ProposalRepository
	decisionRepo  secondary.DecisionRepository
	stalledDays   int
}

// NewSummaryService creates a new SummaryService with injected dependencies.
// stalledDays mirrors the triage policy so both surfaces agree on what a
// stalled proposal is.
func NewSummaryService(
	portfolioRepo secondary.PortfolioRepository,
	ideaRepo secondary.IdeaRepository,
	proposalRepo secondary.ProposalRepository,
	decisionRepo secondary.DecisionRepository,
	stalledDays int,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		portfolioRepo: portfolioRepo,
		ideaRepo:      ideaRepo,
		proposalRepo:  proposalRepo,
		decisionRepo:  decisionRepo,
		stalledDays:   stalledDays,
	}
}

// GatherCounts builds the aggregate counts for a portfolio at the given
// evaluation time.
func (s *SummaryServiceImpl) GatherCounts(ctx context.Context, portfolioID string, now time.Time) (summary.Counts, error) {
	var counts summary.Counts

	portfolio, err := s.portfolioRepo.GetByID(ctx, portfolioID)
	if err != nil {
		return counts, fmt.Errorf("failed to get portfolio: %w", err)
	}
	if portfolio.ThesisUpdatedAt.Valid {
		age := daysBetween(portfolio.ThesisUpdatedAt.Time, now)
		counts.ThesisAgeDays = &age
	}

	ideas, err := s.ideaRepo.List(ctx, secondary.IdeaFilters{
		PortfolioID: portfolioID,
		Status:      models.IdeaStatusActive,
	})
	if err != nil {
		return counts, fmt.Errorf("failed to list ideas: %w", err)
	}
	counts.ActiveIdeaCount = len(ideas)
	for _, idea := range ideas {
		if idea.Simulated {
			counts.SimulatedIdeaCount++
		}
	}

	pending, err := s.proposalRepo.ListPending(ctx, portfolioID)
	if err != nil {
		return counts, fmt.Errorf("failed to list pending proposals: %w", err)
	}
	counts.OpenProposalCount = len(pending)
	for _, p := range pending {
		if daysBetween(p.SubmittedAt, now) >= s.stalledDays {
			counts.StalledProposalCount++
		}
	}

	unexecuted, err := s.decisionRepo.ListUnexecuted(ctx, portfolioID)
	if err != nil {
		return counts, fmt.Errorf("failed to list unexecuted decisions: %w", err)
	}
	counts.UnexecutedApprovalCount = len(unexecuted)

	executed, err := s.decisionRepo.CountExecuted(ctx, portfolioID)
	if err != nil {
		return counts, fmt.Errorf("failed to count executed decisions: %w", err)
	}
	counts.CompletedExecutionCount = executed

	return counts, nil
}

// Compute returns the five-stage workflow summary for a portfolio.
func (s *SummaryServiceImpl) Compute(ctx context.Context, portfolioID string, now time.Time) (summary.Summary, error) {
	counts, err := s.GatherCounts(ctx, portfolioID, now)
	if err != nil {
		return summary.Summary{}, err
	}
	return summary.Compute(counts), nil
}

// Ensure SummaryServiceImpl implements the interface
var _ primary.SummaryService = (*SummaryServiceImpl)(nil)
