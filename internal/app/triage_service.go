// Package app implements the primary port interfaces over secondary
// repositories. Services hold no state beyond injected dependencies.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/core/cockpit"
	"github.com/example/deskflow/internal/core/triage"
	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/ports/secondary"
)

// TriageServiceImpl implements the TriageService interface. It gathers the
// facts snapshot from repositories, runs the pure evaluation engine, and
// applies the per-analyst suppression filter. The engine itself never
// touches a repository.
type TriageServiceImpl struct {
	portfolioRepo secondary.PortfolioRepository
	ideaRepo      secondary.IdeaRepository
	proposalRepo  secondary.ProposalRepository
	decisionRepo  secondary.DecisionRepository
	ratingRepo    secondary.RatingChangeRepository
	dismissalRepo secondary.DismissalRepository
	policy        triage.Policy
}

// NewTriageService creates a new TriageService with injected dependencies.
func NewTriageService(
	portfolioRepo secondary.PortfolioRepository,
	ideaRepo secondary.IdeaRepository,
	proposalRepo secondary.ProposalRepository,
	decisionRepo secondary.DecisionRepository,
	ratingRepo secondary.RatingChangeRepository,
	dismissalRepo secondary.DismissalRepository,
	policy triage.Policy,
) *TriageServiceImpl {
	return &TriageServiceImpl{
		portfolioRepo: portfolioRepo,
		ideaRepo:      ideaRepo,
		proposalRepo:  proposalRepo,
		decisionRepo:  decisionRepo,
		ratingRepo:    ratingRepo,
		dismissalRepo: dismissalRepo,
		policy:        policy,
	}
}

// GatherFacts builds the facts snapshot for a portfolio at the given
// evaluation time.
func (s *TriageServiceImpl) GatherFacts(ctx context.Context, portfolioID string, now time.Time) (triage.Facts, error) {
	facts := triage.Facts{PortfolioID: portfolioID}

	portfolio, err := s.portfolioRepo.GetByID(ctx, portfolioID)
	if err != nil {
		return facts, fmt.Errorf("failed to get portfolio: %w", err)
	}

	if portfolio.ThesisUpdatedAt.Valid {
		age := daysBetween(portfolio.ThesisUpdatedAt.Time, now)
		facts.ThesisAgeDays = &age
	}
	if portfolio.ExpectedReturn.Valid {
		facts.HasEVData = true
		facts.ExpectedReturn = portfolio.ExpectedReturn.Float64
	}

	activeIdeas, err := s.ideaRepo.List(ctx, secondary.IdeaFilters{
		PortfolioID: portfolioID,
		Status:      models.IdeaStatusActive,
	})
	if err != nil {
		return facts, fmt.Errorf("failed to list ideas: %w", err)
	}
	facts.ActiveIdeaCount = len(activeIdeas)
	for _, idea := range activeIdeas {
		if idea.Simulated {
			continue
		}
		facts.UnsimulatedIdeas = append(facts.UnsimulatedIdeas, triage.UnsimulatedIdea{
			IdeaID:    idea.ID,
			Portfolio: portfolio.Name,
			Ticker:    idea.Ticker,
			DaysOld:   daysBetween(idea.CreatedAt, now),
		})
	}

	pending, err := s.proposalRepo.ListPending(ctx, portfolioID)
	if err != nil {
		return facts, fmt.Errorf("failed to list pending proposals: %w", err)
	}
	for _, p := range pending {
		days := daysBetween(p.SubmittedAt, now)
		if days < s.policy.StalledDaysThreshold {
			continue
		}
		facts.StalledProposals = append(facts.StalledProposals, triage.StalledProposal{
			ProposalID:  p.ID,
			Portfolio:   portfolio.Name,
			Ticker:      p.Ticker,
			DaysPending: days,
		})
	}

	unexecuted, err := s.decisionRepo.ListUnexecuted(ctx, portfolioID)
	if err != nil {
		return facts, fmt.Errorf("failed to list unexecuted decisions: %w", err)
	}
	for _, d := range unexecuted {
		approval := triage.UnexecutedApproval{
			DecisionID:        d.ID,
			Portfolio:         portfolio.Name,
			DaysSinceDecision: daysBetween(d.DecidedAt, now),
		}
		if prop, err := s.proposalRepo.GetByID(ctx, d.ProposalID); err == nil {
			approval.Ticker = prop.Ticker
		}
		facts.UnexecutedApprovals = append(facts.UnexecutedApprovals, approval)
	}

	cutoff := now.AddDate(0, 0, -s.policy.RatingFollowupWindowDays)
	changes, err := s.ratingRepo.ListSince(ctx, portfolioID, cutoff)
	if err != nil {
		return facts, fmt.Errorf("failed to list rating changes: %w", err)
	}
	for _, c := range changes {
		facts.RatingChanges = append(facts.RatingChanges, triage.RatingChange{
			Portfolio: portfolio.Name,
			Ticker:    c.Ticker,
			OldRating: c.OldRating,
			NewRating: c.NewRating,
			DaysSince: daysBetween(c.ChangedAt, now),
		})
	}

	return facts, nil
}

// Evaluate returns the ranked, suppression-filtered attention items.
func (s *TriageServiceImpl) Evaluate(ctx context.Context, req primary.TriageRequest) ([]triage.Item, error) {
	facts, err := s.GatherFacts(ctx, req.PortfolioID, req.Now)
	if err != nil {
		return nil, err
	}

	items := triage.Evaluate(facts, s.policy)
	if req.IncludeSuppressed {
		return items, nil
	}

	suppressed, err := s.suppressedTypes(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(suppressed) == 0 {
		return items, nil
	}

	filtered := items[:0]
	for _, it := range items {
		// Non-dismissible items ignore suppression records entirely.
		if suppressed[string(it.Type)] && it.Dismissible {
			continue
		}
		filtered = append(filtered, it)
	}
	return filtered, nil
}

// Cockpit returns the banded stack view over the evaluated items.
func (s *TriageServiceImpl) Cockpit(ctx context.Context, req primary.TriageRequest) (cockpit.View, error) {
	items, err := s.Evaluate(ctx, req)
	if err != nil {
		return cockpit.View{}, err
	}
	return cockpit.BuildStacks(items), nil
}

func (s *TriageServiceImpl) suppressedTypes(ctx context.Context, req primary.TriageRequest) (map[string]bool, error) {
	dismissals, err := s.dismissalRepo.ListActive(ctx, req.AnalystID, req.PortfolioID, req.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to list dismissals: %w", err)
	}
	types := make(map[string]bool, len(dismissals))
	for _, d := range dismissals {
		types[d.ItemType] = true
	}
	return types, nil
}

// daysBetween returns whole days elapsed from t to now, never negative.
func daysBetween(t, now time.Time) int {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Ensure TriageServiceImpl implements the interface
var _ primary.TriageService = (*TriageServiceImpl)(nil)
