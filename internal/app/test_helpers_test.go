package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/secondary"
)

// Ensure fakes implement the interfaces
var (
	_ secondary.PortfolioRepository    = (*fakePortfolioRepo)(nil)
	_ secondary.IdeaRepository         = (*fakeIdeaRepo)(nil)
	_ secondary.ProposalRepository     = (*fakeProposalRepo)(nil)
	_ secondary.DecisionRepository     = (*fakeDecisionRepo)(nil)
	_ secondary.RatingChangeRepository = (*fakeRatingRepo)(nil)
	_ secondary.DismissalRepository    = (*fakeDismissalRepo)(nil)
)

type fakePortfolioRepo struct {
	portfolios map[string]*models.Portfolio
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{portfolios: make(map[string]*models.Portfolio)}
}

func (f *fakePortfolioRepo) Create(ctx context.Context, p *models.Portfolio) error {
	f.portfolios[p.ID] = p
	return nil
}

func (f *fakePortfolioRepo) GetByID(ctx context.Context, id string) (*models.Portfolio, error) {
	p, ok := f.portfolios[id]
	if !ok {
		return nil, fmt.Errorf("portfolio %s not found", id)
	}
	return p, nil
}

func (f *fakePortfolioRepo) List(ctx context.Context, analystID string) ([]*models.Portfolio, error) {
	var out []*models.Portfolio
	for _, p := range f.portfolios {
		if p.AnalystID == analystID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePortfolioRepo) TouchThesis(ctx context.Context, id string, reviewedAt time.Time) error {
	p, ok := f.portfolios[id]
	if !ok {
		return fmt.Errorf("portfolio %s not found", id)
	}
	p.ThesisUpdatedAt = sql.NullTime{Time: reviewedAt, Valid: true}
	return nil
}

func (f *fakePortfolioRepo) SetExpectedReturn(ctx context.Context, id string, expectedReturn float64) error {
	p, ok := f.portfolios[id]
	if !ok {
		return fmt.Errorf("portfolio %s not found", id)
	}
	p.ExpectedReturn = sql.NullFloat64{Float64: expectedReturn, Valid: true}
	return nil
}

type fakeIdeaRepo struct {
	ideas []*models.Idea
}

func (f *fakeIdeaRepo) Create(ctx context.Context, idea *models.Idea) error {
	f.ideas = append(f.ideas, idea)
	return nil
}

func (f *fakeIdeaRepo) GetByID(ctx context.Context, id string) (*models.Idea, error) {
	for _, idea := range f.ideas {
		if idea.ID == id {
			return idea, nil
		}
	}
	return nil, fmt.Errorf("idea %s not found", id)
}

func (f *fakeIdeaRepo) List(ctx context.Context, filters secondary.IdeaFilters) ([]*models.Idea, error) {
	var out []*models.Idea
	for _, idea := range f.ideas {
		if filters.PortfolioID != "" && idea.PortfolioID != filters.PortfolioID {
			continue
		}
		if filters.Status != "" && idea.Status != filters.Status {
			continue
		}
		if filters.OnlyUnsimmed && idea.Simulated {
			continue
		}
		out = append(out, idea)
	}
	return out, nil
}

func (f *fakeIdeaRepo) MarkSimulated(ctx context.Context, id string) error {
	idea, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	idea.Simulated = true
	return nil
}

func (f *fakeIdeaRepo) UpdateStatus(ctx context.Context, id, status string) error {
	idea, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	idea.Status = status
	return nil
}

func (f *fakeIdeaRepo) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("IDEA-%03d", len(f.ideas)+1), nil
}

type fakeProposalRepo struct {
	proposals []*models.Proposal
}

func (f *fakeProposalRepo) Create(ctx context.Context, p *models.Proposal) error {
	f.proposals = append(f.proposals, p)
	return nil
}

func (f *fakeProposalRepo) GetByID(ctx context.Context, id string) (*models.Proposal, error) {
	for _, p := range f.proposals {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("proposal %s not found", id)
}

func (f *fakeProposalRepo) ListPending(ctx context.Context, portfolioID string) ([]*models.Proposal, error) {
	var out []*models.Proposal
	for _, p := range f.proposals {
		if p.PortfolioID == portfolioID && p.Status == models.ProposalStatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProposalRepo) UpdateStatus(ctx context.Context, id, status string, decidedAt time.Time) error {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = status
	if status == models.ProposalStatusDecided {
		p.DecidedAt = sql.NullTime{Time: decidedAt, Valid: true}
	}
	return nil
}

func (f *fakeProposalRepo) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PROP-%03d", len(f.proposals)+1), nil
}

type fakeDecisionRepo struct {
	decisions []*models.Decision
	// portfolioByProposal resolves the portfolio for ListUnexecuted.
	portfolioByProposal map[string]string
}

func newFakeDecisionRepo() *fakeDecisionRepo {
	return &fakeDecisionRepo{portfolioByProposal: make(map[string]string)}
}

func (f *fakeDecisionRepo) Create(ctx context.Context, d *models.Decision) error {
	f.decisions = append(f.decisions, d)
	return nil
}

func (f *fakeDecisionRepo) GetByID(ctx context.Context, id string) (*models.Decision, error) {
	for _, d := range f.decisions {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("decision %s not found", id)
}

func (f *fakeDecisionRepo) ListUnexecuted(ctx context.Context, portfolioID string) ([]*models.Decision, error) {
	var out []*models.Decision
	for _, d := range f.decisions {
		if f.portfolioByProposal[d.ProposalID] != portfolioID {
			continue
		}
		if d.Outcome == models.DecisionOutcomeApproved && !d.Executed {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDecisionRepo) CountExecuted(ctx context.Context, portfolioID string) (int, error) {
	count := 0
	for _, d := range f.decisions {
		if f.portfolioByProposal[d.ProposalID] == portfolioID && d.Executed {
			count++
		}
	}
	return count, nil
}

func (f *fakeDecisionRepo) MarkExecuted(ctx context.Context, id string, executedAt time.Time) error {
	d, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	d.Executed = true
	d.ExecutedAt = sql.NullTime{Time: executedAt, Valid: true}
	return nil
}

func (f *fakeDecisionRepo) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("DEC-%03d", len(f.decisions)+1), nil
}

type fakeRatingRepo struct {
	changes []*models.RatingChange
}

func (f *fakeRatingRepo) Create(ctx context.Context, c *models.RatingChange) error {
	f.changes = append(f.changes, c)
	return nil
}

func (f *fakeRatingRepo) ListSince(ctx context.Context, portfolioID string, cutoff time.Time) ([]*models.RatingChange, error) {
	var out []*models.RatingChange
	for _, c := range f.changes {
		if c.PortfolioID == portfolioID && !c.ChangedAt.Before(cutoff) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeDismissalRepo struct {
	dismissals []*models.Dismissal
}

func (f *fakeDismissalRepo) Create(ctx context.Context, d *models.Dismissal) error {
	if d.ID == "" {
		d.ID = fmt.Sprintf("dismissal-%d", len(f.dismissals)+1)
	}
	f.dismissals = append(f.dismissals, d)
	return nil
}

func (f *fakeDismissalRepo) ListActive(ctx context.Context, analystID, portfolioID string, now time.Time) ([]*models.Dismissal, error) {
	var out []*models.Dismissal
	for _, d := range f.dismissals {
		if d.AnalystID == analystID && d.PortfolioID == portfolioID && d.SuppressedUntil.After(now) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDismissalRepo) Purge(ctx context.Context, before time.Time) (int, error) {
	var kept []*models.Dismissal
	purged := 0
	for _, d := range f.dismissals {
		if d.SuppressedUntil.After(before) {
			kept = append(kept, d)
		} else {
			purged++
		}
	}
	f.dismissals = kept
	return purged, nil
}
