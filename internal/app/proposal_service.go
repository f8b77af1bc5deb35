package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/ports/secondary"
)

// ProposalServiceImpl implements the ProposalService interface.
type ProposalServiceImpl struct {
	proposalRepo  secondary.ProposalRepository
	decisionRepo  secondary.DecisionRepository
	ideaRepo      secondary.IdeaRepository
	portfolioRepo secondary.PortfolioRepository
}

// NewProposalService creates a new ProposalService with injected dependencies.
func NewProposalService(
	proposalRepo secondary.ProposalRepository,
	decisionRepo secondary.DecisionRepository,
	ideaRepo secondary.IdeaRepository,
	portfolioRepo secondary.PortfolioRepository,
) *ProposalServiceImpl {
	return &ProposalServiceImpl{
		proposalRepo:  proposalRepo,
		decisionRepo:  decisionRepo,
		ideaRepo:      ideaRepo,
		portfolioRepo: portfolioRepo,
	}
}

// SubmitProposal creates a pending proposal, optionally from an idea.
func (s *ProposalServiceImpl) SubmitProposal(ctx context.Context, req primary.SubmitProposalRequest) (*models.Proposal, error) {
	if req.Ticker == "" {
		return nil, fmt.Errorf("proposal ticker is required")
	}
	if _, err := s.portfolioRepo.GetByID(ctx, req.PortfolioID); err != nil {
		return nil, err
	}
	if req.IdeaID != "" {
		if _, err := s.ideaRepo.GetByID(ctx, req.IdeaID); err != nil {
			return nil, err
		}
	}

	id, err := s.proposalRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}

	proposal := &models.Proposal{
		ID:          id,
		PortfolioID: req.PortfolioID,
		Ticker:      req.Ticker,
		Status:      models.ProposalStatusPending,
		SubmittedAt: req.SubmittedAt,
	}
	if req.IdeaID != "" {
		proposal.IdeaID = sql.NullString{String: req.IdeaID, Valid: true}
	}
	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// GetProposal retrieves a proposal by ID.
func (s *ProposalServiceImpl) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	return s.proposalRepo.GetByID(ctx, id)
}

// ListPending retrieves pending proposals for a portfolio, oldest first.
func (s *ProposalServiceImpl) ListPending(ctx context.Context, portfolioID string) ([]*models.Proposal, error) {
	return s.proposalRepo.ListPending(ctx, portfolioID)
}

// DecideProposal records a decision on a pending proposal.
func (s *ProposalServiceImpl) DecideProposal(ctx context.Context, proposalID, outcome string, decidedAt time.Time) (*models.Decision, error) {
	if outcome != models.DecisionOutcomeApproved && outcome != models.DecisionOutcomeRejected {
		return nil, fmt.Errorf("unknown decision outcome: %s", outcome)
	}

	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status != models.ProposalStatusPending {
		return nil, fmt.Errorf("can only decide pending proposals (current status: %s)", proposal.Status)
	}

	id, err := s.decisionRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}

	decision := &models.Decision{
		ID:         id,
		ProposalID: proposalID,
		Outcome:    outcome,
		DecidedAt:  decidedAt,
	}
	if err := s.decisionRepo.Create(ctx, decision); err != nil {
		return nil, err
	}
	if err := s.proposalRepo.UpdateStatus(ctx, proposalID, models.ProposalStatusDecided, decidedAt); err != nil {
		return nil, err
	}
	return decision, nil
}

// ConfirmExecution confirms execution of an approved decision.
func (s *ProposalServiceImpl) ConfirmExecution(ctx context.Context, decisionID string, executedAt time.Time) error {
	return s.decisionRepo.MarkExecuted(ctx, decisionID, executedAt)
}

// Ensure ProposalServiceImpl implements the interface
var _ primary.ProposalService = (*ProposalServiceImpl)(nil)
