package primary

import (
	"context"
	"time"

	"github.com/example/deskflow/internal/models"
)

// PortfolioService defines the primary port for portfolio records.
type PortfolioService interface {
	// CreatePortfolio registers a portfolio under an analyst's coverage.
	CreatePortfolio(ctx context.Context, id, name, analystID string) (*models.Portfolio, error)

	// GetPortfolio retrieves a portfolio by ID.
	GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error)

	// ListPortfolios retrieves the portfolios covered by an analyst.
	ListPortfolios(ctx context.Context, analystID string) ([]*models.Portfolio, error)

	// ReviewThesis records a thesis review at the given time.
	ReviewThesis(ctx context.Context, id string, reviewedAt time.Time) error

	// SetExpectedReturn updates the expected-value signal.
	SetExpectedReturn(ctx context.Context, id string, expectedReturn float64) error
}

// IdeaService defines the primary port for trade ideas.
type IdeaService interface {
	// CreateIdea opens a new active idea.
	CreateIdea(ctx context.Context, req CreateIdeaRequest) (*models.Idea, error)

	// GetIdea retrieves an idea by ID.
	GetIdea(ctx context.Context, id string) (*models.Idea, error)

	// ListIdeas retrieves ideas for a portfolio, optionally only unsimulated.
	ListIdeas(ctx context.Context, portfolioID string, onlyUnsimulated bool) ([]*models.Idea, error)

	// SimulateIdea records a simulation run for an idea.
	SimulateIdea(ctx context.Context, id string) error

	// CloseIdea closes an active idea.
	CloseIdea(ctx context.Context, id string) error
}

// CreateIdeaRequest carries the fields for a new idea.
type CreateIdeaRequest struct {
	PortfolioID string
	Ticker      string
	Title       string
	Notes       string
}

// ProposalService defines the primary port for proposals and decisions.
type ProposalService interface {
	// SubmitProposal creates a pending proposal, optionally from an idea.
	SubmitProposal(ctx context.Context, req SubmitProposalRequest) (*models.Proposal, error)

	// GetProposal retrieves a proposal by ID.
	GetProposal(ctx context.Context, id string) (*models.Proposal, error)

	// ListPending retrieves pending proposals for a portfolio, oldest first.
	ListPending(ctx context.Context, portfolioID string) ([]*models.Proposal, error)

	// DecideProposal records a decision on a pending proposal.
	DecideProposal(ctx context.Context, proposalID, outcome string, decidedAt time.Time) (*models.Decision, error)

	// ConfirmExecution confirms execution of an approved decision.
	ConfirmExecution(ctx context.Context, decisionID string, executedAt time.Time) error
}

// SubmitProposalRequest carries the fields for a new proposal.
type SubmitProposalRequest struct {
	IdeaID      string // optional
	PortfolioID string
	Ticker      string
	SubmittedAt time.Time
}

// RatingService defines the primary port for rating changes.
type RatingService interface {
	// RecordChange persists a rating change on a covered ticker.
	RecordChange(ctx context.Context, req RecordRatingRequest) (*models.RatingChange, error)

	// ListRecent retrieves rating changes inside the lookback window.
	ListRecent(ctx context.Context, portfolioID string, cutoff time.Time) ([]*models.RatingChange, error)
}

// RecordRatingRequest carries the fields for a rating change.
type RecordRatingRequest struct {
	PortfolioID string
	Ticker      string
	OldRating   string
	NewRating   string
	ChangedAt   time.Time
}
