// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"time"

	"github.com/example/deskflow/internal/models"
)

// PortfolioRepository defines the secondary port for portfolio persistence.
type PortfolioRepository interface {
	// Create persists a new portfolio.
	Create(ctx context.Context, portfolio *models.Portfolio) error

	// GetByID retrieves a portfolio by its ID.
	GetByID(ctx context.Context, id string) (*models.Portfolio, error)

	// List retrieves all portfolios for an analyst.
	List(ctx context.Context, analystID string) ([]*models.Portfolio, error)

	// TouchThesis records a thesis review at the given time.
	TouchThesis(ctx context.Context, id string, reviewedAt time.Time) error

	// SetExpectedReturn updates the expected-value signal.
	SetExpectedReturn(ctx context.Context, id string, expectedReturn float64) error
}

// IdeaRepository defines the secondary port for idea persistence.
type IdeaRepository interface {
	// Create persists a new idea.
	Create(ctx context.Context, idea *models.Idea) error

	// GetByID retrieves an idea by its ID.
	GetByID(ctx context.Context, id string) (*models.Idea, error)

	// List retrieves ideas matching the given filters.
	List(ctx context.Context, filters IdeaFilters) ([]*models.Idea, error)

	// MarkSimulated records a simulation run for an idea.
	MarkSimulated(ctx context.Context, id string) error

	// UpdateStatus changes an idea's status.
	UpdateStatus(ctx context.Context, id, status string) error

	// GetNextID returns the next available idea ID.
	GetNextID(ctx context.Context) (string, error)
}

// IdeaFilters narrows idea listings. Zero values mean "no filter".
type IdeaFilters struct {
	PortfolioID  string
	Status       string
	OnlyUnsimmed bool
}

// ProposalRepository defines the secondary port for proposal persistence.
type ProposalRepository interface {
	// Create persists a new proposal.
	Create(ctx context.Context, proposal *models.Proposal) error

	// GetByID retrieves a proposal by its ID.
	GetByID(ctx context.Context, id string) (*models.Proposal, error)

	// ListPending retrieves pending proposals for a portfolio, oldest first.
	ListPending(ctx context.Context, portfolioID string) ([]*models.Proposal, error)

	// UpdateStatus changes a proposal's status, stamping the decision time
	// when the new status is decided.
	UpdateStatus(ctx context.Context, id, status string, decidedAt time.Time) error

	// GetNextID returns the next available proposal ID.
	GetNextID(ctx context.Context) (string, error)
}

// DecisionRepository defines the secondary port for decision persistence.
type DecisionRepository interface {
	// Create persists a new decision.
	Create(ctx context.Context, decision *models.Decision) error

	// GetByID retrieves a decision by its ID.
	GetByID(ctx context.Context, id string) (*models.Decision, error)

	// ListUnexecuted retrieves approved decisions without a confirmed
	// execution for a portfolio, oldest first.
	ListUnexecuted(ctx context.Context, portfolioID string) ([]*models.Decision, error)

	// CountExecuted returns the number of confirmed executions for a portfolio.
	CountExecuted(ctx context.Context, portfolioID string) (int, error)

	// MarkExecuted confirms execution of an approved decision.
	MarkExecuted(ctx context.Context, id string, executedAt time.Time) error

	// GetNextID returns the next available decision ID.
	GetNextID(ctx context.Context) (string, error)
}

// RatingChangeRepository defines the secondary port for rating-change persistence.
type RatingChangeRepository interface {
	// Create persists a new rating change.
	Create(ctx context.Context, change *models.RatingChange) error

	// ListSince retrieves rating changes for a portfolio at or after the
	// cutoff, most recent first.
	ListSince(ctx context.Context, portfolioID string, cutoff time.Time) ([]*models.RatingChange, error)
}

// DismissalRepository defines the secondary port for suppression persistence.
type DismissalRepository interface {
	// Create persists a new dismissal.
	Create(ctx context.Context, dismissal *models.Dismissal) error

	// ListActive retrieves dismissals for an analyst and portfolio whose
	// suppression window has not yet passed at the given time.
	ListActive(ctx context.Context, analystID, portfolioID string, now time.Time) ([]*models.Dismissal, error)

	// Purge removes dismissals whose suppression window passed before the
	// given time.
	Purge(ctx context.Context, before time.Time) (int, error)
}
