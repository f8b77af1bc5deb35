package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/secondary"
)

// ProposalRepository implements secondary.ProposalRepository with SQLite.
type ProposalRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewProposalRepository creates a new SQLite proposal repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewProposalRepository(db *sql.DB, logWriter secondary.LogWriter) *ProposalRepository {
	return &ProposalRepository{db: db, logWriter: logWriter}
}

// Create persists a new proposal.
func (r *ProposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO proposals (id, idea_id, portfolio_id, ticker, status, submitted_at) VALUES (?, ?, ?, ?, ?, ?)`,
		proposal.ID,
		proposal.IdeaID,
		proposal.PortfolioID,
		proposal.Ticker,
		proposal.Status,
		proposal.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "proposal", proposal.ID)
	}

	return nil
}

// GetByID retrieves a proposal by its ID.
func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*models.Proposal, error) {
	proposal := &models.Proposal{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, idea_id, portfolio_id, ticker, status, submitted_at, decided_at, created_at, updated_at FROM proposals WHERE id = ?`,
		id,
	).Scan(&proposal.ID, &proposal.IdeaID, &proposal.PortfolioID, &proposal.Ticker, &proposal.Status, &proposal.SubmittedAt, &proposal.DecidedAt, &proposal.CreatedAt, &proposal.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("proposal %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return proposal, nil
}

// ListPending retrieves pending proposals for a portfolio, oldest first.
func (r *ProposalRepository) ListPending(ctx context.Context, portfolioID string) ([]*models.Proposal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, idea_id, portfolio_id, ticker, status, submitted_at, decided_at, created_at, updated_at FROM proposals WHERE portfolio_id = ? AND status = 'pending' ORDER BY submitted_at, id`,
		portfolioID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*models.Proposal
	for rows.Next() {
		p := &models.Proposal{}
		if err := rows.Scan(&p.ID, &p.IdeaID, &p.PortfolioID, &p.Ticker, &p.Status, &p.SubmittedAt, &p.DecidedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

// UpdateStatus changes a proposal's status, stamping the decision time when
// the new status is decided.
func (r *ProposalRepository) UpdateStatus(ctx context.Context, id, status string, decidedAt time.Time) error {
	var result sql.Result
	var err error
	if status == models.ProposalStatusDecided {
		result, err = r.db.ExecContext(ctx,
			`UPDATE proposals SET status = ?, decided_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			status, decidedAt, id,
		)
	} else {
		result, err = r.db.ExecContext(ctx,
			`UPDATE proposals SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			status, id,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to update proposal status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("proposal %s not found", id)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "proposal", id, "status", "", status)
	}

	return nil
}

// GetNextID returns the next available proposal ID.
func (r *ProposalRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len("PROP-") + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM proposals", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next proposal ID: %w", err)
	}

	return fmt.Sprintf("PROP-%03d", maxID+1), nil
}

// Ensure ProposalRepository implements the interface
var _ secondary.ProposalRepository = (*ProposalRepository)(nil)
