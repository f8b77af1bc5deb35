package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/secondary"
)

// DecisionRepository implements secondary.DecisionRepository with SQLite.
type DecisionRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewDecisionRepository creates a new SQLite decision repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewDecisionRepository(db *sql.DB, logWriter secondary.LogWriter) *DecisionRepository {
	return &DecisionRepository{db: db, logWriter: logWriter}
}

// Create persists a new decision.
func (r *DecisionRepository) Create(ctx context.Context, decision *models.Decision) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decisions (id, proposal_id, outcome, decided_at, executed) VALUES (?, ?, ?, ?, ?)`,
		decision.ID,
		decision.ProposalID,
		decision.Outcome,
		decision.DecidedAt,
		decision.Executed,
	)
	if err != nil {
		return fmt.Errorf("failed to create decision: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "decision", decision.ID)
	}

	return nil
}

// GetByID retrieves a decision by its ID.
func (r *DecisionRepository) GetByID(ctx context.Context, id string) (*models.Decision, error) {
	decision := &models.Decision{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, proposal_id, outcome, decided_at, executed, executed_at, created_at FROM decisions WHERE id = ?`,
		id,
	).Scan(&decision.ID, &decision.ProposalID, &decision.Outcome, &decision.DecidedAt, &decision.Executed, &decision.ExecutedAt, &decision.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("decision %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return decision, nil
}

// ListUnexecuted retrieves approved decisions without a confirmed execution
// for a portfolio, oldest first.
func (r *DecisionRepository) ListUnexecuted(ctx context.Context, portfolioID string) ([]*models.Decision, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.id, d.proposal_id, d.outcome, d.decided_at, d.executed, d.executed_at, d.created_at
		 FROM decisions d
		 JOIN proposals p ON p.id = d.proposal_id
		 WHERE p.portfolio_id = ? AND d.outcome = 'approved' AND d.executed = 0
		 ORDER BY d.decided_at, d.id`,
		portfolioID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list unexecuted decisions: %w", err)
	}
	defer rows.Close()

	var decisions []*models.Decision
	for rows.Next() {
		d := &models.Decision{}
		if err := rows.Scan(&d.ID, &d.ProposalID, &d.Outcome, &d.DecidedAt, &d.Executed, &d.ExecutedAt, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

// CountExecuted returns the number of confirmed executions for a portfolio.
func (r *DecisionRepository) CountExecuted(ctx context.Context, portfolioID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM decisions d
		 JOIN proposals p ON p.id = d.proposal_id
		 WHERE p.portfolio_id = ? AND d.executed = 1`,
		portfolioID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count executed decisions: %w", err)
	}
	return count, nil
}

// MarkExecuted confirms execution of an approved decision.
func (r *DecisionRepository) MarkExecuted(ctx context.Context, id string, executedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE decisions SET executed = 1, executed_at = ? WHERE id = ? AND outcome = 'approved'`,
		executedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark decision executed: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("approved decision %s not found", id)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "decision", id, "executed", "0", "1")
	}

	return nil
}

// GetNextID returns the next available decision ID.
func (r *DecisionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len("DEC-") + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM decisions", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next decision ID: %w", err)
	}

	return fmt.Sprintf("DEC-%03d", maxID+1), nil
}

// Ensure DecisionRepository implements the interface
var _ secondary.DecisionRepository = (*DecisionRepository)(nil)
