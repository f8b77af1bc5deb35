package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/secondary"
)

// IdeaRepository implements secondary.IdeaRepository with SQLite.
type IdeaRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewIdeaRepository creates a new SQLite idea repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewIdeaRepository(db *sql.DB, logWriter secondary.LogWriter) *IdeaRepository {
	return &IdeaRepository{db: db, logWriter: logWriter}
}

// Create persists a new idea.
func (r *IdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ideas (id, portfolio_id, ticker, title, notes, status, simulated) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		idea.ID,
		idea.PortfolioID,
		idea.Ticker,
		idea.Title,
		idea.Notes,
		idea.Status,
		idea.Simulated,
	)
	if err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "idea", idea.ID)
	}

	return nil
}

// GetByID retrieves an idea by its ID.
func (r *IdeaRepository) GetByID(ctx context.Context, id string) (*models.Idea, error) {
	idea := &models.Idea{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, portfolio_id, ticker, title, notes, status, simulated, created_at, updated_at FROM ideas WHERE id = ?`,
		id,
	).Scan(&idea.ID, &idea.PortfolioID, &idea.Ticker, &idea.Title, &idea.Notes, &idea.Status, &idea.Simulated, &idea.CreatedAt, &idea.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("idea %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}
	return idea, nil
}

// List retrieves ideas matching the given filters, oldest first.
func (r *IdeaRepository) List(ctx context.Context, filters secondary.IdeaFilters) ([]*models.Idea, error) {
	query := `SELECT id, portfolio_id, ticker, title, notes, status, simulated, created_at, updated_at FROM ideas WHERE 1=1`
	var args []interface{}

	if filters.PortfolioID != "" {
		query += ` AND portfolio_id = ?`
		args = append(args, filters.PortfolioID)
	}
	if filters.Status != "" {
		query += ` AND status = ?`
		args = append(args, filters.Status)
	}
	if filters.OnlyUnsimmed {
		query += ` AND simulated = 0`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	var ideas []*models.Idea
	for rows.Next() {
		idea := &models.Idea{}
		if err := rows.Scan(&idea.ID, &idea.PortfolioID, &idea.Ticker, &idea.Title, &idea.Notes, &idea.Status, &idea.Simulated, &idea.CreatedAt, &idea.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

// MarkSimulated records a simulation run for an idea.
func (r *IdeaRepository) MarkSimulated(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE ideas SET simulated = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark idea simulated: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("idea %s not found", id)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "idea", id, "simulated", "0", "1")
	}

	return nil
}

// UpdateStatus changes an idea's status.
func (r *IdeaRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE ideas SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update idea status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("idea %s not found", id)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "idea", id, "status", "", status)
	}

	return nil
}

// GetNextID returns the next available idea ID.
func (r *IdeaRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len("IDEA-") + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM ideas", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next idea ID: %w", err)
	}

	return fmt.Sprintf("IDEA-%03d", maxID+1), nil
}

// Ensure IdeaRepository implements the interface
var _ secondary.IdeaRepository = (*IdeaRepository)(nil)
