// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/secondary"
)

// PortfolioRepository implements secondary.PortfolioRepository with SQLite.
type PortfolioRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewPortfolioRepository creates a new SQLite portfolio repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewPortfolioRepository(db *sql.DB, logWriter secondary.LogWriter) *PortfolioRepository {
	return &PortfolioRepository{db: db, logWriter: logWriter}
}

// Create persists a new portfolio.
func (r *PortfolioRepository) Create(ctx context.Context, portfolio *models.Portfolio) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO portfolios (id, name, analyst_id, thesis_updated_at, expected_return) VALUES (?, ?, ?, ?, ?)`,
		portfolio.ID,
		portfolio.Name,
		portfolio.AnalystID,
		portfolio.ThesisUpdatedAt,
		portfolio.ExpectedReturn,
	)
	if err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "portfolio", portfolio.ID)
	}

	return nil
}

// GetByID retrieves a portfolio by its ID.
func (r *PortfolioRepository) GetByID(ctx context.Context, id string) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, analyst_id, thesis_updated_at, expected_return, created_at, updated_at FROM portfolios WHERE id = ?`,
		id,
	).Scan(&portfolio.ID, &portfolio.Name, &portfolio.AnalystID, &portfolio.ThesisUpdatedAt, &portfolio.ExpectedReturn, &portfolio.CreatedAt, &portfolio.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("portfolio %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return portfolio, nil
}

// List retrieves all portfolios for an analyst.
func (r *PortfolioRepository) List(ctx context.Context, analystID string) ([]*models.Portfolio, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, analyst_id, thesis_updated_at, expected_return, created_at, updated_at FROM portfolios WHERE analyst_id = ? ORDER BY id`,
		analystID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []*models.Portfolio
	for rows.Next() {
		p := &models.Portfolio{}
		if err := rows.Scan(&p.ID, &p.Name, &p.AnalystID, &p.ThesisUpdatedAt, &p.ExpectedReturn, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

// TouchThesis records a thesis review at the given time.
func (r *PortfolioRepository) TouchThesis(ctx context.Context, id string, reviewedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE portfolios SET thesis_updated_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		reviewedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to touch thesis: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("portfolio %s not found", id)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "portfolio", id, "thesis_updated_at", "", reviewedAt.Format(time.RFC3339))
	}

	return nil
}

// SetExpectedReturn updates the expected-value signal.
func (r *PortfolioRepository) SetExpectedReturn(ctx context.Context, id string, expectedReturn float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE portfolios SET expected_return = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		expectedReturn, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set expected return: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("portfolio %s not found", id)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogUpdate(ctx, "portfolio", id, "expected_return", "", fmt.Sprintf("%.4f", expectedReturn))
	}

	return nil
}

// Ensure PortfolioRepository implements the interface
var _ secondary.PortfolioRepository = (*PortfolioRepository)(nil)
