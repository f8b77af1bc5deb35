package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/secondary"
)

// DismissalRepository implements secondary.DismissalRepository with SQLite.
type DismissalRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewDismissalRepository creates a new SQLite dismissal repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewDismissalRepository(db *sql.DB, logWriter secondary.LogWriter) *DismissalRepository {
	return &DismissalRepository{db: db, logWriter: logWriter}
}

// Create persists a new dismissal. Generates a UUID when the record has no
// ID yet.
func (r *DismissalRepository) Create(ctx context.Context, dismissal *models.Dismissal) error {
	if dismissal.ID == "" {
		dismissal.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dismissals (id, analyst_id, portfolio_id, item_type, suppressed_until) VALUES (?, ?, ?, ?, ?)`,
		dismissal.ID,
		dismissal.AnalystID,
		dismissal.PortfolioID,
		dismissal.ItemType,
		dismissal.SuppressedUntil,
	)
	if err != nil {
		return fmt.Errorf("failed to create dismissal: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "dismissal", dismissal.ID)
	}

	return nil
}

// ListActive retrieves dismissals for an analyst and portfolio whose
// suppression window has not yet passed at the given time.
func (r *DismissalRepository) ListActive(ctx context.Context, analystID, portfolioID string, now time.Time) ([]*models.Dismissal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, analyst_id, portfolio_id, item_type, suppressed_until, created_at FROM dismissals WHERE analyst_id = ? AND portfolio_id = ? AND suppressed_until > ? ORDER BY created_at, id`,
		analystID, portfolioID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list dismissals: %w", err)
	}
	defer rows.Close()

	var dismissals []*models.Dismissal
	for rows.Next() {
		d := &models.Dismissal{}
		if err := rows.Scan(&d.ID, &d.AnalystID, &d.PortfolioID, &d.ItemType, &d.SuppressedUntil, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dismissal: %w", err)
		}
		dismissals = append(dismissals, d)
	}
	return dismissals, rows.Err()
}

// Purge removes dismissals whose suppression window passed before the given
// time.
func (r *DismissalRepository) Purge(ctx context.Context, before time.Time) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM dismissals WHERE suppressed_until <= ?`,
		before,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge dismissals: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged dismissals: %w", err)
	}
	return int(n), nil
}

// Ensure DismissalRepository implements the interface
var _ secondary.DismissalRepository = (*DismissalRepository)(nil)
