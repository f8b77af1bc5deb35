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

// RatingChangeRepository implements secondary.RatingChangeRepository with SQLite.
type RatingChangeRepository struct {
	db        *sql.DB
	logWriter secondary.LogWriter
}

// NewRatingChangeRepository creates a new SQLite rating-change repository.
// logWriter is optional - if nil, no audit logging is performed.
func NewRatingChangeRepository(db *sql.DB, logWriter secondary.LogWriter) *RatingChangeRepository {
	return &RatingChangeRepository{db: db, logWriter: logWriter}
}

// Create persists a new rating change. Generates a UUID when the record has
// no ID yet.
func (r *RatingChangeRepository) Create(ctx context.Context, change *models.RatingChange) error {
	if change.ID == "" {
		change.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rating_changes (id, portfolio_id, ticker, old_rating, new_rating, changed_at) VALUES (?, ?, ?, ?, ?, ?)`,
		change.ID,
		change.PortfolioID,
		change.Ticker,
		change.OldRating,
		change.NewRating,
		change.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rating change: %w", err)
	}

	if r.logWriter != nil {
		_ = r.logWriter.LogCreate(ctx, "rating_change", change.ID)
	}

	return nil
}

// ListSince retrieves rating changes for a portfolio at or after the cutoff,
// most recent first.
func (r *RatingChangeRepository) ListSince(ctx context.Context, portfolioID string, cutoff time.Time) ([]*models.RatingChange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, portfolio_id, ticker, old_rating, new_rating, changed_at, created_at FROM rating_changes WHERE portfolio_id = ? AND changed_at >= ? ORDER BY changed_at DESC, id`,
		portfolioID, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rating changes: %w", err)
	}
	defer rows.Close()

	var changes []*models.RatingChange
	for rows.Next() {
		c := &models.RatingChange{}
		if err := rows.Scan(&c.ID, &c.PortfolioID, &c.Ticker, &c.OldRating, &c.NewRating, &c.ChangedAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating change: %w", err)
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}

// Ensure RatingChangeRepository implements the interface
var _ secondary.RatingChangeRepository = (*RatingChangeRepository)(nil)
