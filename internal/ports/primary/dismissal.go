package primary

import (
	"context"
	"time"

	"github.com/example/deskflow/internal/models"
)

// DismissalService defines the primary port for per-analyst suppression.
type DismissalService interface {
	// Dismiss suppresses items of the given type for an analyst's portfolio
	// until the suppression window passes. The item must be dismissible at
	// evaluation time; dismissing a red item is rejected.
	Dismiss(ctx context.Context, req DismissRequest) (*models.Dismissal, error)

	// ListActive retrieves the analyst's active dismissals for a portfolio.
	ListActive(ctx context.Context, analystID, portfolioID string, now time.Time) ([]*models.Dismissal, error)

	// Purge removes expired dismissals and returns how many were removed.
	Purge(ctx context.Context, now time.Time) (int, error)
}

// DismissRequest identifies one suppression.
type DismissRequest struct {
	AnalystID   string
	PortfolioID string
	ItemType    string
	Until       time.Time
	// Now is the evaluation time used to verify the item is dismissible.
	Now time.Time
}
