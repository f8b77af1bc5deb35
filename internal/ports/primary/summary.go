package primary

import (
	"context"
	"time"

	"github.com/example/deskflow/internal/core/summary"
)

// SummaryService defines the primary port for the workflow status strip.
type SummaryService interface {
	// GatherCounts builds the aggregate counts for a portfolio at the given
	// evaluation time.
	GatherCounts(ctx context.Context, portfolioID string, now time.Time) (summary.Counts, error)

	// Compute returns the five-stage workflow summary for a portfolio.
	Compute(ctx context.Context, portfolioID string, now time.Time) (summary.Summary, error)
}
