// Package primary defines the primary ports (driving interfaces) for the
// application. CLI adapters call these; internal/app implements them.
package primary

import (
	"context"
	"time"

	"github.com/example/deskflow/internal/core/cockpit"
	"github.com/example/deskflow/internal/core/triage"
)

// TriageService defines the primary port for attention triage.
// It gathers workflow facts, runs the evaluation engine, and applies the
// per-analyst suppression filter before returning items.
type TriageService interface {
	// GatherFacts builds the facts snapshot for a portfolio at the given
	// evaluation time. Exposed separately so callers can inspect inputs.
	GatherFacts(ctx context.Context, portfolioID string, now time.Time) (triage.Facts, error)

	// Evaluate returns the ranked, suppression-filtered attention items for
	// an analyst's portfolio at the given evaluation time.
	Evaluate(ctx context.Context, req TriageRequest) ([]triage.Item, error)

	// Cockpit returns the banded stack view over the evaluated items.
	Cockpit(ctx context.Context, req TriageRequest) (cockpit.View, error)
}

// TriageRequest identifies one evaluation call.
type TriageRequest struct {
	AnalystID   string
	PortfolioID string
	// Now is the evaluation time; the engine never reads the clock itself.
	Now time.Time
	// IncludeSuppressed skips the per-analyst dismissal filter.
	IncludeSuppressed bool
}
