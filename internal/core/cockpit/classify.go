// Package cockpit groups ranked triage items into scored stacks inside
// urgency bands for the cockpit view. Pure transforms only; the caller
// renders bands and performs navigation.
package cockpit

import (
	"strings"

	"github.com/example/deskflow/internal/core/triage"
)

// Band is a coarse urgency tier for display grouping.
type Band string

// Band constants, highest urgency first.
const (
	BandDecideNow     Band = "decide_now"
	BandNeedsProgress Band = "needs_progress"
	BandForAwareness  Band = "for_awareness"
	BandWatchlist     Band = "watchlist"
)

// bandOrder fixes the display order of bands.
var bandOrder = []Band{BandDecideNow, BandNeedsProgress, BandForAwareness, BandWatchlist}

// defaultBand maps each kind to its home band.
var defaultBand = map[triage.Kind]Band{
	triage.KindExecutions:    BandDecideNow,
	triage.KindProposals:     BandNeedsProgress,
	triage.KindIdeas:         BandNeedsProgress,
	triage.KindTheses:        BandForAwareness,
	triage.KindRatings:       BandForAwareness,
	triage.KindOpportunities: BandWatchlist,
}

// idPrefixKinds supports the legacy id-prefix dispatch for items built by
// callers that predate the stamped Kind tag. Prefixes follow the trigger
// type names used in item ids.
var idPrefixKinds = map[string]triage.Kind{
	"proposal_":    triage.KindProposals,
	"execution_":   triage.KindExecutions,
	"idea_":        triage.KindIdeas,
	"thesis_":      triage.KindTheses,
	"rating_":      triage.KindRatings,
	"opportunity_": triage.KindOpportunities,
}

// ClassifyKind returns the semantic kind for an item. The stamped tag wins;
// untagged items fall back to id-prefix dispatch, then to category.
func ClassifyKind(it triage.Item) triage.Kind {
	if it.Kind != "" {
		return it.Kind
	}
	for prefix, kind := range idPrefixKinds {
		if strings.HasPrefix(it.ID, prefix) {
			return kind
		}
	}
	switch it.Category {
	case triage.CategoryAlpha:
		return triage.KindOpportunities
	case triage.CategoryRisk:
		return triage.KindTheses
	default:
		return triage.KindIdeas
	}
}

// BandFor assigns a band to a kind's item group. Proposals are the
// deliverable kind: when every item in the group sits at the highest
// severity tier the group is promoted one band toward decide-now. The rule
// is evaluated over the whole group; a lone red proposal among lower-tier
// ones does not promote.
func BandFor(kind triage.Kind, items []triage.Item) Band {
	band, ok := defaultBand[kind]
	if !ok {
		band = BandWatchlist
	}
	if kind == triage.KindProposals && len(items) > 0 && allRed(items) {
		band = promote(band)
	}
	return band
}

func allRed(items []triage.Item) bool {
	for _, it := range items {
		if it.Severity != triage.SeverityRed {
			return false
		}
	}
	return true
}

// promote moves a band one tier toward decide-now.
func promote(b Band) Band {
	for i, band := range bandOrder {
		if band == b {
			if i == 0 {
				return b
			}
			return bandOrder[i-1]
		}
	}
	return b
}
