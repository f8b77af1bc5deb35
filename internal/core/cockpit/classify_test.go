package cockpit

import (
	"testing"

	"github.com/example/deskflow/internal/core/triage"
)

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		name string
		item triage.Item
		want triage.Kind
	}{
		{
			name: "stamped tag wins",
			item: triage.Item{ID: "proposal_stalled:PROP-001", Kind: triage.KindExecutions},
			want: triage.KindExecutions,
		},
		{
			name: "untagged falls back to id prefix",
			item: triage.Item{ID: "thesis_stale:PF-001"},
			want: triage.KindTheses,
		},
		{
			name: "untagged execution prefix",
			item: triage.Item{ID: "execution_not_confirmed:DEC-001"},
			want: triage.KindExecutions,
		},
		{
			name: "unknown id falls back to category",
			item: triage.Item{ID: "custom:xyz", Category: triage.CategoryAlpha},
			want: triage.KindOpportunities,
		},
		{
			name: "unknown id risk category",
			item: triage.Item{ID: "custom:xyz", Category: triage.CategoryRisk},
			want: triage.KindTheses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyKind(tt.item); got != tt.want {
				t.Errorf("ClassifyKind() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBandForPromotion(t *testing.T) {
	red := triage.Item{Severity: triage.SeverityRed}
	orange := triage.Item{Severity: triage.SeverityOrange}

	tests := []struct {
		name  string
		kind  triage.Kind
		items []triage.Item
		want  Band
	}{
		{
			name:  "all-red proposal group promotes to decide now",
			kind:  triage.KindProposals,
			items: []triage.Item{red, red},
			want:  BandDecideNow,
		},
		{
			name:  "mixed-severity proposal group stays in default band",
			kind:  triage.KindProposals,
			items: []triage.Item{red, orange},
			want:  BandNeedsProgress,
		},
		{
			name:  "all-red thesis group does not promote",
			kind:  triage.KindTheses,
			items: []triage.Item{red, red},
			want:  BandForAwareness,
		},
		{
			name:  "executions already at the top band",
			kind:  triage.KindExecutions,
			items: []triage.Item{orange},
			want:  BandDecideNow,
		},
		{
			name:  "opportunities in watchlist",
			kind:  triage.KindOpportunities,
			items: []triage.Item{orange},
			want:  BandWatchlist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandFor(tt.kind, tt.items); got != tt.want {
				t.Errorf("BandFor() = %s, want %s", got, tt.want)
			}
		})
	}
}
