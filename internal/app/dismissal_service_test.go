package app

import (
	"context"
	"testing"

	"github.com/example/deskflow/internal/core/triage"
	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
)

func newDismissalFixture(t *testing.T) (*fixture, *DismissalServiceImpl) {
	t.Helper()
	f := newFixture(t)
	return f, NewDismissalService(f.dismissals, f.service)
}

func TestDismiss(t *testing.T) {
	f, svc := newDismissalFixture(t)

	f.ideas.ideas = []*models.Idea{
		{ID: "IDEA-001", PortfolioID: "PF-001", Ticker: "NVDA", Status: models.IdeaStatusActive, CreatedAt: f.daysAgo(5)},
	}

	d, err := svc.Dismiss(context.Background(), primary.DismissRequest{
		AnalystID:   "analyst-1",
		PortfolioID: "PF-001",
		ItemType:    string(triage.TypeIdeaNotSimulated),
		Until:       f.now.AddDate(0, 0, 7),
		Now:         f.now,
	})
	if err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	if d.ItemType != string(triage.TypeIdeaNotSimulated) {
		t.Errorf("ItemType = %s, want %s", d.ItemType, triage.TypeIdeaNotSimulated)
	}
	if len(f.dismissals.dismissals) != 1 {
		t.Fatalf("persisted %d dismissals, want 1", len(f.dismissals.dismissals))
	}

	// The dismissed item must now disappear from evaluation.
	items, err := f.service.Evaluate(context.Background(), primary.TriageRequest{
		AnalystID: "analyst-1", PortfolioID: "PF-001", Now: f.now,
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items after dismissal = %v, want none", items)
	}
}

func TestDismissRejectsRedItems(t *testing.T) {
	f, svc := newDismissalFixture(t)

	f.proposals.proposals = []*models.Proposal{
		{ID: "PROP-001", PortfolioID: "PF-001", Ticker: "AMD", Status: models.ProposalStatusPending, SubmittedAt: f.daysAgo(10)},
	}

	_, err := svc.Dismiss(context.Background(), primary.DismissRequest{
		AnalystID:   "analyst-1",
		PortfolioID: "PF-001",
		ItemType:    string(triage.TypeProposalStalled),
		Until:       f.now.AddDate(0, 0, 7),
		Now:         f.now,
	})
	if err == nil {
		t.Fatal("Dismiss() of a red item succeeded, want guard rejection")
	}
	if len(f.dismissals.dismissals) != 0 {
		t.Errorf("persisted %d dismissals after rejection, want 0", len(f.dismissals.dismissals))
	}
}

func TestDismissRejectsMissingItem(t *testing.T) {
	f, svc := newDismissalFixture(t)

	_, err := svc.Dismiss(context.Background(), primary.DismissRequest{
		AnalystID:   "analyst-1",
		PortfolioID: "PF-001",
		ItemType:    string(triage.TypeThesisStale),
		Until:       f.now.AddDate(0, 0, 7),
		Now:         f.now,
	})
	if err == nil {
		t.Error("Dismiss() with no live item succeeded, want error")
	}
}

func TestDismissRejectsBackdatedWindow(t *testing.T) {
	f, svc := newDismissalFixture(t)

	_, err := svc.Dismiss(context.Background(), primary.DismissRequest{
		AnalystID:   "analyst-1",
		PortfolioID: "PF-001",
		ItemType:    string(triage.TypeIdeaNotSimulated),
		Until:       f.daysAgo(1),
		Now:         f.now,
	})
	if err == nil {
		t.Error("Dismiss() with a window ending in the past succeeded, want error")
	}
}

func TestPurge(t *testing.T) {
	f, svc := newDismissalFixture(t)

	f.dismissals.dismissals = []*models.Dismissal{
		{ID: "d-1", AnalystID: "analyst-1", PortfolioID: "PF-001", ItemType: "idea_not_simulated", SuppressedUntil: f.daysAgo(2)},
		{ID: "d-2", AnalystID: "analyst-1", PortfolioID: "PF-001", ItemType: "thesis_stale", SuppressedUntil: f.now.AddDate(0, 0, 3)},
	}

	purged, err := svc.Purge(context.Background(), f.now)
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if purged != 1 {
		t.Errorf("Purge() = %d, want 1", purged)
	}
	if len(f.dismissals.dismissals) != 1 || f.dismissals.dismissals[0].ID != "d-2" {
		t.Errorf("remaining dismissals = %v, want only d-2", f.dismissals.dismissals)
	}
}
