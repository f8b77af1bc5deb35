package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/example/deskflow/internal/adapters/sqlite"
	"github.com/example/deskflow/internal/models"
)

func TestDecisionRepository_ListUnexecuted(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDecisionRepository(db, nil)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	seedPortfolio(t, db, "PF-001", "Tech")
	seedPortfolio(t, db, "PF-002", "Energy")
	seedProposal(t, db, "PROP-001", "PF-001", now.AddDate(0, 0, -10))
	seedProposal(t, db, "PROP-002", "PF-001", now.AddDate(0, 0, -8))
	seedProposal(t, db, "PROP-003", "PF-002", now.AddDate(0, 0, -6))

	decisions := []*models.Decision{
		{ID: "DEC-001", ProposalID: "PROP-001", Outcome: models.DecisionOutcomeApproved, DecidedAt: now.AddDate(0, 0, -5)},
		{ID: "DEC-002", ProposalID: "PROP-002", Outcome: models.DecisionOutcomeRejected, DecidedAt: now.AddDate(0, 0, -4)},
		{ID: "DEC-003", ProposalID: "PROP-003", Outcome: models.DecisionOutcomeApproved, DecidedAt: now.AddDate(0, 0, -3)},
	}
	for _, d := range decisions {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create(%s) failed: %v", d.ID, err)
		}
	}

	t.Run("returns approved unexecuted decisions for the portfolio", func(t *testing.T) {
		got, err := repo.ListUnexecuted(ctx, "PF-001")
		if err != nil {
			t.Fatalf("ListUnexecuted failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "DEC-001" {
			t.Errorf("got %v, want only DEC-001 (rejected and other-portfolio excluded)", got)
		}
	})

	t.Run("executed decisions drop out", func(t *testing.T) {
		if err := repo.MarkExecuted(ctx, "DEC-001", now); err != nil {
			t.Fatalf("MarkExecuted failed: %v", err)
		}
		got, err := repo.ListUnexecuted(ctx, "PF-001")
		if err != nil {
			t.Fatalf("ListUnexecuted failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want none after execution", got)
		}
	})
}

func TestDecisionRepository_CountExecuted(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDecisionRepository(db, nil)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	seedPortfolio(t, db, "PF-001", "")
	seedProposal(t, db, "PROP-001", "PF-001", now.AddDate(0, 0, -10))

	count, err := repo.CountExecuted(ctx, "PF-001")
	if err != nil {
		t.Fatalf("CountExecuted failed: %v", err)
	}
	if count != 0 {
		t.Errorf("CountExecuted = %d, want 0", count)
	}

	d := &models.Decision{ID: "DEC-001", ProposalID: "PROP-001", Outcome: models.DecisionOutcomeApproved, DecidedAt: now.AddDate(0, 0, -2)}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.MarkExecuted(ctx, "DEC-001", now); err != nil {
		t.Fatalf("MarkExecuted failed: %v", err)
	}

	count, err = repo.CountExecuted(ctx, "PF-001")
	if err != nil {
		t.Fatalf("CountExecuted failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountExecuted = %d, want 1", count)
	}
}

func TestDecisionRepository_MarkExecuted(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDecisionRepository(db, nil)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	seedPortfolio(t, db, "PF-001", "")
	seedProposal(t, db, "PROP-001", "PF-001", now.AddDate(0, 0, -10))

	t.Run("rejected decisions cannot be executed", func(t *testing.T) {
		d := &models.Decision{ID: "DEC-001", ProposalID: "PROP-001", Outcome: models.DecisionOutcomeRejected, DecidedAt: now.AddDate(0, 0, -2)}
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := repo.MarkExecuted(ctx, "DEC-001", now); err == nil {
			t.Fatal("Expected error executing a rejected decision, got nil")
		}
	})

	t.Run("unknown decision errors", func(t *testing.T) {
		if err := repo.MarkExecuted(ctx, "DEC-404", now); err == nil {
			t.Fatal("Expected error for unknown decision, got nil")
		}
	})

	t.Run("records the execution timestamp", func(t *testing.T) {
		d := &models.Decision{ID: "DEC-002", ProposalID: "PROP-001", Outcome: models.DecisionOutcomeApproved, DecidedAt: now.AddDate(0, 0, -1)}
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := repo.MarkExecuted(ctx, "DEC-002", now); err != nil {
			t.Fatalf("MarkExecuted failed: %v", err)
		}

		got, err := repo.GetByID(ctx, "DEC-002")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if !got.Executed || !got.ExecutedAt.Valid {
			t.Errorf("decision not marked executed: %+v", got)
		}
	})
}
