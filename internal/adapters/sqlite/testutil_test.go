// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup goes through db.GetSchemaSQL() so tests run against
// the authoritative schema instead of drifting copies.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/deskflow/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPortfolio inserts a test portfolio and returns its ID.
func seedPortfolio(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "PF-001"
	}
	if name == "" {
		name = "Test Portfolio"
	}
	_, err := db.Exec("INSERT INTO portfolios (id, name, analyst_id) VALUES (?, ?, 'analyst-1')", id, name)
	if err != nil {
		t.Fatalf("failed to seed portfolio: %v", err)
	}
	return id
}

// seedProposal inserts a pending test proposal and returns its ID.
func seedProposal(t *testing.T, db *sql.DB, id, portfolioID string, submittedAt time.Time) string {
	t.Helper()
	if id == "" {
		id = "PROP-001"
	}
	if portfolioID == "" {
		portfolioID = "PF-001"
	}
	_, err := db.Exec(
		"INSERT INTO proposals (id, portfolio_id, ticker, status, submitted_at) VALUES (?, ?, 'NVDA', 'pending', ?)",
		id, portfolioID, submittedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed proposal: %v", err)
	}
	return id
}
