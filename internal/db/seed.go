package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures that
// exercise every trigger: a stalled proposal, an unexecuted approval,
// unsimulated ideas, a stale thesis, and a fresh rating change.
func SeedFixtures(database *sql.DB) error {
	now := time.Now()

	portfolios := []struct {
		id, name, analyst string
		thesisAge         int // days ago, 0 = today
		expectedReturn    float64
	}{
		{"PF-001", "Global Tech", "analyst-1", 200, 0.22},
		{"PF-002", "Asia Growth", "analyst-1", 30, 0.05},
	}
	for _, p := range portfolios {
		thesisAt := now.AddDate(0, 0, -p.thesisAge).Format(time.RFC3339)
		if _, err := database.Exec(
			"INSERT INTO portfolios (id, name, analyst_id, thesis_updated_at, expected_return) VALUES (?, ?, ?, ?, ?)",
			p.id, p.name, p.analyst, thesisAt, p.expectedReturn,
		); err != nil {
			return fmt.Errorf("seed portfolios: %w", err)
		}
	}

	ideas := []struct {
		id, portfolio, ticker, title string
		daysOld                      int
		simulated                    bool
	}{
		{"IDEA-001", "PF-001", "NVDA", "Datacenter capex supercycle", 12, false},
		{"IDEA-002", "PF-001", "AMD", "Share gains in server CPUs", 5, true},
		{"IDEA-003", "PF-002", "TSM", "Leading-edge pricing power", 3, false},
	}
	for _, i := range ideas {
		created := now.AddDate(0, 0, -i.daysOld).Format(time.RFC3339)
		simulated := 0
		if i.simulated {
			simulated = 1
		}
		if _, err := database.Exec(
			"INSERT INTO ideas (id, portfolio_id, ticker, title, status, simulated, created_at) VALUES (?, ?, ?, ?, 'active', ?, ?)",
			i.id, i.portfolio, i.ticker, i.title, simulated, created,
		); err != nil {
			return fmt.Errorf("seed ideas: %w", err)
		}
	}

	// A proposal pending past the stalled threshold
	submitted := now.AddDate(0, 0, -7).Format(time.RFC3339)
	if _, err := database.Exec(
		"INSERT INTO proposals (id, idea_id, portfolio_id, ticker, status, submitted_at) VALUES ('PROP-001', 'IDEA-002', 'PF-001', 'AMD', 'pending', ?)",
		submitted,
	); err != nil {
		return fmt.Errorf("seed proposals: %w", err)
	}

	// An approved decision with no confirmed execution
	decided := now.AddDate(0, 0, -4).Format(time.RFC3339)
	if _, err := database.Exec(
		"INSERT INTO proposals (id, portfolio_id, ticker, status, submitted_at, decided_at) VALUES ('PROP-002', 'PF-002', 'TSM', 'decided', ?, ?)",
		now.AddDate(0, 0, -10).Format(time.RFC3339), decided,
	); err != nil {
		return fmt.Errorf("seed proposals: %w", err)
	}
	if _, err := database.Exec(
		"INSERT INTO decisions (id, proposal_id, outcome, decided_at, executed) VALUES ('DEC-001', 'PROP-002', 'approved', ?, 0)",
		decided,
	); err != nil {
		return fmt.Errorf("seed decisions: %w", err)
	}

	// A rating change inside the follow-up window
	changed := now.AddDate(0, 0, -2).Format(time.RFC3339)
	if _, err := database.Exec(
		"INSERT INTO rating_changes (id, portfolio_id, ticker, old_rating, new_rating, changed_at) VALUES ('RC-001', 'PF-002', 'TSM', 'hold', 'buy', ?)",
		changed,
	); err != nil {
		return fmt.Errorf("seed rating changes: %w", err)
	}

	return nil
}
