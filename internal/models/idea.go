package models

import (
	"database/sql"
	"time"
)

// Idea represents a trade idea in the workflow ledger.
// Status can be: active, closed
type Idea struct {
	ID          string
	PortfolioID string
	Ticker      string
	Title       string
	Notes       sql.NullString
	Status      string
	Simulated   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Idea status constants
const (
	IdeaStatusActive = "active"
	IdeaStatusClosed = "closed"
)
