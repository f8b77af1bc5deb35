package models

import (
	"database/sql"
	"time"
)

// Proposal represents a trade proposal submitted for decision.
// Status can be: pending, decided, withdrawn
type Proposal struct {
	ID          string
	IdeaID      sql.NullString
	PortfolioID string
	Ticker      string
	Status      string
	SubmittedAt time.Time
	DecidedAt   sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Proposal status constants
const (
	ProposalStatusPending   = "pending"
	ProposalStatusDecided   = "decided"
	ProposalStatusWithdrawn = "withdrawn"
)
