package models

import (
	"database/sql"
	"time"
)

// Decision represents the outcome of a proposal review.
// Outcome can be: approved, rejected
type Decision struct {
	ID         string
	ProposalID string
	Outcome    string
	DecidedAt  time.Time
	Executed   bool
	ExecutedAt sql.NullTime
	CreatedAt  time.Time
}

// Decision outcome constants
const (
	DecisionOutcomeApproved = "approved"
	DecisionOutcomeRejected = "rejected"
)
