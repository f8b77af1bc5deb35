package models

import "time"

// Dismissal is a per-analyst suppression record: items of ItemType for the
// portfolio stay hidden until SuppressedUntil passes. Suppression state is
// external to the triage core by design.
type Dismissal struct {
	ID              string
	AnalystID       string
	PortfolioID     string
	ItemType        string
	SuppressedUntil time.Time
	CreatedAt       time.Time
}
