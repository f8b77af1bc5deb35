package models

import "time"

// RatingChange records a rating move on a covered ticker.
type RatingChange struct {
	ID          string
	PortfolioID string
	Ticker      string
	OldRating   string
	NewRating   string
	ChangedAt   time.Time
	CreatedAt   time.Time
}
