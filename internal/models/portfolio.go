package models

import (
	"database/sql"
	"time"
)

// Portfolio represents one portfolio under an analyst's coverage.
type Portfolio struct {
	ID              string
	Name            string
	AnalystID       string
	ThesisUpdatedAt sql.NullTime
	ExpectedReturn  sql.NullFloat64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
