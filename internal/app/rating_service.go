package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/ports/secondary"
)

// RatingServiceImpl implements the RatingService interface.
type RatingServiceImpl struct {
	ratingRepo    secondary.RatingChangeRepository
	portfolioRepo secondary.PortfolioRepository
}

// NewRatingService creates a new RatingService with injected dependencies.
func NewRatingService(ratingRepo secondary.RatingChangeRepository, portfolioRepo secondary.PortfolioRepository) *RatingServiceImpl {
	return &RatingServiceImpl{ratingRepo: ratingRepo, portfolioRepo: portfolioRepo}
}

// RecordChange persists a rating change on a covered ticker.
func (s *RatingServiceImpl) RecordChange(ctx context.Context, req primary.RecordRatingRequest) (*models.RatingChange, error) {
	if req.Ticker == "" || req.NewRating == "" {
		return nil, fmt.Errorf("rating change ticker and new rating are required")
	}
	if _, err := s.portfolioRepo.GetByID(ctx, req.PortfolioID); err != nil {
		return nil, err
	}

	change := &models.RatingChange{
		PortfolioID: req.PortfolioID,
		Ticker:      req.Ticker,
		OldRating:   req.OldRating,
		NewRating:   req.NewRating,
		ChangedAt:   req.ChangedAt,
	}
	if err := s.ratingRepo.Create(ctx, change); err != nil {
		return nil, err
	}
	return change, nil
}

// ListRecent retrieves rating changes inside the lookback window.
func (s *RatingServiceImpl) ListRecent(ctx context.Context, portfolioID string, cutoff time.Time) ([]*models.RatingChange, error) {
	return s.ratingRepo.ListSince(ctx, portfolioID, cutoff)
}

// Ensure RatingServiceImpl implements the interface
var _ primary.RatingService = (*RatingServiceImpl)(nil)
