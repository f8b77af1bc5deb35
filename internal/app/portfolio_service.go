package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/ports/secondary"
)

// PortfolioServiceImpl implements the PortfolioService interface.
type PortfolioServiceImpl struct {
	portfolioRepo secondary.PortfolioRepository
}

// NewPortfolioService creates a new PortfolioService with injected dependencies.
func NewPortfolioService(portfolioRepo secondary.PortfolioRepository) *PortfolioServiceImpl {
	return &PortfolioServiceImpl{portfolioRepo: portfolioRepo}
}

// CreatePortfolio registers a portfolio under an analyst's coverage.
func (s *PortfolioServiceImpl) CreatePortfolio(ctx context.Context, id, name, analystID string) (*models.Portfolio, error) {
	if id == "" || name == "" {
		return nil, fmt.Errorf("portfolio id and name are required")
	}
	portfolio := &models.Portfolio{
		ID:        id,
		Name:      name,
		AnalystID: analystID,
	}
	if err := s.portfolioRepo.Create(ctx, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// GetPortfolio retrieves a portfolio by ID.
func (s *PortfolioServiceImpl) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	return s.portfolioRepo.GetByID(ctx, id)
}

// ListPortfolios retrieves the portfolios covered by an analyst.
func (s *PortfolioServiceImpl) ListPortfolios(ctx context.Context, analystID string) ([]*models.Portfolio, error) {
	return s.portfolioRepo.List(ctx, analystID)
}

// ReviewThesis records a thesis review at the given time.
func (s *PortfolioServiceImpl) ReviewThesis(ctx context.Context, id string, reviewedAt time.Time) error {
	return s.portfolioRepo.TouchThesis(ctx, id, reviewedAt)
}

// SetExpectedReturn updates the expected-value signal.
func (s *PortfolioServiceImpl) SetExpectedReturn(ctx context.Context, id string, expectedReturn float64) error {
	return s.portfolioRepo.SetExpectedReturn(ctx, id, expectedReturn)
}

// Ensure PortfolioServiceImpl implements the interface
var _ primary.PortfolioService = (*PortfolioServiceImpl)(nil)
