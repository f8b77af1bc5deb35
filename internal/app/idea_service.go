package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/ports/secondary"
)

// IdeaServiceImpl implements the IdeaService interface.
type IdeaServiceImpl struct {
	ideaRepo      secondary.IdeaRepository
	portfolioRepo secondary.PortfolioRepository
}

// NewIdeaService creates a new IdeaService with injected dependencies.
func NewIdeaService(ideaRepo secondary.IdeaRepository, portfolioRepo secondary.PortfolioRepository) *IdeaServiceImpl {
	return &IdeaServiceImpl{ideaRepo: ideaRepo, portfolioRepo: portfolioRepo}
}

// CreateIdea opens a new active idea.
func (s *IdeaServiceImpl) CreateIdea(ctx context.Context, req primary.CreateIdeaRequest) (*models.Idea, error) {
	if req.Ticker == "" || req.Title == "" {
		return nil, fmt.Errorf("idea ticker and title are required")
	}
	if _, err := s.portfolioRepo.GetByID(ctx, req.PortfolioID); err != nil {
		return nil, err
	}

	id, err := s.ideaRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}

	idea := &models.Idea{
		ID:          id,
		PortfolioID: req.PortfolioID,
		Ticker:      req.Ticker,
		Title:       req.Title,
		Status:      models.IdeaStatusActive,
	}
	if req.Notes != "" {
		idea.Notes = sql.NullString{String: req.Notes, Valid: true}
	}
	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

// GetIdea retrieves an idea by ID.
func (s *IdeaServiceImpl) GetIdea(ctx context.Context, id string) (*models.Idea, error) {
	return s.ideaRepo.GetByID(ctx, id)
}

// ListIdeas retrieves ideas for a portfolio, optionally only unsimulated.
func (s *IdeaServiceImpl) ListIdeas(ctx context.Context, portfolioID string, onlyUnsimulated bool) ([]*models.Idea, error) {
	return s.ideaRepo.List(ctx, secondary.IdeaFilters{
		PortfolioID:  portfolioID,
		Status:       models.IdeaStatusActive,
		OnlyUnsimmed: onlyUnsimulated,
	})
}

// SimulateIdea records a simulation run for an idea.
func (s *IdeaServiceImpl) SimulateIdea(ctx context.Context, id string) error {
	return s.ideaRepo.MarkSimulated(ctx, id)
}

// CloseIdea closes an active idea.
func (s *IdeaServiceImpl) CloseIdea(ctx context.Context, id string) error {
	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if idea.Status != models.IdeaStatusActive {
		return fmt.Errorf("can only close active ideas (current status: %s)", idea.Status)
	}
	return s.ideaRepo.UpdateStatus(ctx, id, models.IdeaStatusClosed)
}

// Ensure IdeaServiceImpl implements the interface
var _ primary.IdeaService = (*IdeaServiceImpl)(nil)
