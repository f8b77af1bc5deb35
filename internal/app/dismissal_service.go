package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/deskflow/internal/core/triage"
	"github.com/example/deskflow/internal/models"
	"github.com/example/deskflow/internal/ports/primary"
	"github.com/example/deskflow/internal/ports/secondary"
)

// DismissalServiceImpl implements the DismissalService interface.
// It re-evaluates the portfolio at dismissal time so that the core dismiss
// guard decides against the item as it currently exists, not as the caller
// remembers it.
type DismissalServiceImpl struct {
	dismissalRepo secondary.DismissalRepository
	triageService primary.TriageService
}

// NewDismissalService creates a new DismissalService with injected dependencies.
func NewDismissalService(dismissalRepo secondary.DismissalRepository, triageService primary.TriageService) *DismissalServiceImpl {
	return &DismissalServiceImpl{
		dismissalRepo: dismissalRepo,
		triageService: triageService,
	}
}

// Dismiss suppresses items of the given type until the window passes.
func (s *DismissalServiceImpl) Dismiss(ctx context.Context, req primary.DismissRequest) (*models.Dismissal, error) {
	if !req.Until.After(req.Now) {
		return nil, fmt.Errorf("suppression window must end after the evaluation time")
	}

	item, err := s.findItem(ctx, req)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("no active %s item for portfolio %s", req.ItemType, req.PortfolioID)
	}
	if guard := triage.CanDismissItem(*item); !guard.Allowed {
		return nil, guard.Error()
	}

	dismissal := &models.Dismissal{
		AnalystID:       req.AnalystID,
		PortfolioID:     req.PortfolioID,
		ItemType:        req.ItemType,
		SuppressedUntil: req.Until,
	}
	if err := s.dismissalRepo.Create(ctx, dismissal); err != nil {
		return nil, fmt.Errorf("failed to create dismissal: %w", err)
	}
	return dismissal, nil
}

// ListActive retrieves the analyst's active dismissals for a portfolio.
func (s *DismissalServiceImpl) ListActive(ctx context.Context, analystID, portfolioID string, now time.Time) ([]*models.Dismissal, error) {
	return s.dismissalRepo.ListActive(ctx, analystID, portfolioID, now)
}

// Purge removes expired dismissals and returns how many were removed.
func (s *DismissalServiceImpl) Purge(ctx context.Context, now time.Time) (int, error) {
	return s.dismissalRepo.Purge(ctx, now)
}

// findItem locates the live item of the requested type, bypassing the
// suppression filter so repeat dismissals extend an existing window.
func (s *DismissalServiceImpl) findItem(ctx context.Context, req primary.DismissRequest) (*triage.Item, error) {
	items, err := s.triageService.Evaluate(ctx, primary.TriageRequest{
		AnalystID:         req.AnalystID,
		PortfolioID:       req.PortfolioID,
		Now:               req.Now,
		IncludeSuppressed: true,
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		if string(items[i].Type) == req.ItemType {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Ensure DismissalServiceImpl implements the interface
var _ primary.DismissalService = (*DismissalServiceImpl)(nil)
