// Package wire provides dependency injection for the deskflow application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/deskflow/internal/adapters/sqlite"
	"github.com/example/deskflow/internal/app"
	"github.com/example/deskflow/internal/config"
	"github.com/example/deskflow/internal/db"
	"github.com/example/deskflow/internal/ports/primary"
)

var (
	portfolioService primary.PortfolioService
	ideaService      primary.IdeaService
	proposalService  primary.ProposalService
	ratingService    primary.RatingService
	triageService    primary.TriageService
	summaryService   primary.SummaryService
	dismissalService primary.DismissalService
	once             sync.Once
)

// PortfolioService returns the singleton PortfolioService instance.
func PortfolioService() primary.PortfolioService {
	once.Do(initServices)
	return portfolioService
}

// IdeaService returns the singleton IdeaService instance.
func IdeaService() primary.IdeaService {
	once.Do(initServices)
	return ideaService
}

// ProposalService returns the singleton ProposalService instance.
func ProposalService() primary.ProposalService {
	once.Do(initServices)
	return proposalService
}

// RatingService returns the singleton RatingService instance.
func RatingService() primary.RatingService {
	once.Do(initServices)
	return ratingService
}

// TriageService returns the singleton TriageService instance.
func TriageService() primary.TriageService {
	once.Do(initServices)
	return triageService
}

// SummaryService returns the singleton SummaryService instance.
func SummaryService() primary.SummaryService {
	once.Do(initServices)
	return summaryService
}

// DismissalService returns the singleton DismissalService instance.
func DismissalService() primary.DismissalService {
	once.Do(initServices)
	return dismissalService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}
	policy, err := config.LoadPolicy(cwd)
	if err != nil {
		log.Fatalf("failed to load policy: %v", err)
	}

	// Audit log writer shared by all repositories
	logWriter := sqlite.NewLogWriterAdapter(database)

	// Repository adapters (secondary ports) with injected DB
	portfolioRepo := sqlite.NewPortfolioRepository(database, logWriter)
	ideaRepo := sqlite.NewIdeaRepository(database, logWriter)
	proposalRepo := sqlite.NewProposalRepository(database, logWriter)
	decisionRepo := sqlite.NewDecisionRepository(database, logWriter)
	ratingRepo := sqlite.NewRatingChangeRepository(database, logWriter)
	dismissalRepo := sqlite.NewDismissalRepository(database, logWriter)

	// Services (primary port implementations)
	portfolioService = app.NewPortfolioService(portfolioRepo)
	ideaService = app.NewIdeaService(ideaRepo, portfolioRepo)
	proposalService = app.NewProposalService(proposalRepo, decisionRepo, ideaRepo, portfolioRepo)
	ratingService = app.NewRatingService(ratingRepo, portfolioRepo)
	triageService = app.NewTriageService(portfolioRepo, ideaRepo, proposalRepo, decisionRepo, ratingRepo, dismissalRepo, policy)
	summaryService = app.NewSummaryService(portfolioRepo, ideaRepo, proposalRepo, decisionRepo, policy.StalledDaysThreshold)
	dismissalService = app.NewDismissalService(dismissalRepo, triageService)
}
