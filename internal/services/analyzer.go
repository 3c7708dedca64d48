package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"onewave/route-compass/internal/models"
	"onewave/route-compass/internal/repositories"
)

type AnalyzerService interface {
	// RequestAnalysis returns the user's cached analysis if one exists,
	// otherwise computes a fresh one: match the profile against all routes,
	// generate an insight for the best match, persist exactly once.
	RequestAnalysis(ctx context.Context, userID uuid.UUID) (*models.AnalysisResult, error)
	// GetLatest returns the cached result without ever triggering a
	// computation.
	GetLatest(userID uuid.UUID) (*models.AnalysisResult, error)
	// Invalidate drops all of the user's analysis results, forcing the next
	// request to recompute. Called when the profile changes.
	Invalidate(userID uuid.UUID) error
	// History returns one page of past analyses, newest first.
	History(userID uuid.UUID, page, size int) (*models.PageResponse[models.AnalysisHistoryItem], error)
}

type analyzerService struct {
	userRepo       repositories.UserRepository
	routeRepo      repositories.RouteRepository
	analysisRepo   repositories.AnalysisRepository
	matcher        MatcherService
	insight        InsightService
	insightTimeout time.Duration
	topMatches     int

	// Collapses concurrent first-time requests for the same user into one
	// computation, so check-then-act on the cache cannot double-persist.
	group singleflight.Group
}

func NewAnalyzerService(
	userRepo repositories.UserRepository,
	routeRepo repositories.RouteRepository,
	analysisRepo repositories.AnalysisRepository,
	matcher MatcherService,
	insight InsightService,
	insightTimeout time.Duration,
	topMatches int,
) AnalyzerService {
	if topMatches < 1 {
		topMatches = 1
	}
	return &analyzerService{
		userRepo:       userRepo,
		routeRepo:      routeRepo,
		analysisRepo:   analysisRepo,
		matcher:        matcher,
		insight:        insight,
		insightTimeout: insightTimeout,
		topMatches:     topMatches,
	}
}

// RequestAnalysis implements AnalyzerService.
func (s *analyzerService) RequestAnalysis(ctx context.Context, userID uuid.UUID) (*models.AnalysisResult, error) {
	cached, err := s.analysisRepo.FindLatestByUser(userID)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		log.Printf("📦 Returning cached analysis %s for user %s\n", cached.ID, userID)
		return cached, nil
	}

	value, err, _ := s.group.Do(userID.String(), func() (interface{}, error) {
		return s.computeAndStore(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.AnalysisResult), nil
}

func (s *analyzerService) computeAndStore(ctx context.Context, userID uuid.UUID) (*models.AnalysisResult, error) {
	// A request that lost the singleflight race re-enters here after the
	// winner stored its result; the cache check keeps it from recomputing.
	cached, err := s.analysisRepo.FindLatestByUser(userID)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	details, err := s.userRepo.FindDetailsByUser(userID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, ErrProfileNotFound
	}
	if details.Job == "" || details.Background == "" {
		return nil, ErrProfileIncomplete
	}

	routes, err := s.routeRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	matches := s.matcher.TopMatches(details, routes, s.topMatches)
	if len(matches) == 0 {
		return nil, ErrNoEligibleMatch
	}

	routesByID := make(map[uint]*models.Route, len(routes))
	for i := range routes {
		routesByID[routes[i].ID] = &routes[i]
	}

	best := matches[0]
	bestRoute, ok := routesByID[best.RouteID]
	if !ok {
		return nil, fmt.Errorf("matched route %d missing from candidate set", best.RouteID)
	}
	log.Printf("🎯 Best match for user %s: route %d (similarity %d)\n", userID, best.RouteID, best.Similarity)

	insightCtx, cancel := context.WithTimeout(ctx, s.insightTimeout)
	defer cancel()

	insight, err := s.insight.GenerateInsight(insightCtx, details, bestRoute, best.Similarity)
	if err != nil {
		// Nothing was persisted; a retry of the whole request recomputes.
		return nil, err
	}

	result := &models.AnalysisResult{
		ID:                     uuid.New(),
		UserID:                 userID,
		InsightReason:          insight.Reason,
		InsightStrengths:       models.JoinInsightList(insight.Strengths),
		InsightWeaknesses:      models.JoinInsightList(insight.Weaknesses),
		InsightRecommendations: models.JoinInsightList(insight.Recommendations),
		CreatedAt:              time.Now(),
	}
	for i, match := range matches {
		route := routesByID[match.RouteID]
		result.MatchedRoutes = append(result.MatchedRoutes, models.AnalysisMatchedRoute{
			RouteID:          match.RouteID,
			Similarity:       match.Similarity,
			MatchRank:        i + 1,
			Summary:          route.Summary,
			Job:              route.Job,
			FinalCompanySize: route.FinalCompanySize,
		})
	}

	if err := s.analysisRepo.Create(result); err != nil {
		return nil, err
	}

	log.Printf("💾 Stored analysis %s for user %s\n", result.ID, userID)
	return result, nil
}

// GetLatest implements AnalyzerService.
func (s *analyzerService) GetLatest(userID uuid.UUID) (*models.AnalysisResult, error) {
	result, err := s.analysisRepo.FindLatestByUser(userID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrAnalysisNotFound
	}
	return result, nil
}

// Invalidate implements AnalyzerService.
func (s *analyzerService) Invalidate(userID uuid.UUID) error {
	if err := s.analysisRepo.DeleteAllByUser(userID); err != nil {
		return err
	}
	log.Printf("🧹 Invalidated analysis results for user %s\n", userID)
	return nil
}

// History implements AnalyzerService.
func (s *analyzerService) History(userID uuid.UUID, page, size int) (*models.PageResponse[models.AnalysisHistoryItem], error) {
	if page < 0 {
		page = 0
	}
	if size < 1 || size > 50 {
		size = 5
	}

	results, total, err := s.analysisRepo.FindPageByUser(userID, page, size)
	if err != nil {
		return nil, err
	}

	items := make([]models.AnalysisHistoryItem, 0, len(results))
	for i := range results {
		item := models.AnalysisHistoryItem{
			AnalysisID: results[i].ID.String(),
			AnalyzedAt: results[i].CreatedAt,
		}
		if best := results[i].BestMatch(); best != nil {
			item.TopRouteID = best.RouteID
			item.TopSimilarity = best.Similarity
			item.TopSummary = best.Summary
		}
		items = append(items, item)
	}

	return &models.PageResponse[models.AnalysisHistoryItem]{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalCount: total,
	}, nil
}
