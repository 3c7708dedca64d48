package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onewave/route-compass/internal/models"
)

type analyzerFixture struct {
	userRepo     *fakeUserRepo
	routeRepo    *fakeRouteRepo
	analysisRepo *fakeAnalysisRepo
	insight      *fakeInsightService
	analyzer     AnalyzerService
	userID       uuid.UUID
}

func newAnalyzerFixture(t *testing.T) *analyzerFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	routeRepo := &fakeRouteRepo{routes: sampleRoutes()}
	analysisRepo := &fakeAnalysisRepo{}
	insight := &fakeInsightService{}

	userID := uuid.New()
	profile := sampleProfile()
	profile.UserID = userID
	require.NoError(t, userRepo.CreateDetails(profile))

	return &analyzerFixture{
		userRepo:     userRepo,
		routeRepo:    routeRepo,
		analysisRepo: analysisRepo,
		insight:      insight,
		analyzer:     NewAnalyzerService(userRepo, routeRepo, analysisRepo, NewMatcherService(), insight, 5*time.Second, 3),
		userID:       userID,
	}
}

func TestRequestAnalysis_ComputesAndPersists(t *testing.T) {
	f := newAnalyzerFixture(t)

	result, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, f.userID, result.UserID)
	assert.NotEmpty(t, result.InsightReason)
	require.Len(t, result.MatchedRoutes, 3)

	best := result.BestMatch()
	require.NotNil(t, best)
	assert.Equal(t, uint(3), best.RouteID)
	assert.Equal(t, 87, best.Similarity)

	// Ranks follow descending similarity.
	assert.Equal(t, 1, result.MatchedRoutes[0].MatchRank)
	assert.Equal(t, 2, result.MatchedRoutes[1].MatchRank)
	assert.Equal(t, 3, result.MatchedRoutes[2].MatchRank)
	assert.GreaterOrEqual(t, result.MatchedRoutes[0].Similarity, result.MatchedRoutes[1].Similarity)
	assert.GreaterOrEqual(t, result.MatchedRoutes[1].Similarity, result.MatchedRoutes[2].Similarity)

	assert.Equal(t, 1, f.analysisRepo.count())
	assert.Equal(t, 1, f.insight.callCount())
}

func TestRequestAnalysis_SecondCallHitsCache(t *testing.T) {
	f := newAnalyzerFixture(t)

	first, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	require.NoError(t, err)

	second, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.analysisRepo.count())
	assert.Equal(t, 1, f.insight.callCount(), "cache hit must not call the model again")
}

func TestRequestAnalysis_RecomputesAfterInvalidate(t *testing.T) {
	f := newAnalyzerFixture(t)

	first, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	require.NoError(t, err)

	require.NoError(t, f.analyzer.Invalidate(f.userID))
	assert.Equal(t, 0, f.analysisRepo.count())

	second, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, f.analysisRepo.count())
	assert.Equal(t, 2, f.insight.callCount())
}

func TestRequestAnalysis_NoProfile(t *testing.T) {
	f := newAnalyzerFixture(t)

	_, err := f.analyzer.RequestAnalysis(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, 0, f.analysisRepo.count())
}

func TestRequestAnalysis_IncompleteProfile(t *testing.T) {
	f := newAnalyzerFixture(t)

	userID := uuid.New()
	require.NoError(t, f.userRepo.CreateDetails(&models.UserDetails{UserID: userID, Job: models.JobFrontend}))

	_, err := f.analyzer.RequestAnalysis(context.Background(), userID)
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestRequestAnalysis_NoRoutes(t *testing.T) {
	f := newAnalyzerFixture(t)
	f.routeRepo.routes = nil

	_, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrNoRoutes)
}

func TestRequestAnalysis_NoEligibleMatch(t *testing.T) {
	f := newAnalyzerFixture(t)
	f.routeRepo.routes = []models.Route{
		{ID: 4, Job: models.JobBackend, Background: models.BackgroundNonMajor, FinalCompanySize: models.SizeStartup, Skills: "java,spring"},
	}

	_, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrNoEligibleMatch)
	assert.Equal(t, 0, f.analysisRepo.count())
}

func TestRequestAnalysis_InsightFailureLeavesNothingBehind(t *testing.T) {
	f := newAnalyzerFixture(t)
	f.insight.err = fmt.Errorf("%w: model overloaded", ErrInsightGeneration)

	_, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrInsightGeneration)
	assert.Equal(t, 0, f.analysisRepo.count(), "failed generation must not persist a result")

	// A retry after the model recovers succeeds from scratch.
	f.insight.mu.Lock()
	f.insight.err = nil
	f.insight.mu.Unlock()

	result, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.analysisRepo.count())
	assert.NotNil(t, result.BestMatch())
}

func TestRequestAnalysis_ConcurrentFirstRequestsComputeOnce(t *testing.T) {
	f := newAnalyzerFixture(t)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]*models.AnalysisResult, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.analyzer.RequestAnalysis(context.Background(), f.userID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].ID, results[i].ID)
	}
	assert.Equal(t, 1, f.analysisRepo.count(), "concurrent requests must persist exactly one result")
	assert.Equal(t, 1, f.insight.callCount(), "concurrent requests must generate exactly one insight")
}

func TestGetLatest(t *testing.T) {
	f := newAnalyzerFixture(t)

	_, err := f.analyzer.GetLatest(f.userID)
	assert.ErrorIs(t, err, ErrAnalysisNotFound)

	created, err := f.analyzer.RequestAnalysis(context.Background(), f.userID)
	require.NoError(t, err)

	latest, err := f.analyzer.GetLatest(f.userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, latest.ID)
}

func TestHistory_Pagination(t *testing.T) {
	f := newAnalyzerFixture(t)

	// Three analyses for the same user, oldest first.
	base := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, f.analysisRepo.Create(&models.AnalysisResult{
			ID:        uuid.New(),
			UserID:    f.userID,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			MatchedRoutes: []models.AnalysisMatchedRoute{
				{RouteID: uint(i + 1), Similarity: 80 + i, MatchRank: 1},
			},
		}))
	}

	page, err := f.analyzer.History(f.userID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, uint(3), page.Items[0].TopRouteID, "newest analysis comes first")

	second, err := f.analyzer.History(f.userID, 1, 2)
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, uint(1), second.Items[0].TopRouteID)

	empty, err := f.analyzer.History(f.userID, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, int64(3), empty.TotalCount)
}

func TestHistory_ClampsPageArguments(t *testing.T) {
	f := newAnalyzerFixture(t)

	page, err := f.analyzer.History(f.userID, -3, 500)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 5, page.Size)
}
