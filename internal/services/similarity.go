package services

import (
	"math"
	"sort"
	"strings"

	"onewave/route-compass/internal/models"
)

// MatchResult pairs a route with its integer similarity score in [0,100].
type MatchResult struct {
	RouteID    uint
	Similarity int
}

type MatcherService interface {
	// FindBestMatch returns the highest-scoring route for the profile, or
	// false when no route shares the profile's job category. Ties on the
	// maximum score resolve to the lowest route ID.
	FindBestMatch(profile *models.UserDetails, routes []models.Route) (MatchResult, bool)
	// TopMatches returns up to limit results ordered by similarity
	// descending, route ID ascending.
	TopMatches(profile *models.UserDetails, routes []models.Route, limit int) []MatchResult
	// Calculate scores the profile against a single route using a vocabulary
	// built from just that pair. Job mismatch scores 0.
	Calculate(profile *models.UserDetails, route *models.Route) int
}

type matcherService struct{}

func NewMatcherService() MatcherService {
	return &matcherService{}
}

// FindBestMatch implements MatcherService.
func (m *matcherService) FindBestMatch(profile *models.UserDetails, routes []models.Route) (MatchResult, bool) {
	matches := m.TopMatches(profile, routes, 1)
	if len(matches) == 0 {
		return MatchResult{}, false
	}
	return matches[0], true
}

// TopMatches implements MatcherService.
func (m *matcherService) TopMatches(profile *models.UserDetails, routes []models.Route, limit int) []MatchResult {
	filtered := filterByJob(profile, routes)
	if len(filtered) == 0 {
		return nil
	}

	// Iteration order decides tie-breaks, so pin it to route ID.
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ID < filtered[j].ID
	})

	vocabulary := BuildSkillVocabulary(profile, filtered)
	profileVector := ProfileVector(profile, vocabulary)

	matches := make([]MatchResult, 0, len(filtered))
	for i := range filtered {
		routeVector := RouteVector(&filtered[i], vocabulary)
		cosine := CosineSimilarity(profileVector, routeVector)
		matches = append(matches, MatchResult{
			RouteID:    filtered[i].ID,
			Similarity: similarityScore(cosine),
		})
	}

	// Stable keeps the ID ordering within equal scores, so the lowest route
	// ID wins a tie deterministically.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Calculate implements MatcherService.
func (m *matcherService) Calculate(profile *models.UserDetails, route *models.Route) int {
	if !strings.EqualFold(string(profile.Job), string(route.Job)) {
		return 0
	}

	pair := []models.Route{*route}
	vocabulary := BuildSkillVocabulary(profile, pair)
	profileVector := ProfileVector(profile, vocabulary)
	routeVector := RouteVector(route, vocabulary)

	return similarityScore(CosineSimilarity(profileVector, routeVector))
}

// CosineSimilarity computes dot(A,B) / (‖A‖·‖B‖), clamped to [0,1]. A zero
// vector yields 0 rather than an error: a degenerate encoding matches nothing.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denominator := math.Sqrt(normA) * math.Sqrt(normB)
	if denominator == 0.0 {
		return 0.0
	}

	return math.Max(0.0, math.Min(1.0, dot/denominator))
}

// similarityScore converts a cosine in [0,1] to an integer score in [0,100],
// rounding halves away from zero.
func similarityScore(cosine float64) int {
	return int(math.Round(cosine * 100))
}

func filterByJob(profile *models.UserDetails, routes []models.Route) []models.Route {
	var filtered []models.Route
	for i := range routes {
		if strings.EqualFold(string(routes[i].Job), string(profile.Job)) {
			filtered = append(filtered, routes[i])
		}
	}
	return filtered
}
