package handlers

import (
	"github.com/gofiber/fiber/v2"

	"onewave/route-compass/internal/middleware"
	"onewave/route-compass/internal/models"
	"onewave/route-compass/internal/services"
)

type AnalysisHandler struct {
	analyzerService services.AnalyzerService
}

func NewAnalysisHandler(analyzerService services.AnalyzerService) *AnalysisHandler {
	return &AnalysisHandler{analyzerService: analyzerService}
}

// HandleRequestAnalysis handles POST /analysis. Returns the cached result if
// one exists; otherwise runs the full matching + insight pipeline.
func (h *AnalysisHandler) HandleRequestAnalysis(c *fiber.Ctx) error {
	result, err := h.analyzerService.RequestAnalysis(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toAnalysisResponse(result))
}

// HandleGetLatest handles GET /analysis/latest. Read-only: never computes.
func (h *AnalysisHandler) HandleGetLatest(c *fiber.Ctx) error {
	result, err := h.analyzerService.GetLatest(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toAnalysisResponse(result))
}

// HandleGetHistory handles GET /analysis?page=0&size=5
func (h *AnalysisHandler) HandleGetHistory(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 5)

	response, err := h.analyzerService.History(middleware.UserID(c), page, size)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(response)
}

func toAnalysisResponse(result *models.AnalysisResult) models.AnalysisResponse {
	response := models.AnalysisResponse{
		AnalysisID:      result.ID.String(),
		Reason:          result.InsightReason,
		Strengths:       result.StrengthsList(),
		Weaknesses:      result.WeaknessesList(),
		Recommendations: result.RecommendationsList(),
		AnalyzedAt:      result.CreatedAt,
	}

	for _, match := range result.MatchedRoutes {
		response.MatchedRoutes = append(response.MatchedRoutes, models.MatchedRouteResponse{
			RouteID:          match.RouteID,
			Similarity:       match.Similarity,
			Rank:             match.MatchRank,
			Summary:          match.Summary,
			Job:              string(match.Job),
			FinalCompanySize: string(match.FinalCompanySize),
		})
	}

	if best := result.BestMatch(); best != nil {
		response.MatchedRouteID = best.RouteID
		response.Similarity = best.Similarity
	}

	return response
}
