package services

import (
	"onewave/route-compass/internal/models"
	"onewave/route-compass/internal/repositories"
)

type RouteService interface {
	// GetRoutes lists success routes, optionally filtered by job and
	// background. Empty filter values match everything.
	GetRoutes(job, background string) ([]models.RouteResponse, error)
	GetRoute(id uint) (*models.RouteResponse, error)
}

type routeService struct {
	routeRepo repositories.RouteRepository
}

func NewRouteService(routeRepo repositories.RouteRepository) RouteService {
	return &routeService{routeRepo: routeRepo}
}

// GetRoutes implements RouteService.
func (s *routeService) GetRoutes(job, background string) ([]models.RouteResponse, error) {
	routes, err := s.routeRepo.FindFiltered(job, background)
	if err != nil {
		return nil, err
	}

	responses := make([]models.RouteResponse, 0, len(routes))
	for i := range routes {
		responses = append(responses, toRouteResponse(&routes[i]))
	}
	return responses, nil
}

// GetRoute implements RouteService.
func (s *routeService) GetRoute(id uint) (*models.RouteResponse, error) {
	route, err := s.routeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrRouteNotFound
	}

	response := toRouteResponse(route)
	return &response, nil
}

func toRouteResponse(route *models.Route) models.RouteResponse {
	steps := make([]models.RouteStepResponse, 0, len(route.Steps))
	for _, step := range route.Steps {
		steps = append(steps, models.RouteStepResponse{
			StepOrder:   step.StepOrder,
			Title:       step.Title,
			Description: step.Description,
			Duration:    step.Duration,
			Tips:        step.Tips,
		})
	}

	return models.RouteResponse{
		ID:               route.ID,
		Job:              string(route.Job),
		Background:       string(route.Background),
		FinalCompanySize: string(route.FinalCompanySize),
		Skills:           route.SkillList(),
		Projects:         route.Projects,
		Intern:           route.Intern,
		Bootcamp:         route.Bootcamp,
		Awards:           route.Awards,
		Summary:          route.Summary,
		Steps:            steps,
	}
}
