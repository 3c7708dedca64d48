package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"onewave/route-compass/internal/services"
)

type RouteHandler struct {
	routeService services.RouteService
}

func NewRouteHandler(routeService services.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

// HandleListRoutes handles GET /routes?job=FRONTEND&background=MAJOR
func (h *RouteHandler) HandleListRoutes(c *fiber.Ctx) error {
	routes, err := h.routeService.GetRoutes(c.Query("job"), c.Query("background"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"routes": routes,
	})
}

// HandleGetRoute handles GET /routes/:id
func (h *RouteHandler) HandleGetRoute(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid route ID format",
		})
	}

	route, err := h.routeService.GetRoute(uint(id))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(route)
}
