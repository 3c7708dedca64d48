package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"onewave/route-compass/internal/services"
)

// statusForError maps service error kinds to HTTP statuses. Unknown errors
// are internal faults.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRouteNotFound),
		errors.Is(err, services.ErrAnalysisNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrProfileIncomplete),
		errors.Is(err, services.ErrOnboardingDone),
		errors.Is(err, services.ErrNoRoutes),
		errors.Is(err, services.ErrNoEligibleMatch):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInsightGeneration):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
