package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"onewave/route-compass/internal/middleware"
	"onewave/route-compass/internal/models"
	"onewave/route-compass/internal/services"
)

type UserHandler struct {
	userService services.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// HandleGetMe handles GET /users/me
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	response, err := h.userService.GetMe(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(response)
}

// HandleOnboarding handles POST /users/me/onboarding
func (h *UserHandler) HandleOnboarding(c *fiber.Ctx) error {
	var req models.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.userService.CompleteOnboarding(middleware.UserID(c), &req); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "onboarding completed",
	})
}

// HandleUpdateMe handles PATCH /users/me
func (h *UserHandler) HandleUpdateMe(c *fiber.Ctx) error {
	var req models.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.userService.UpdateProfile(middleware.UserID(c), &req); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "profile updated",
	})
}
