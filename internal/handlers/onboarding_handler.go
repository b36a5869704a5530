package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/services"
)

type OnboardingHandler struct {
	onboarding *services.OnboardingService
}

func NewOnboardingHandler(onboarding *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding}
}

// Provision handles POST /api/client-onboarding.
func (h *OnboardingHandler) Provision(c *fiber.Ctx) error {
	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if missing := req.Required(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: missing,
		})
	}

	resp, err := h.onboarding.Provision(&req)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Catalog handles GET /api/client-onboarding: the business-type presets the
// signup form offers.
func (h *OnboardingHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(services.Catalog())
}
