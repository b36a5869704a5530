package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/services"
	"github.com/freshstack/site-platform/internal/tenant"
)

type AssistantHandler struct {
	assistant *services.AssistantService
	auth      *services.AuthService
	cfg       *config.Config
}

func NewAssistantHandler(assistant *services.AssistantService, auth *services.AuthService, cfg *config.Config) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, auth: auth, cfg: cfg}
}

// Generate handles POST /api/ai-assistant. Auth is checked here rather than
// in middleware: legacy dashboards send the shared secret in the body.
func (h *AssistantHandler) Generate(c *fiber.Ctx) error {
	var req dto.AssistantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	clientID, userID, ok := h.authorize(c, &req)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	// Connectivity probe for the dashboard settings page.
	if req.Test {
		if !h.cfg.AIConfigured() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: "AI provider is not configured",
			})
		}
		return c.JSON(dto.MessageResponse{Message: "ok"})
	}

	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: []string{"prompt"},
		})
	}

	suggestion, err := h.assistant.Generate(req.Prompt, req.Type, clientID, userID)
	if err != nil {
		if errors.Is(err, services.ErrAINotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		// Upstream failures surface as a generic 500; detail stays in logs.
		return internalError(c)
	}

	return c.JSON(dto.AssistantResponse{Suggestion: suggestion})
}

// Status handles GET /api/ai-assistant: reports whether the proxy is usable.
func (h *AssistantHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"configured": h.cfg.AIConfigured(),
	})
}

func (h *AssistantHandler) authorize(c *fiber.Ctx, req *dto.AssistantRequest) (clientID, userID *uuid.UUID, ok bool) {
	if req.AdminPassword != "" && h.cfg.AdminConfigured() && req.AdminPassword == h.cfg.AdminPassword {
		if id := tenant.GetClientID(c); id != uuid.Nil {
			clientID = &id
		}
		return clientID, nil, true
	}

	token := bearerToken(c)
	if token == "" {
		return nil, nil, false
	}
	claims, err := h.auth.ParseAccessToken(token)
	if err != nil {
		return nil, nil, false
	}

	if sub, _ := claims["sub"].(string); sub != "" {
		if id, err := uuid.Parse(sub); err == nil {
			userID = &id
		}
	}
	if raw, _ := claims["client_id"].(string); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			clientID = &id
		}
	}
	return clientID, userID, true
}
