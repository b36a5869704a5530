package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Dispatch handles POST /api/auth. Legacy dashboard clients send a single
// action field instead of using per-action routes.
func (h *AuthHandler) Dispatch(c *fiber.Ctx) error {
	if h.cfg.JWTSecret == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: "Authentication is not configured",
		})
	}

	var req dto.AuthActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	switch req.Action {
	case "register":
		return h.register(c, &req)
	case "login":
		return h.login(c, &req)
	case "logout":
		return h.logout(c, &req)
	case "getUser":
		return h.getUser(c, &req)
	case "refreshSession":
		return h.refresh(c, &req)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:    "Unknown action: " + req.Action,
			Required: []string{"action"},
		})
	}
}

func (h *AuthHandler) register(c *fiber.Ctx, req *dto.AuthActionRequest) error {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: missing,
		})
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) login(c *fiber.Ctx, req *dto.AuthActionRequest) error {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: missing,
		})
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) logout(c *fiber.Ctx, req *dto.AuthActionRequest) error {
	if req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: []string{"refreshToken"},
		})
	}
	if err := h.authService.Logout(req.RefreshToken); err != nil {
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) getUser(c *fiber.Ctx, req *dto.AuthActionRequest) error {
	token := req.AccessToken
	if token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	user, err := h.authService.GetUser(token)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(user)
}

func (h *AuthHandler) refresh(c *fiber.Ctx, req *dto.AuthActionRequest) error {
	if req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: []string{"refreshToken"},
		})
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(resp)
}

// REST aliases for newer dashboard builds.

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.AuthActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	return h.register(c, &req)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AuthActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	return h.login(c, &req)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.AuthActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	return h.logout(c, &req)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.AuthActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	return h.refresh(c, &req)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return h.getUser(c, &dto.AuthActionRequest{})
}

// Status handles GET /api/auth: a config check for deploy smoke tests.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"configured": h.cfg.JWTSecret != "",
	})
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: "Internal server error",
	})
}
