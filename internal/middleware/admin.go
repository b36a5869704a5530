package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/models"
	"github.com/freshstack/site-platform/internal/tenant"
)

// AdminAccess accepts either auth scheme for dashboard mutations:
// 1. Legacy X-Admin-Token shared secret
// 2. Bearer session token with an admin-capable role
func AdminAccess(cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if adminToken := c.Get("X-Admin-Token"); adminToken != "" {
			if !cfg.AdminConfigured() {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Error: "Admin authentication is not configured",
				})
			}
			if adminToken != cfg.AdminPassword {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: "Invalid admin token",
				})
			}
			c.Locals(tenant.LocalLegacyAdmin, true)
			c.Locals(tenant.LocalRole, models.RolePlatformOwner)
			return c.Next()
		}

		auth := c.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		}

		token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized: invalid or expired token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Invalid claims",
			})
		}

		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)
		if role != models.RoleAdmin && role != models.RolePlatformOwner && !contains(adminEmails, email) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Admin access required",
			})
		}

		// A non-owner admin acts only on the tenant bound into the token.
		// Header and query tenants stay advisory; without a client claim
		// the token cannot mutate anything.
		var linkedClient uuid.UUID
		if raw, ok := claims["client_id"].(string); ok && raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				linkedClient = id
			}
		}
		if role != models.RolePlatformOwner && linkedClient == uuid.Nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Admin account is not linked to a client",
			})
		}

		c.Locals("user", token)
		c.Locals(tenant.LocalRole, role)
		if linkedClient != uuid.Nil {
			c.Locals(tenant.LocalClientID, linkedClient)
		}
		return c.Next()
	}
}

// PlatformOwnerRequired gates cross-tenant management endpoints. Runs after
// AdminAccess, which fills the role locals.
func PlatformOwnerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !tenant.IsPlatformOwner(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Platform owner access required",
			})
		}
		return c.Next()
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
