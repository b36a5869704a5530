package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/tenant"
)

// Paths that identify their tenant some other way (or not at all).
var tenantSkipPaths = []string{
	"/api/health",
	"/api/auth",
	"/api/clients",
	"/api/client-onboarding",
}

// ResolveClient extracts the tenant from JWT claims, the X-Client-ID header,
// or the clientId query param, in that order.
func ResolveClient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, skip := range tenantSkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		// Already resolved by AdminAccess.
		if tenant.GetClientID(c) != uuid.Nil {
			return c.Next()
		}

		// 1. JWT claim from an authenticated session
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if raw, ok := claims["client_id"].(string); ok && raw != "" {
					if id, err := uuid.Parse(raw); err == nil {
						c.Locals(tenant.LocalClientID, id)
						return c.Next()
					}
				}
			}
		}

		// 2. X-Client-ID header
		raw := c.Get("X-Client-ID")
		if raw == "" {
			// 3. clientId query param (storefront fetches)
			raw = c.Query("clientId")
		}
		if raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error: "Invalid client ID: " + raw,
				})
			}
			c.Locals(tenant.LocalClientID, id)
		}

		// No tenant resolved. Handlers that need one reject the request;
		// some (site-config by domain, onboarding) legitimately run without.
		return c.Next()
	}
}
