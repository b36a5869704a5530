package tenant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Locals keys set by the auth/tenant middleware.
const (
	LocalClientID    = "client_id"
	LocalRole        = "role"
	LocalLegacyAdmin = "legacy_admin"
)

// GetClientID extracts the resolved client UUID from Fiber context locals.
// Returns uuid.Nil when no tenant was resolved for the request.
func GetClientID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(LocalClientID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// GetRole returns the authenticated principal's role, or "" when anonymous.
func GetRole(c *fiber.Ctx) string {
	if role, ok := c.Locals(LocalRole).(string); ok {
		return role
	}
	return ""
}

// IsLegacyAdmin reports whether the request authenticated with the shared
// admin secret rather than a session token. Legacy admins bypass role checks.
func IsLegacyAdmin(c *fiber.Ctx) bool {
	ok, _ := c.Locals(LocalLegacyAdmin).(bool)
	return ok
}

// IsPlatformOwner reports cross-tenant visibility for the request.
func IsPlatformOwner(c *fiber.Ctx) bool {
	return IsLegacyAdmin(c) || GetRole(c) == "platform_owner"
}

// GetUserID extracts the user UUID from JWT claims in context. Legacy-admin
// requests carry no user identity and return an error.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
