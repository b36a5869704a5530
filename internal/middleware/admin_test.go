package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/tenant"
)

func adminTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Post("/admin", AdminAccess(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"legacy": tenant.IsLegacyAdmin(c),
			"role":   tenant.GetRole(c),
		})
	})
	app.Post("/owner", AdminAccess(cfg), PlatformOwnerRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func signToken(t *testing.T, secret, role string, clientID *uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	if clientID != nil {
		claims["client_id"] = clientID.String()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAdminTokenUnconfigured(t *testing.T) {
	app := adminTestApp(&config.Config{JWTSecret: "s"})

	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("X-Admin-Token", "anything")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestAdminTokenMismatch(t *testing.T) {
	app := adminTestApp(&config.Config{JWTSecret: "s", AdminPassword: "correct"})

	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("X-Admin-Token", "wrong")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminTokenAccepted(t *testing.T) {
	app := adminTestApp(&config.Config{JWTSecret: "s", AdminPassword: "correct"})

	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("X-Admin-Token", "correct")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminNoCredentials(t *testing.T) {
	app := adminTestApp(&config.Config{JWTSecret: "s", AdminPassword: "correct"})

	resp, err := app.Test(httptest.NewRequest("POST", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminBearerWithAdminRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s"}
	app := adminTestApp(cfg)

	clientID := uuid.New()
	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s", "admin", &clientID))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminBearerUnlinkedRejected(t *testing.T) {
	// An admin token with no client claim cannot mutate any tenant, even
	// when the request names one through the resolvable header.
	cfg := &config.Config{JWTSecret: "s"}
	app := fiber.New()
	app.Post("/api/products", ResolveClient(), AdminAccess(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/api/products", nil)
	req.Header.Set("X-Client-ID", uuid.NewString())
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s", "admin", nil))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminBearerClientClaimOverridesHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s"}
	linked := uuid.New()

	app := fiber.New()
	app.Post("/api/products", ResolveClient(), AdminAccess(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"client_id": tenant.GetClientID(c).String()})
	})

	req := httptest.NewRequest("POST", "/api/products", nil)
	req.Header.Set("X-Client-ID", uuid.NewString())
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s", "admin", &linked))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, linked.String(), body["client_id"])
}

func TestAdminBearerWrongSecret(t *testing.T) {
	app := adminTestApp(&config.Config{JWTSecret: "s"})

	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "admin", nil))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminBearerInsufficientRole(t *testing.T) {
	app := adminTestApp(&config.Config{JWTSecret: "s"})

	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s", "viewer", nil))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPlatformOwnerGate(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s", AdminPassword: "correct"}
	app := adminTestApp(cfg)

	// Legacy admin counts as platform owner.
	req := httptest.NewRequest("POST", "/owner", nil)
	req.Header.Set("X-Admin-Token", "correct")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Tenant admin does not.
	tenantID := uuid.New()
	req = httptest.NewRequest("POST", "/owner", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s", "admin", &tenantID))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Platform owner role does.
	req = httptest.NewRequest("POST", "/owner", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s", "platform_owner", nil))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
