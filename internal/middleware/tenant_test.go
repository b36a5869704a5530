package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshstack/site-platform/internal/tenant"
)

func tenantTestApp() *fiber.App {
	app := fiber.New()
	app.Use(ResolveClient())
	app.Get("/api/products", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"client_id": tenant.GetClientID(c).String()})
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestResolveClientFromHeader(t *testing.T) {
	app := tenantTestApp()
	clientID := uuid.New()

	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("X-Client-ID", clientID.String())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestResolveClientFromQuery(t *testing.T) {
	app := tenantTestApp()
	clientID := uuid.New()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products?clientId="+clientID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestResolveClientRejectsMalformedID(t *testing.T) {
	app := tenantTestApp()

	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("X-Client-ID", "not-a-uuid")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResolveClientAbsentPassesThrough(t *testing.T) {
	// Handlers enforce tenancy themselves; the middleware only resolves.
	app := tenantTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestResolveClientSkipsHealth(t *testing.T) {
	app := tenantTestApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-Client-ID", "garbage-that-would-400")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
