package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackTestApp() *fiber.App {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/health", ok)
	api.Get("/products", ok)
	api.Get("/products/:id", ok)
	api.Post("/products", ok)
	api.All("/*", fallbackNotFound)
	return app
}

func TestFallbackUnknownPathIs404(t *testing.T) {
	app := fallbackTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFallbackKnownPathWrongMethodIs405(t *testing.T) {
	app := fallbackTestApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestFallbackParamRouteWrongMethodIs405(t *testing.T) {
	app := fallbackTestApp()

	resp, err := app.Test(httptest.NewRequest("PATCH", "/api/products/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestFallbackRegisteredRouteUntouched(t *testing.T) {
	app := fallbackTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoutePathMatches(t *testing.T) {
	assert.True(t, routePathMatches("/api/products/:id", "/api/products/abc"))
	assert.True(t, routePathMatches("/api/clients/", "/api/clients"))
	assert.False(t, routePathMatches("/api/products", "/api/products/abc"))
	assert.False(t, routePathMatches("/api/products/:id", "/api/content/abc"))
}
