package routes

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/freshstack/site-platform/internal/config"
	"github.com/freshstack/site-platform/internal/handlers"
	"github.com/freshstack/site-platform/internal/middleware"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Product    *handlers.ProductHandler
	Content    *handlers.ContentHandler
	Client     *handlers.ClientHandler
	Assistant  *handlers.AssistantHandler
	Upload     *handlers.UploadHandler
	Onboarding *handlers.OnboardingHandler
	SiteConfig *handlers.SiteConfigHandler
}

func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Use(middleware.ResolveClient())

	// Health (no tenant required)
	api.Get("/health", h.Health.Check)

	// Public storefront reads
	api.Get("/site-config", h.SiteConfig.Get)
	api.Get("/products", h.Product.List)
	api.Get("/products/:id", h.Product.Get)
	api.Get("/content", h.Content.List)
	api.Get("/client-onboarding", h.Onboarding.Catalog)
	api.Get("/auth", h.Auth.Status)
	api.Get("/ai-assistant", h.Assistant.Status)

	// Auth: action-dispatch endpoint plus REST aliases.
	// Auth-specific rate limit: 10 req/min per IP (stricter). The group
	// middleware covers /api/auth itself, so the dispatch route needs no
	// limiter of its own.
	auth := api.Group("/auth", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	api.Post("/auth", h.Auth.Dispatch)
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", middleware.JWTProtected(cfg), h.Auth.Me)

	// AI copywriting proxy authorizes in the handler (body secret or bearer)
	api.Post("/ai-assistant", h.Assistant.Generate)

	// Dashboard mutations: either admin scheme. Applied per route so the
	// middleware never touches the public reads sharing these prefixes.
	adminAccess := middleware.AdminAccess(cfg)
	api.Post("/products", adminAccess, h.Product.Create)
	api.Put("/products/:id", adminAccess, h.Product.Update)
	api.Delete("/products/:id", adminAccess, h.Product.Delete)
	api.Post("/content", adminAccess, h.Content.Create)
	api.Put("/content/:id", adminAccess, h.Content.Update)
	api.Delete("/content/:id", adminAccess, h.Content.Delete)
	api.Post("/image-upload", adminAccess, h.Upload.Upload)
	api.Get("/image-upload", adminAccess, h.Upload.List)
	api.Delete("/image-upload/:id", adminAccess, h.Upload.Delete)
	api.Post("/client-onboarding", adminAccess, h.Onboarding.Provision)

	// Cross-tenant management: platform owner only
	clients := api.Group("/clients", adminAccess, middleware.PlatformOwnerRequired())
	clients.Get("/", h.Client.List)
	clients.Get("/:id", h.Client.Get)
	clients.Post("/", h.Client.Create)
	clients.Put("/:id", h.Client.Update)
	clients.Delete("/:id", h.Client.Delete)

	// Anything else under /api is an unknown path or an unsupported method
	api.All("/*", fallbackNotFound)
}

// fallbackNotFound answers 405 when the path is registered under another
// method and 404 when no route knows the path at all.
func fallbackNotFound(c *fiber.Ctx) error {
	for _, route := range c.App().GetRoutes(true) {
		if route.Method == c.Method() || strings.Contains(route.Path, "*") {
			continue
		}
		if routePathMatches(route.Path, c.Path()) {
			return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
				"error": "Method not allowed",
			})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Not found",
	})
}

func routePathMatches(pattern, path string) bool {
	ps := strings.Split(strings.TrimSuffix(pattern, "/"), "/")
	cs := strings.Split(strings.TrimSuffix(path, "/"), "/")
	if len(ps) != len(cs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			continue
		}
		if !strings.EqualFold(ps[i], cs[i]) {
			return false
		}
	}
	return true
}
