package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/models"
	"github.com/freshstack/site-platform/internal/services"
	"github.com/freshstack/site-platform/internal/siteconfig"
	"github.com/freshstack/site-platform/internal/tenant"
)

type SiteConfigHandler struct {
	clients  *services.ClientService
	products *services.ProductService
	content  *services.ContentService
}

func NewSiteConfigHandler(clients *services.ClientService, products *services.ProductService, content *services.ContentService) *SiteConfigHandler {
	return &SiteConfigHandler{clients: clients, products: products, content: content}
}

// Get handles GET /api/site-config. The storefront passes its tenant via
// clientId query param, X-Client-ID header, or its custom domain.
func (h *SiteConfigHandler) Get(c *fiber.Ctx) error {
	clientID := tenant.GetClientID(c)

	var client *models.Client
	var err error
	if clientID != uuid.Nil {
		client, err = h.clients.Get(clientID)
	} else if domain := c.Query("domain"); domain != "" {
		client, err = h.clients.GetByDomain(domain)
	} else {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Client identification required", Required: []string{"clientId"},
		})
	}
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}

	products, err := h.products.List(client.ID, true)
	if err != nil {
		return internalError(c)
	}
	blocks, err := h.content.List(client.ID, "", true)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(siteconfig.Build(client, products, blocks))
}
