package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/services"
	"github.com/freshstack/site-platform/internal/tenant"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// resolveClientID prefers an explicit body/param client over the ambient
// tenant, but only for platform owners.
func resolveClientID(c *fiber.Ctx, requested *uuid.UUID) uuid.UUID {
	if requested != nil && tenant.IsPlatformOwner(c) {
		return *requested
	}
	return tenant.GetClientID(c)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	clientID := tenant.GetClientID(c)
	if clientID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Client identification required", Required: []string{"clientId"},
		})
	}

	activeOnly := c.Query("active") == "true"
	products, err := h.products.List(clientID, activeOnly)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid product ID",
		})
	}

	product, err := h.products.Get(tenant.GetClientID(c), productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if missing := req.Required(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: missing,
		})
	}

	clientID := resolveClientID(c, req.ClientID)
	if clientID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Client identification required", Required: []string{"client_id"},
		})
	}

	var createdBy *uuid.UUID
	if userID, err := tenant.GetUserID(c); err == nil {
		createdBy = &userID
	}

	product, err := h.products.Create(clientID, &req, createdBy)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid product ID",
		})
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	clientID := resolveClientID(c, req.ClientID)
	product, err := h.products.Update(clientID, productID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid product ID",
		})
	}

	if err := h.products.Delete(tenant.GetClientID(c), productID); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Product deleted"})
}
