package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/services"
	"github.com/freshstack/site-platform/internal/tenant"
)

type ContentHandler struct {
	content *services.ContentService
}

func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) List(c *fiber.Ctx) error {
	clientID := tenant.GetClientID(c)
	if clientID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Client identification required", Required: []string{"clientId"},
		})
	}

	contentType := c.Query("content_type")
	if contentType == "" {
		contentType = c.Query("type")
	}
	activeOnly := c.Query("active") == "true"
	blocks, err := h.content.List(clientID, contentType, activeOnly)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(blocks)
}

func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var req dto.ContentBlockRequest
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

	block, err := h.content.Create(clientID, &req)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}

func (h *ContentHandler) Update(c *fiber.Ctx) error {
	blockID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid content block ID",
		})
	}

	var req dto.ContentBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	clientID := resolveClientID(c, req.ClientID)
	block, err := h.content.Update(clientID, blockID, &req)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(block)
}

func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	blockID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid content block ID",
		})
	}

	if err := h.content.Delete(tenant.GetClientID(c), blockID); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Content block deleted"})
}
