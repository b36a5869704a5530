package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/services"
	"github.com/freshstack/site-platform/internal/tenant"
)

type UploadHandler struct {
	uploads *services.UploadService
}

func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload handles multipart POST /api/upload-image. The form field is "file";
// "category" is optional and prefixes the storage key.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields", Required: []string{"file"},
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return internalError(c)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return internalError(c)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	category := c.FormValue("category")

	var clientID *uuid.UUID
	if id := tenant.GetClientID(c); id != uuid.Nil {
		clientID = &id
	}

	file, err := h.uploads.Store(c.Context(), clientID, fileHeader.Filename, contentType, category, data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		case errors.Is(err, services.ErrUnsupportedType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		case errors.Is(err, services.ErrStorageUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		default:
			return internalError(c)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		ID:        file.ID,
		Filename:  file.Filename,
		URL:       file.PublicURL,
		FileType:  file.FileType,
		FileSize:  file.FileSize,
		Category:  file.Category,
		CreatedAt: file.CreatedAt,
	})
}

func (h *UploadHandler) List(c *fiber.Ctx) error {
	clientID := tenant.GetClientID(c)
	if clientID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Client identification required", Required: []string{"clientId"},
		})
	}

	files, err := h.uploads.List(clientID, c.Query("category"))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(files)
}

func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid file ID",
		})
	}

	if err := h.uploads.Remove(c.Context(), tenant.GetClientID(c), fileID); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "File deleted"})
}
