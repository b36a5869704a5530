package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/models"
	"github.com/freshstack/site-platform/internal/tenant"
)

var ErrContentNotFound = errors.New("content block not found")

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// List returns a client's content blocks, optionally narrowed by type.
func (s *ContentService) List(clientID uuid.UUID, contentType string, activeOnly bool) ([]models.ContentBlock, error) {
	query := s.db.Scopes(tenant.ForClient(clientID)).Order("sort_order ASC, created_at ASC")
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if activeOnly {
		query = query.Where("active = true")
	}

	var blocks []models.ContentBlock
	if err := query.Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (s *ContentService) Create(clientID uuid.UUID, req *dto.ContentBlockRequest) (*models.ContentBlock, error) {
	block := models.ContentBlock{
		ClientID:    clientID,
		ContentType: req.ContentType,
		Title:       req.Title,
		Body:        req.Body,
		Active:      true,
	}
	if len(req.Metadata) > 0 {
		block.Metadata = datatypes.JSON(req.Metadata)
	}
	if req.Active != nil {
		block.Active = *req.Active
	}
	if req.SortOrder != nil {
		block.SortOrder = *req.SortOrder
	}

	if err := s.db.Create(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (s *ContentService) Update(clientID, blockID uuid.UUID, req *dto.ContentBlockRequest) (*models.ContentBlock, error) {
	updates := map[string]interface{}{}
	if req.ContentType != "" {
		updates["content_type"] = req.ContentType
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Body != "" {
		updates["body"] = req.Body
	}
	if len(req.Metadata) > 0 {
		updates["metadata"] = datatypes.JSON(req.Metadata)
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	result := s.db.Model(&models.ContentBlock{}).
		Where("id = ? AND client_id = ?", blockID, clientID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrContentNotFound
	}

	var block models.ContentBlock
	if err := s.db.Scopes(tenant.ForClient(clientID)).First(&block, "id = ?", blockID).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (s *ContentService) Delete(clientID, blockID uuid.UUID) error {
	result := s.db.Where("id = ? AND client_id = ?", blockID, clientID).
		Delete(&models.ContentBlock{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}
