package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/models"
)

var ErrClientNotFound = errors.New("client not found")

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("created_at ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientService) Get(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetByDomain resolves a tenant from a storefront hostname.
func (s *ClientService) GetByDomain(domain string) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, "domain = ?", domain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Create(req *dto.ClientRequest) (*models.Client, error) {
	client := models.Client{
		Name:   req.Name,
		Domain: req.Domain,
	}
	if req.BusinessType != "" {
		client.BusinessType = req.BusinessType
	}
	if req.Status != "" {
		client.Status = req.Status
	}
	if len(req.BusinessInfo) > 0 {
		client.BusinessInfo = datatypes.JSON(req.BusinessInfo)
	}
	if len(req.Branding) > 0 {
		client.Branding = datatypes.JSON(req.Branding)
	}
	if len(req.Settings) > 0 {
		client.Settings = datatypes.JSON(req.Settings)
	}

	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(id uuid.UUID, req *dto.ClientRequest) (*models.Client, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Domain != nil {
		updates["domain"] = *req.Domain
	}
	if req.BusinessType != "" {
		updates["business_type"] = req.BusinessType
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if len(req.BusinessInfo) > 0 {
		updates["business_info"] = datatypes.JSON(req.BusinessInfo)
	}
	if len(req.Branding) > 0 {
		updates["branding"] = datatypes.JSON(req.Branding)
	}
	if len(req.Settings) > 0 {
		updates["settings"] = datatypes.JSON(req.Settings)
	}

	result := s.db.Model(&models.Client{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrClientNotFound
	}

	return s.Get(id)
}

func (s *ClientService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
