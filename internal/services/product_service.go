package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/models"
	"github.com/freshstack/site-platform/internal/tenant"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns a client's products ordered for display.
func (s *ProductService) List(clientID uuid.UUID, activeOnly bool) ([]models.Product, error) {
	query := s.db.Scopes(tenant.ForClient(clientID)).Order("sort_order ASC, created_at ASC")
	if activeOnly {
		query = query.Where("status = ?", "active")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(clientID, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Scopes(tenant.ForClient(clientID)).First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(clientID uuid.UUID, req *dto.ProductRequest, createdBy *uuid.UUID) (*models.Product, error) {
	product := models.Product{
		ClientID:    clientID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		CreatedBy:   createdBy,
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Status != "" {
		product.Status = req.Status
	}

	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	} else {
		var next int
		err := s.db.Model(&models.Product{}).
			Scopes(tenant.ForClient(clientID)).
			Select("COALESCE(MAX(sort_order), 0) + 1").
			Scan(&next).Error
		if err != nil {
			return nil, err
		}
		product.SortOrder = next
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies partial changes. The client_id predicate makes cross-tenant
// IDs indistinguishable from missing rows.
func (s *ProductService) Update(clientID, productID uuid.UUID, req *dto.ProductRequest) (*models.Product, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	result := s.db.Model(&models.Product{}).
		Where("id = ? AND client_id = ?", productID, clientID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}

	return s.Get(clientID, productID)
}

func (s *ProductService) Delete(clientID, productID uuid.UUID) error {
	result := s.db.Where("id = ? AND client_id = ?", productID, clientID).
		Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
