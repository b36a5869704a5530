package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a tenant-owned catalog entry. SortOrder is a dense per-client
// display ordering; it is not uniqueness-enforced.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Category    string          `gorm:"size:50;default:'signature'" json:"category"`
	ImageURL    string          `gorm:"size:500" json:"image_url"`
	Status      string          `gorm:"size:20;default:'active'" json:"status"`
	SortOrder   int             `gorm:"default:0" json:"sort_order"`
	CreatedBy   *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Product) TableName() string { return "client_products" }

func (p *Product) Active() bool { return p.Status == "active" }
