package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Client is a business tenant. Every other tenant-owned row references it
// by client_id; it is the isolation boundary for data and branding.
type Client struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Domain       *string        `gorm:"size:255" json:"domain"`
	BusinessType string         `gorm:"size:50;not null;default:'generic'" json:"business_type"`
	BusinessInfo datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"business_info"`
	Branding     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"branding"`
	Settings     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"settings"`
	Status       string         `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
