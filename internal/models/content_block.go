package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContentBlock is a typed chunk of marketing copy attached to a tenant
// (hero, about, benefits). Metadata carries type-specific extras such as
// the hero button text or a feature icon.
type ContentBlock struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
	ContentType string         `gorm:"size:30;not null;index" json:"content_type"`
	Title       string         `gorm:"size:255" json:"title"`
	Body        string         `gorm:"type:text" json:"body"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	Active      bool           `gorm:"default:true" json:"active"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (ContentBlock) TableName() string { return "content_blocks" }
