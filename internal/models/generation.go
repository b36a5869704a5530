package models

import (
	"time"

	"github.com/google/uuid"
)

// Generation logs one AI prompt/response pair. The used flag is flipped by
// the dashboard when the suggestion is injected into a content field.
type Generation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Prompt      string     `gorm:"type:text;not null" json:"prompt"`
	ContentType string     `gorm:"size:50" json:"content_type"`
	Response    string     `gorm:"type:text" json:"response"`
	Used        bool       `json:"used"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Generation) TableName() string { return "ai_generations" }
