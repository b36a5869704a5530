package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadedFile records the metadata row for an object written to storage.
// StoragePath is the object key; PublicURL is what the site embeds.
type UploadedFile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Filename    string     `gorm:"size:255" json:"filename"`
	StoragePath string     `gorm:"size:500;not null;uniqueIndex" json:"storage_path"`
	PublicURL   string     `gorm:"size:500" json:"public_url"`
	FileType    string     `gorm:"size:100" json:"file_type"`
	FileSize    int64      `json:"file_size"`
	Category    string     `gorm:"size:50" json:"category"`
	Status      string     `gorm:"size:20" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (UploadedFile) TableName() string { return "client_files" }
