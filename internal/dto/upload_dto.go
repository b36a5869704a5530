package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadResponse struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
