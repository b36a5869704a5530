package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ContentBlockRequest carries create/update fields for a content block.
type ContentBlockRequest struct {
	ClientID    *uuid.UUID      `json:"client_id"`
	ContentType string          `json:"content_type"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	Metadata    json.RawMessage `json:"metadata"`
	Active      *bool           `json:"active"`
	SortOrder   *int            `json:"sort_order"`
}

func (r *ContentBlockRequest) Required() []string {
	var missing []string
	if r.ContentType == "" {
		missing = append(missing, "content_type")
	}
	if r.Title == "" {
		missing = append(missing, "title")
	}
	return missing
}
