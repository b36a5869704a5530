package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRequest carries create/update fields for a client product.
type ProductRequest struct {
	ClientID    *uuid.UUID       `json:"client_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	ImageURL    string           `json:"image_url"`
	Status      string           `json:"status"`
	SortOrder   *int             `json:"sort_order"`
}

// Required returns the list of missing mandatory fields, empty when valid.
func (r *ProductRequest) Required() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	return missing
}
