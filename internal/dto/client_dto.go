package dto

import "encoding/json"

// ClientRequest carries create/update fields for a tenant.
type ClientRequest struct {
	Name         string          `json:"name"`
	Domain       *string         `json:"domain"`
	BusinessType string          `json:"business_type"`
	BusinessInfo json.RawMessage `json:"business_info"`
	Branding     json.RawMessage `json:"branding"`
	Settings     json.RawMessage `json:"settings"`
	Status       string          `json:"status"`
}

func (r *ClientRequest) Required() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	return missing
}
