package dto

import "github.com/google/uuid"

// OnboardingRequest provisions a new tenant with branding, starter content
// and an owner account in one call.
type OnboardingRequest struct {
	BusinessName string     `json:"businessName"`
	BusinessType string     `json:"businessType"`
	OwnerEmail   string     `json:"ownerEmail"`
	UserID       *uuid.UUID `json:"userId"`
	Domain       *string    `json:"domain"`
}

func (r *OnboardingRequest) Required() []string {
	var missing []string
	if r.BusinessName == "" {
		missing = append(missing, "businessName")
	}
	if r.BusinessType == "" {
		missing = append(missing, "businessType")
	}
	if r.OwnerEmail == "" {
		missing = append(missing, "ownerEmail")
	}
	if r.UserID == nil {
		missing = append(missing, "userId")
	}
	return missing
}

type OnboardingResponse struct {
	ClientID     uuid.UUID `json:"clientId"`
	BusinessType string    `json:"businessType"`
	Products     int       `json:"productsSeeded"`
	Message      string    `json:"message"`
}

// BusinessTypeInfo describes one onboarding preset for the catalog endpoint.
type BusinessTypeInfo struct {
	Type     string            `json:"type"`
	Colors   map[string]string `json:"colors"`
	Features []string          `json:"features"`
	Products []string          `json:"starterProducts"`
}
