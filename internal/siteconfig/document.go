// Package siteconfig assembles the public configuration document consumed
// by client storefronts, and the order math those storefronts rely on.
package siteconfig

import (
	"encoding/json"

	"github.com/freshstack/site-platform/internal/models"
)

// Document is the storefront configuration payload. Key names are part of
// the public contract with deployed sites and must not change.
type Document struct {
	Business BusinessSection        `json:"business"`
	Hero     HeroSection            `json:"hero"`
	Products []ProductEntry         `json:"products"`
	Features []FeatureEntry         `json:"features"`
	Payment  map[string]interface{} `json:"payment"`
	Sections map[string]bool        `json:"sections"`
	Social   map[string]string      `json:"social"`
}

type BusinessSection struct {
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	Domain       string                 `json:"domain,omitempty"`
	Branding     map[string]interface{} `json:"branding"`
	BusinessInfo map[string]interface{} `json:"info"`
}

type HeroSection struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

type ProductEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type FeatureEntry struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
}

// Build assembles the document from a tenant and its active rows. Inactive
// products and blocks must be filtered out by the caller's query; Build
// still skips them defensively so stale inputs never leak.
func Build(client *models.Client, products []models.Product, blocks []models.ContentBlock) *Document {
	doc := &Document{
		Business: BusinessSection{
			Name:         client.Name,
			Type:         client.BusinessType,
			Branding:     decodeJSON(client.Branding),
			BusinessInfo: decodeJSON(client.BusinessInfo),
		},
		Products: make([]ProductEntry, 0, len(products)),
		Features: make([]FeatureEntry, 0),
		Payment:  map[string]interface{}{},
		Sections: defaultSections(),
		Social:   map[string]string{},
	}
	if client.Domain != nil {
		doc.Business.Domain = *client.Domain
	}

	settings := decodeJSON(client.Settings)
	if payment, ok := settings["payment"].(map[string]interface{}); ok {
		doc.Payment = payment
	}
	if social, ok := settings["social"].(map[string]interface{}); ok {
		for k, v := range social {
			if s, ok := v.(string); ok {
				doc.Social[k] = s
			}
		}
	}
	if sections, ok := settings["sections"].(map[string]interface{}); ok {
		for k, v := range sections {
			if b, ok := v.(bool); ok {
				doc.Sections[k] = b
			}
		}
	}

	for _, p := range products {
		if !p.Active() {
			continue
		}
		doc.Products = append(doc.Products, ProductEntry{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       FormatUSD(p.Price),
			Category:    p.Category,
			ImageURL:    p.ImageURL,
		})
	}

	for _, b := range blocks {
		if !b.Active {
			continue
		}
		meta := decodeJSON(b.Metadata)
		switch b.ContentType {
		case "hero":
			doc.Hero = HeroSection{
				Title:    b.Title,
				Subtitle: b.Body,
			}
			if s, ok := meta["buttonText"].(string); ok {
				doc.Hero.ButtonText = s
			}
			if s, ok := meta["imageUrl"].(string); ok {
				doc.Hero.ImageURL = s
			}
		case "feature", "benefit":
			entry := FeatureEntry{Title: b.Title, Body: b.Body}
			if s, ok := meta["icon"].(string); ok {
				entry.Icon = s
			}
			doc.Features = append(doc.Features, entry)
		}
	}

	return doc
}

func defaultSections() map[string]bool {
	return map[string]bool{
		"hero":     true,
		"products": true,
		"features": true,
		"contact":  true,
	}
}

func decodeJSON(raw []byte) map[string]interface{} {
	out := map[string]interface{}{}
	if len(raw) == 0 {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}
