package services

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/freshstack/site-platform/internal/dto"
	"github.com/freshstack/site-platform/internal/models"
)

// Per-business-type presets. Unknown types get the generic preset so
// onboarding never fails on an unmapped vertical.
var businessColors = map[string]map[string]string{
	"juice-bar":    {"primary": "#2E7D32", "secondary": "#FFC107", "accent": "#FF7043"},
	"coffee-shop":  {"primary": "#4E342E", "secondary": "#D7CCC8", "accent": "#FF8A65"},
	"bakery":       {"primary": "#8D6E63", "secondary": "#FFF3E0", "accent": "#EC407A"},
	"restaurant":   {"primary": "#B71C1C", "secondary": "#FBE9E7", "accent": "#FFB300"},
	"fitness":      {"primary": "#1565C0", "secondary": "#E3F2FD", "accent": "#00C853"},
	"salon":        {"primary": "#6A1B9A", "secondary": "#F3E5F5", "accent": "#FF4081"},
	"insurance":    {"primary": "#0D47A1", "secondary": "#E8EAF6", "accent": "#26A69A"},
	"generic":      {"primary": "#37474F", "secondary": "#ECEFF1", "accent": "#29B6F6"},
}

var businessFeatures = map[string][]featurePreset{
	"juice-bar": {
		{"Cold-Pressed Daily", "Every bottle is pressed fresh each morning from whole fruits and vegetables.", "leaf"},
		{"Local Delivery", "Free same-day delivery on orders placed before noon.", "truck"},
		{"No Added Sugar", "Just fruit, vegetables, and nothing else.", "heart"},
	},
	"coffee-shop": {
		{"Single-Origin Beans", "Roasted in small batches from farms we know by name.", "coffee"},
		{"Baked Fresh", "Pastries made in-house every morning.", "croissant"},
	},
	"insurance": {
		{"Licensed Agents", "Every policy is reviewed by a licensed local agent.", "shield"},
		{"Fast Claims", "Most claims resolved within five business days.", "clock"},
	},
	"generic": {
		{"Quality First", "We stand behind everything we make.", "star"},
		{"Local & Friendly", "Proudly serving our neighborhood.", "map-pin"},
	},
}

var starterProducts = map[string][]productPreset{
	"juice-bar": {
		{"Green Detox", "Kale, spinach, green apple, cucumber, and a squeeze of lemon.", "18.00", "signature"},
		{"Citrus Burst", "Orange, grapefruit, and ginger for a bright morning start.", "18.00", "signature"},
		{"Berry Antioxidant", "Blueberry, strawberry, and pomegranate blend.", "18.00", "signature"},
	},
	"coffee-shop": {
		{"House Blend", "Balanced medium roast with chocolate and caramel notes.", "14.00", "signature"},
		{"Cold Brew Concentrate", "Slow-steeped for 18 hours, smooth and strong.", "16.00", "signature"},
	},
	"insurance": {
		{"Home Coverage Review", "A full walkthrough of your current homeowner policy.", "49.00", "signature"},
		{"Policy Bundle Consultation", "Side-by-side comparison across our carrier network.", "29.00", "signature"},
	},
	"generic": {
		{"Starter Item", "Edit this product in your dashboard to get going.", "10.00", "signature"},
	},
}

type featurePreset struct {
	Title string
	Body  string
	Icon  string
}

type productPreset struct {
	Name        string
	Description string
	Price       string
	Category    string
}

type OnboardingService struct {
	db *gorm.DB
}

func NewOnboardingService(db *gorm.DB) *OnboardingService {
	return &OnboardingService{db: db}
}

// BusinessTypeKnown reports whether a type has a dedicated preset.
func BusinessTypeKnown(businessType string) bool {
	_, ok := businessColors[businessType]
	return ok
}

// Catalog lists the available onboarding presets.
func Catalog() []dto.BusinessTypeInfo {
	out := make([]dto.BusinessTypeInfo, 0, len(businessColors))
	for businessType, colors := range businessColors {
		info := dto.BusinessTypeInfo{Type: businessType, Colors: colors}
		for _, f := range businessFeatures[businessType] {
			info.Features = append(info.Features, f.Title)
		}
		for _, p := range starterProducts[businessType] {
			info.Products = append(info.Products, p.Name)
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Provision creates the tenant, seeds branding, starter products and content,
// and links the owning user, all in one transaction.
func (s *OnboardingService) Provision(req *dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	businessType := req.BusinessType
	if !BusinessTypeKnown(businessType) {
		businessType = "generic"
	}

	branding, _ := json.Marshal(map[string]interface{}{
		"colors": businessColors[businessType],
	})
	businessInfo, _ := json.Marshal(map[string]interface{}{
		"ownerEmail": req.OwnerEmail,
	})

	client := models.Client{
		Name:         req.BusinessName,
		Domain:       req.Domain,
		BusinessType: businessType,
		BusinessInfo: datatypes.JSON(businessInfo),
		Branding:     datatypes.JSON(branding),
	}

	var seeded int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		presets := starterProducts[businessType]
		for i, p := range presets {
			price, err := decimal.NewFromString(p.Price)
			if err != nil {
				return err
			}
			product := models.Product{
				ClientID:    client.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       price,
				Category:    p.Category,
				SortOrder:   i + 1,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			seeded++
		}

		hero := models.ContentBlock{
			ClientID:    client.ID,
			ContentType: "hero",
			Title:       req.BusinessName,
			Body:        "Welcome! Your new site is ready to customize.",
			Active:      true,
		}
		if err := tx.Create(&hero).Error; err != nil {
			return err
		}

		for i, f := range businessFeatures[businessType] {
			meta, _ := json.Marshal(map[string]string{"icon": f.Icon})
			block := models.ContentBlock{
				ClientID:    client.ID,
				ContentType: "feature",
				Title:       f.Title,
				Body:        f.Body,
				Metadata:    datatypes.JSON(meta),
				Active:      true,
				SortOrder:   i + 1,
			}
			if err := tx.Create(&block).Error; err != nil {
				return err
			}
		}

		if req.UserID != nil {
			result := tx.Model(&models.User{}).
				Where("id = ?", *req.UserID).
				Update("client_id", client.ID)
			if result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.OnboardingResponse{
		ClientID:     client.ID,
		BusinessType: businessType,
		Products:     seeded,
		Message:      "client provisioned",
	}, nil
}

// LinkUser attaches an existing user to a tenant after the fact.
func (s *OnboardingService) LinkUser(userID, clientID uuid.UUID) error {
	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("client_id", clientID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
