package siteconfig

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/freshstack/site-platform/internal/models"
)

func testClient() *models.Client {
	domain := "juice.example.com"
	return &models.Client{
		ID:           uuid.New(),
		Name:         "New Life Juice",
		Domain:       &domain,
		BusinessType: "juice-bar",
		Branding:     datatypes.JSON(`{"colors":{"primary":"#2E7D32"}}`),
		Settings:     datatypes.JSON(`{"payment":{"provider":"stripe"},"social":{"instagram":"@newlifejuice"},"sections":{"features":false}}`),
	}
}

func TestBuildDocument(t *testing.T) {
	client := testClient()
	products := []models.Product{
		{ID: uuid.New(), Name: "Green Detox", Price: decimal.NewFromInt(18), Category: "signature", Status: "active"},
		{ID: uuid.New(), Name: "Old Recipe", Price: decimal.NewFromInt(12), Status: "archived"},
	}
	blocks := []models.ContentBlock{
		{ContentType: "hero", Title: "Fresh Pressed", Body: "Delivered weekly.", Active: true,
			Metadata: datatypes.JSON(`{"buttonText":"Order Now"}`)},
		{ContentType: "feature", Title: "Cold-Pressed Daily", Body: "Pressed every morning.", Active: true,
			Metadata: datatypes.JSON(`{"icon":"leaf"}`)},
		{ContentType: "feature", Title: "Hidden", Body: "Inactive.", Active: false},
	}

	doc := Build(client, products, blocks)

	assert.Equal(t, "New Life Juice", doc.Business.Name)
	assert.Equal(t, "juice-bar", doc.Business.Type)
	assert.Equal(t, "juice.example.com", doc.Business.Domain)

	require.Len(t, doc.Products, 1)
	assert.Equal(t, "Green Detox", doc.Products[0].Name)
	assert.Equal(t, "$18.00", doc.Products[0].Price)

	assert.Equal(t, "Fresh Pressed", doc.Hero.Title)
	assert.Equal(t, "Order Now", doc.Hero.ButtonText)

	require.Len(t, doc.Features, 1)
	assert.Equal(t, "leaf", doc.Features[0].Icon)

	assert.Equal(t, "stripe", doc.Payment["provider"])
	assert.Equal(t, "@newlifejuice", doc.Social["instagram"])

	// Settings override section defaults.
	assert.False(t, doc.Sections["features"])
	assert.True(t, doc.Sections["hero"])
}

func TestBuildDocumentEmptyTenant(t *testing.T) {
	client := &models.Client{ID: uuid.New(), Name: "Bare", BusinessType: "generic"}

	doc := Build(client, nil, nil)

	assert.NotNil(t, doc.Products)
	assert.Empty(t, doc.Products)
	assert.NotNil(t, doc.Features)
	assert.NotNil(t, doc.Payment)
	assert.NotNil(t, doc.Social)

	// Key names are a storefront contract; verify the wire shape.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	for _, key := range []string{"business", "hero", "products", "features", "payment", "sections", "social"} {
		assert.Contains(t, string(raw), `"`+key+`"`)
	}
}
