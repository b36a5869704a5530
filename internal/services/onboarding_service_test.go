package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessTypeKnown(t *testing.T) {
	assert.True(t, BusinessTypeKnown("juice-bar"))
	assert.True(t, BusinessTypeKnown("coffee-shop"))
	assert.True(t, BusinessTypeKnown("generic"))
	assert.False(t, BusinessTypeKnown("spaceport"))
	assert.False(t, BusinessTypeKnown(""))
}

func TestPresetsAreComplete(t *testing.T) {
	// Every color preset carries the three keys the storefront theme reads.
	for businessType, colors := range businessColors {
		for _, key := range []string{"primary", "secondary", "accent"} {
			assert.Contains(t, colors, key, "%s missing %s", businessType, key)
		}
	}

	// The generic fallback must exist in every preset table.
	require.Contains(t, businessColors, "generic")
	require.Contains(t, businessFeatures, "generic")
	require.Contains(t, starterProducts, "generic")
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)

	types := make([]string, 0, len(catalog))
	for _, info := range catalog {
		types = append(types, info.Type)
		assert.NotEmpty(t, info.Colors, info.Type)
	}
	assert.Contains(t, types, "juice-bar")
	assert.Contains(t, types, "generic")
	assert.IsIncreasing(t, types)
}

func TestStarterProductPricesParse(t *testing.T) {
	for businessType, presets := range starterProducts {
		for _, p := range presets {
			price, err := decimal.NewFromString(p.Price)
			require.NoError(t, err, "%s/%s", businessType, p.Name)
			assert.True(t, price.IsPositive(), "%s/%s", businessType, p.Name)
		}
	}
}
