package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/quoteforge/internal/template"
)

func TestRangeFor(t *testing.T) {
	kitchen := template.KitchenTemplate()

	tests := []struct {
		name     string
		category string
		size     template.Size
		tier     template.Tier
		want     template.Range
		found    bool
	}{
		{
			name:     "CabinetsMediumBetter",
			category: "cabinets",
			size:     template.SizeMedium,
			tier:     template.TierBetter,
			want:     template.Range{Low: 10000, High: 16000},
			found:    true,
		},
		{
			name:     "CabinetsLargeBest",
			category: "cabinets",
			size:     template.SizeLarge,
			tier:     template.TierBest,
			want:     template.Range{Low: 28000, High: 50000},
			found:    true,
		},
		{
			name:     "FlatTradeIgnoresTier",
			category: "labor",
			size:     template.SizeSmall,
			tier:     template.TierBest,
			want:     template.Range{Low: 5000, High: 8000},
			found:    true,
		},
		{
			name:     "UnknownCategory",
			category: "landscaping",
			size:     template.SizeMedium,
			tier:     template.TierBetter,
			found:    false,
		},
		{
			name:     "UnknownSize",
			category: "cabinets",
			size:     template.Size("giant"),
			tier:     template.TierBetter,
			found:    false,
		},
		{
			name:     "UnknownTier",
			category: "cabinets",
			size:     template.SizeMedium,
			tier:     template.Tier("luxury"),
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := kitchen.RangeFor(tt.category, tt.size, tt.tier)
			assert.Equal(t, tt.found, found)

			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildSeeds(t *testing.T) {
	kitchen := template.KitchenTemplate()
	seeds := kitchen.BuildSeeds(template.SizeMedium)

	require.Len(t, seeds, len(kitchen.Items))

	// Dense 1-based sort order in config order.
	for i, seed := range seeds {
		assert.Equal(t, i+1, seed.SortOrder)
		assert.Equal(t, kitchen.Items[i].Category, seed.Category)
	}

	cabinets := seeds[0]
	require.Equal(t, "cabinets", cabinets.Category)
	assert.True(t, cabinets.IsAllowance)

	// Default tier is better; live range and suggested range start equal.
	require.NotNil(t, cabinets.QualityTier)
	assert.Equal(t, template.TierBetter, *cabinets.QualityTier)
	require.NotNil(t, cabinets.RangeLow)
	assert.EqualValues(t, 10000, *cabinets.RangeLow)
	assert.EqualValues(t, 16000, *cabinets.RangeHigh)
	assert.EqualValues(t, 10000, *cabinets.SuggestedRangeLow)
	assert.EqualValues(t, 16000, *cabinets.SuggestedRangeHigh)

	// Trade categories have no quality tier.
	var demo template.Seed

	for _, s := range seeds {
		if s.Category == "demo" {
			demo = s
		}
	}

	require.Equal(t, "demo", demo.Category)
	assert.Nil(t, demo.QualityTier)
	require.NotNil(t, demo.RangeLow)
	assert.EqualValues(t, 1500, *demo.RangeLow)
}

func TestBuildSeeds_MissingRangeLeftUnset(t *testing.T) {
	tpl := &template.Template{
		Name: "Sparse",
		Type: template.TypeCustom,
		Items: []template.LineItemConfig{
			{Category: "other", DefaultDescription: "Misc work"},
		},
	}

	seeds := tpl.BuildSeeds(template.SizeMedium)
	require.Len(t, seeds, 1)
	assert.Nil(t, seeds[0].RangeLow)
	assert.Nil(t, seeds[0].RangeHigh)
	assert.Nil(t, seeds[0].SuggestedRangeLow)
}

func TestSystemTemplateFor(t *testing.T) {
	assert.NotNil(t, template.SystemTemplateFor(template.TypeKitchen))
	assert.NotNil(t, template.SystemTemplateFor(template.TypeBathroom))
	assert.Nil(t, template.SystemTemplateFor(template.TypeCustom))
}
