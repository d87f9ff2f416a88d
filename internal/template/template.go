// Package template holds budget-range matrices used to pre-populate a
// new quote's line items. A template maps each category to a default
// description, allowance/tier flags, and a ranges-by-size-by-tier
// matrix of [low, high] dollar pairs.
package template

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies what kind of project a template covers.
type Type string

const (
	TypeKitchen  Type = "kitchen"
	TypeBathroom Type = "bathroom"
	TypeCustom   Type = "custom"
)

// Size is a project size bucket.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Tier is a quality tier.
type Tier string

const (
	TierGood   Tier = "good"
	TierBetter Tier = "better"
	TierBest   Tier = "best"
)

// DefaultTier is the tier used when seeding line items from a template.
const DefaultTier = TierBetter

// Range is a [low, high] dollar pair.
type Range struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// Matrix maps size -> tier -> Range.
type Matrix map[Size]map[Tier]Range

// LineItemConfig is one configured category within a template, in
// display order.
type LineItemConfig struct {
	Category           string `json:"category"`
	DefaultDescription string `json:"default_description"`
	IsAllowance        bool   `json:"is_allowance"`
	HasQualityTiers    bool   `json:"has_quality_tiers"`
	Ranges             Matrix `json:"ranges"`
}

// Template is either system-provided (IsSystem, no company) or owned
// by a single company. Pure data; no lifecycle beyond CRUD.
type Template struct {
	ID        uuid.UUID
	CompanyID *uuid.UUID
	Name      string
	Type      Type
	IsSystem  bool
	Items     []LineItemConfig
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// RangeFor looks up the budget range for a category at a given size
// and tier. The boolean reports whether the range is configured;
// callers must treat a missing range as "leave unset", never as a
// zero-value range.
func (t *Template) RangeFor(category string, size Size, tier Tier) (Range, bool) {
	for _, item := range t.Items {
		if item.Category != category {
			continue
		}

		byTier, ok := item.Ranges[size]
		if !ok {
			return Range{}, false
		}

		r, ok := byTier[tier]

		return r, ok
	}

	return Range{}, false
}

// Seed is a line item draft produced from a template. The live range
// and the suggested range start equal; the suggested range is kept to
// flag selections as over or under budget later.
type Seed struct {
	Category           string
	Description        string
	IsAllowance        bool
	QualityTier        *Tier
	RangeLow           *int64
	RangeHigh          *int64
	SuggestedRangeLow  *int64
	SuggestedRangeHigh *int64
	SortOrder          int
}

// BuildSeeds builds one seed per configured category in template
// order, looking up each range at the project size and the default
// tier. Categories without a configured range still produce a seed,
// with the range left unset.
func (t *Template) BuildSeeds(size Size) []Seed {
	seeds := make([]Seed, 0, len(t.Items))

	for i, item := range t.Items {
		seed := Seed{
			Category:    item.Category,
			Description: item.DefaultDescription,
			IsAllowance: item.IsAllowance,
			SortOrder:   i + 1,
		}

		if item.HasQualityTiers {
			tier := DefaultTier
			seed.QualityTier = &tier
		}

		if r, ok := t.RangeFor(item.Category, size, DefaultTier); ok {
			low, high := r.Low, r.High
			suggestedLow, suggestedHigh := r.Low, r.High
			seed.RangeLow = &low
			seed.RangeHigh = &high
			seed.SuggestedRangeLow = &suggestedLow
			seed.SuggestedRangeHigh = &suggestedHigh
		}

		seeds = append(seeds, seed)
	}

	return seeds
}
