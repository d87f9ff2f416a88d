package template

// System templates with the standard remodel budget matrices. These
// are compiled in rather than stored; company-owned custom templates
// live in the database.

func tiered(small, medium, large [3]Range) Matrix {
	return Matrix{
		SizeSmall:  {TierGood: small[0], TierBetter: small[1], TierBest: small[2]},
		SizeMedium: {TierGood: medium[0], TierBetter: medium[1], TierBest: medium[2]},
		SizeLarge:  {TierGood: large[0], TierBetter: large[1], TierBest: large[2]},
	}
}

// flat repeats the same range across all tiers; used for trade work
// that does not vary with finish quality.
func flat(small, medium, large Range) Matrix {
	return tiered(
		[3]Range{small, small, small},
		[3]Range{medium, medium, medium},
		[3]Range{large, large, large},
	)
}

// KitchenTemplate returns the system kitchen remodel template.
func KitchenTemplate() *Template {
	return &Template{
		Name:     "Kitchen Remodel",
		Type:     TypeKitchen,
		IsSystem: true,
		Items: []LineItemConfig{
			{
				Category:           "cabinets",
				DefaultDescription: "Kitchen cabinets",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{5000, 8000}, {7000, 11000}, {12000, 20000}},
					[3]Range{{7000, 11000}, {10000, 16000}, {18000, 32000}},
					[3]Range{{10000, 16000}, {15000, 24000}, {28000, 50000}},
				),
			},
			{
				Category:           "countertops",
				DefaultDescription: "Countertops",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{1200, 2000}, {2000, 3500}, {4000, 6500}},
					[3]Range{{2000, 3500}, {3500, 5500}, {6000, 10000}},
					[3]Range{{3500, 5500}, {5500, 8500}, {9000, 16000}},
				),
			},
			{
				Category:           "flooring",
				DefaultDescription: "Flooring",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{1000, 1800}, {1500, 2800}, {3000, 5000}},
					[3]Range{{1500, 2800}, {2500, 4000}, {4500, 7500}},
					[3]Range{{2500, 4000}, {3500, 5500}, {6500, 11000}},
				),
			},
			{
				Category:           "backsplash",
				DefaultDescription: "Backsplash",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{400, 800}, {700, 1200}, {1300, 2500}},
					[3]Range{{600, 1100}, {900, 1600}, {1800, 3500}},
					[3]Range{{900, 1500}, {1300, 2200}, {2500, 5000}},
				),
			},
			{
				Category:           "appliances",
				DefaultDescription: "Appliances",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{1500, 3000}, {3000, 6000}, {7000, 20000}},
					[3]Range{{1500, 3000}, {3000, 6000}, {7000, 20000}},
					[3]Range{{1500, 3000}, {3000, 6000}, {7000, 20000}},
				),
			},
			{
				Category:           "demo",
				DefaultDescription: "Demo & Prep",
				Ranges:             flat(Range{1000, 2000}, Range{1500, 2500}, Range{2000, 3500}),
			},
			{
				Category:           "electrical",
				DefaultDescription: "Electrical",
				Ranges:             flat(Range{1000, 2000}, Range{1500, 2500}, Range{2000, 4000}),
			},
			{
				Category:           "plumbing",
				DefaultDescription: "Plumbing",
				Ranges:             flat(Range{1200, 2500}, Range{2000, 3500}, Range{2500, 5000}),
			},
			{
				Category:           "labor",
				DefaultDescription: "Labor & Project Management",
				Ranges:             flat(Range{5000, 8000}, Range{8000, 12000}, Range{12000, 18000}),
			},
		},
	}
}

// BathroomTemplate returns the system bathroom remodel template.
func BathroomTemplate() *Template {
	return &Template{
		Name:     "Bathroom Remodel",
		Type:     TypeBathroom,
		IsSystem: true,
		Items: []LineItemConfig{
			{
				Category:           "cabinets",
				DefaultDescription: "Vanity cabinet",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{500, 1000}, {1000, 2000}, {2500, 5000}},
					[3]Range{{800, 1500}, {1500, 3000}, {3500, 7000}},
					[3]Range{{1500, 3000}, {3000, 5000}, {6000, 12000}},
				),
			},
			{
				Category:           "countertops",
				DefaultDescription: "Vanity top",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{300, 600}, {500, 1000}, {1000, 2000}},
					[3]Range{{500, 1000}, {800, 1500}, {1500, 3000}},
					[3]Range{{800, 1500}, {1200, 2500}, {2500, 5000}},
				),
			},
			{
				Category:           "flooring",
				DefaultDescription: "Floor tile",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{400, 800}, {700, 1200}, {1200, 2500}},
					[3]Range{{600, 1200}, {1000, 1800}, {1800, 3500}},
					[3]Range{{1000, 2000}, {1500, 3000}, {3000, 6000}},
				),
			},
			{
				Category:           "backsplash",
				DefaultDescription: "Shower/tub tile",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{800, 1500}, {1500, 2500}, {2500, 5000}},
					[3]Range{{1200, 2500}, {2500, 4000}, {4000, 8000}},
					[3]Range{{2000, 4000}, {4000, 7000}, {7000, 15000}},
				),
			},
			{
				Category:           "plumbing",
				DefaultDescription: "Plumbing fixtures",
				IsAllowance:        true,
				HasQualityTiers:    true,
				Ranges: tiered(
					[3]Range{{500, 1000}, {1000, 2000}, {2500, 5000}},
					[3]Range{{800, 1500}, {1500, 3000}, {3500, 7000}},
					[3]Range{{1200, 2500}, {2500, 5000}, {5000, 12000}},
				),
			},
			{
				Category:           "demo",
				DefaultDescription: "Demo & Prep",
				Ranges:             flat(Range{500, 1000}, Range{800, 1500}, Range{1200, 2500}),
			},
			{
				Category:           "electrical",
				DefaultDescription: "Electrical",
				Ranges:             flat(Range{400, 800}, Range{600, 1200}, Range{1000, 2000}),
			},
			{
				Category:           "labor",
				DefaultDescription: "Labor & Project Management",
				Ranges:             flat(Range{2500, 4000}, Range{4000, 6500}, Range{6500, 10000}),
			},
		},
	}
}

// SystemTemplates returns all compiled-in templates.
func SystemTemplates() []*Template {
	return []*Template{KitchenTemplate(), BathroomTemplate()}
}

// SystemTemplateFor returns the system template for a template type,
// or nil for types without one (custom).
func SystemTemplateFor(t Type) *Template {
	for _, tpl := range SystemTemplates() {
		if tpl.Type == t {
			return tpl
		}
	}

	return nil
}
