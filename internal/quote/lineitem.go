package quote

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/template"
)

// Category is the closed set of line item categories.
type Category string

const (
	CategoryCabinets    Category = "cabinets"
	CategoryCountertops Category = "countertops"
	CategoryFlooring    Category = "flooring"
	CategoryBacksplash  Category = "backsplash"
	CategoryAppliances  Category = "appliances"
	CategoryPlumbing    Category = "plumbing"
	CategoryElectrical  Category = "electrical"
	CategoryDemo        Category = "demo"
	CategoryLabor       Category = "labor"
	CategoryPermits     Category = "permits"
	CategoryOther       Category = "other"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryCabinets, CategoryCountertops, CategoryFlooring, CategoryBacksplash,
	CategoryAppliances, CategoryPlumbing, CategoryElectrical, CategoryDemo,
	CategoryLabor, CategoryPermits, CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}

	return false
}

// Material reports whether the category is a material selection.
func (c Category) Material() bool {
	switch c {
	case CategoryCabinets, CategoryCountertops, CategoryFlooring, CategoryBacksplash, CategoryAppliances:
		return true
	default:
		return false
	}
}

// Labor reports whether the category is trade or labor work.
func (c Category) Labor() bool {
	switch c {
	case CategoryDemo, CategoryElectrical, CategoryPlumbing, CategoryLabor, CategoryPermits:
		return true
	default:
		return false
	}
}

// SelectionStatus tracks whether an allowance has been finalized.
type SelectionStatus string

const (
	SelectionPending   SelectionStatus = "pending"
	SelectionFinalized SelectionStatus = "finalized"
)

// BudgetStatus classifies a finalized allowance against its range.
type BudgetStatus string

const (
	BudgetPending BudgetStatus = "pending"
	BudgetUnder   BudgetStatus = "under"
	BudgetWithin  BudgetStatus = "within"
	BudgetOver    BudgetStatus = "over"
)

// LineItem is a priced or ranged budget item under exactly one quote.
// IsAllowance and IsRange are independent flags: an allowance is
// usually ranged, but the server validates them separately.
type LineItem struct {
	ID                 uuid.UUID
	QuoteID            uuid.UUID
	Category           Category
	Description        string
	QualityTier        *template.Tier
	IsAllowance        bool
	IsRange            bool
	RangeLow           *int64
	RangeHigh          *int64
	SuggestedRangeLow  *int64
	SuggestedRangeHigh *int64
	FinalSelection     *string
	FinalPrice         *int64
	SelectionStatus    SelectionStatus
	InternalNotes      string
	SortOrder          int
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Normalize keeps range_high equal to range_low for single-price items.
func (li *LineItem) Normalize() {
	if !li.IsRange && li.RangeLow != nil {
		high := *li.RangeLow
		li.RangeHigh = &high
	}
}

// Validate enforces category membership, price presence, and range
// ordering. Called after Normalize.
func (li *LineItem) Validate() error {
	if !li.Category.Valid() {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", li.Category)}
	}

	if li.Description == "" {
		return &ValidationError{Field: "description", Reason: "description is required"}
	}

	if li.RangeLow == nil && li.RangeHigh == nil {
		return &ValidationError{Field: "range_low", Reason: "price is required"}
	}

	for field, v := range map[string]*int64{"range_low": li.RangeLow, "range_high": li.RangeHigh} {
		if v != nil && *v < 0 {
			return &ValidationError{Field: field, Reason: "must not be negative"}
		}
	}

	if li.IsRange && li.RangeLow != nil && li.RangeHigh != nil && *li.RangeLow > *li.RangeHigh {
		return &ValidationError{Field: "range_low", Reason: "must be less than or equal to range high"}
	}

	return nil
}

// BudgetStatus compares a finalized allowance price to its live range.
func (li *LineItem) BudgetStatus() BudgetStatus {
	if li.FinalPrice == nil || !li.IsAllowance {
		return BudgetPending
	}

	switch {
	case li.RangeLow != nil && *li.FinalPrice <= *li.RangeLow:
		return BudgetUnder
	case li.RangeHigh != nil && *li.FinalPrice <= *li.RangeHigh:
		return BudgetWithin
	default:
		return BudgetOver
	}
}

// Overbudget reports whether a finalized allowance exceeded its range.
func (li *LineItem) Overbudget() bool {
	return li.BudgetStatus() == BudgetOver
}

// OverageAmount is how far a finalized allowance exceeded its range.
func (li *LineItem) OverageAmount() int64 {
	if !li.Overbudget() || li.RangeHigh == nil {
		return 0
	}

	return *li.FinalPrice - *li.RangeHigh
}

// ComputeTotals folds the line items into quote-level range totals.
// Absent values count as zero.
func ComputeTotals(items []*LineItem) (low, high int64) {
	for _, li := range items {
		if li.RangeLow != nil {
			low += *li.RangeLow
		}

		if li.RangeHigh != nil {
			high += *li.RangeHigh
		}
	}

	return low, high
}
