// Package quote implements the quote lifecycle and its line item
// ledger. A quote moves draft -> sent -> viewed -> accepted, rejected,
// or expired; acceptance creates the job exactly once.
package quote

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/money"
	"github.com/rgoodwin/quoteforge/internal/template"
)

// Status is the lifecycle state of a quote.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Terminal reports whether the quote's own progression has ended.
// An accepted quote can still be duplicated into a new draft.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusExpired
}

// Signature is the evidence captured when a client signs, stored as a
// single structured blob.
type Signature struct {
	Image       string          `json:"signature_image"`
	SignedAt    string          `json:"signed_at"` // ISO-8601
	SignerName  string          `json:"signer_name,omitempty"`
	SignerEmail string          `json:"signer_email,omitempty"`
	IPAddress   string          `json:"ip_address,omitempty"`
	Geolocation json.RawMessage `json:"geolocation,omitempty"`
}

// Quote is a budget-range proposal for a remodeling project.
type Quote struct {
	ID               uuid.UUID
	CompanyID        uuid.UUID
	ClientID         *uuid.UUID
	QuoteNumber      string
	Status           Status
	TemplateType     template.Type
	ProjectSize      template.Size
	ProjectAddress   string
	ProjectCity      string
	ProjectState     string
	ProjectZipCode   string
	Notes            string
	Terms            string
	PaymentTerms     string
	TimelineEstimate string
	TotalRangeLow    int64
	TotalRangeHigh   int64
	ValidDays        *int
	ClientViewToken  string
	SentAt           *time.Time
	ViewedAt         *time.Time
	AcceptedAt       *time.Time
	SignedAt         *time.Time
	Signature        *Signature
	LineItems        []*LineItem
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// NumberPrefix derives the quote number prefix from the template type:
// K for kitchen, B for bathroom, C for custom.
func (q *Quote) NumberPrefix() string {
	if q.TemplateType == "" {
		return "Q"
	}

	return strings.ToUpper(string(q.TemplateType[0]))
}

// Signed reports whether signature evidence has been captured.
func (q *Quote) Signed() bool {
	return q.SignedAt != nil && q.Signature != nil
}

// ExpiredAt reports whether the quote's validity window has lapsed at
// the given instant. This is a read-time predicate, not a stored
// transition: a sent or viewed quote remains signable past its window
// unless the caller checks first.
func (q *Quote) ExpiredAt(now time.Time) bool {
	if q.ValidDays == nil || q.CreatedAt.IsZero() {
		return false
	}

	if q.Status == StatusAccepted || q.Signed() {
		return false
	}

	return q.CreatedAt.AddDate(0, 0, *q.ValidDays).Before(now)
}

// DaysUntilExpiry returns the whole days remaining in the validity
// window, negative once lapsed, or nil when no window is set.
func (q *Quote) DaysUntilExpiry(now time.Time) *int {
	if q.ValidDays == nil || q.CreatedAt.IsZero() {
		return nil
	}

	days := int(q.CreatedAt.AddDate(0, 0, *q.ValidDays).Sub(now).Hours() / 24)

	return &days
}

// TotalRange formats the quote's budget range for display.
func (q *Quote) TotalRange() string {
	return money.FormatRange(q.TotalRangeLow, q.TotalRangeHigh)
}

// ProjectFullAddress joins the present project address parts.
func (q *Quote) ProjectFullAddress() string {
	parts := make([]string, 0, 4)

	for _, p := range []string{q.ProjectAddress, q.ProjectCity, q.ProjectState, q.ProjectZipCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// AllowanceItems returns the items tracked against a suggested range.
func (q *Quote) AllowanceItems() []*LineItem {
	var items []*LineItem

	for _, li := range q.LineItems {
		if li.IsAllowance {
			items = append(items, li)
		}
	}

	return items
}
