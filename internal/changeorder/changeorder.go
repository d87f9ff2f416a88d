package changeorder

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/money"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

// Status is the lifecycle state of a change order.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusSigned   Status = "signed"
	StatusRejected Status = "rejected"
)

// Signature is the evidence captured when a client signs a change order.
type Signature struct {
	Image       string          `json:"signature_image"`
	SignedAt    string          `json:"signed_at"`
	SignerName  string          `json:"signer_name,omitempty"`
	SignerEmail string          `json:"signer_email,omitempty"`
	IPAddress   string          `json:"ip_address,omitempty"`
	Geolocation json.RawMessage `json:"geolocation,omitempty"`
}

// ChangeOrder is a priced amendment to a job. Fixed-amount orders carry
// Amount, positive or negative; time-and-materials orders carry an
// hourly rate instead and never contribute to the job's maintained
// total.
type ChangeOrder struct {
	ID       uuid.UUID
	JobID    uuid.UUID
	CONumber int
	Status   Status

	// QuoteID and LineItemID point back at what prompted the order.
	// Historical display only; nothing resolves through them.
	QuoteID    *uuid.UUID
	LineItemID *uuid.UUID

	Title       string
	Description string
	Category    quote.Category

	Amount             *int64
	IsTimeAndMaterials bool
	HourlyRate         *int64
	EstimatedHours     *float64

	DelaysSchedule bool
	DelayDays      *int

	Boilerplate     string
	ClientViewToken string

	SentAt    *time.Time
	ViewedAt  *time.Time
	SignedAt  *time.Time
	Signature *Signature

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Signed reports whether the order carries a captured signature.
func (co *ChangeOrder) Signed() bool {
	return co.SignedAt != nil && co.Signature != nil
}

// Number renders the per-job display number, CO-1 and so on.
func (co *ChangeOrder) Number() string {
	return fmt.Sprintf("CO-%d", co.CONumber)
}

// ScheduleImpactDisplay renders the schedule delay for documents.
func (co *ChangeOrder) ScheduleImpactDisplay() string {
	if !co.DelaysSchedule {
		return "No delay"
	}

	if co.DelayDays != nil {
		return fmt.Sprintf("Delays by %d days", *co.DelayDays)
	}

	return "Delays schedule"
}

// FormattedAmount renders the price for display. Fixed amounts always
// carry an explicit sign; time-and-materials orders show the rate.
func (co *ChangeOrder) FormattedAmount() string {
	if co.IsTimeAndMaterials {
		if co.HourlyRate == nil {
			return "T&M"
		}

		return fmt.Sprintf("T&M @ %s/hr", money.FormatUSD(*co.HourlyRate))
	}

	if co.Amount == nil {
		return ""
	}

	return money.FormatSignedUSD(*co.Amount)
}
