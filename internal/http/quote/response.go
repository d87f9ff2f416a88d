package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/money"
	"github.com/rgoodwin/quoteforge/internal/quote"
	"github.com/rgoodwin/quoteforge/internal/template"
)

type quoteResponse struct {
	ID               uuid.UUID          `json:"id"`
	ClientID         *uuid.UUID         `json:"client_id,omitempty"`
	QuoteNumber      string             `json:"quote_number"`
	Status           quote.Status       `json:"status"`
	TemplateType     template.Type      `json:"template_type"`
	ProjectSize      template.Size      `json:"project_size"`
	ProjectAddress   string             `json:"project_address,omitempty"`
	ProjectCity      string             `json:"project_city,omitempty"`
	ProjectState     string             `json:"project_state,omitempty"`
	ProjectZipCode   string             `json:"project_zip_code,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Terms            string             `json:"terms,omitempty"`
	PaymentTerms     string             `json:"payment_terms,omitempty"`
	TimelineEstimate string             `json:"timeline_estimate,omitempty"`
	TotalRangeLow    int64              `json:"total_range_low"`
	TotalRangeHigh   int64              `json:"total_range_high"`
	FormattedTotal   string             `json:"formatted_total"`
	ValidDays        *int               `json:"valid_days,omitempty"`
	ClientViewToken  string             `json:"client_view_token,omitempty"`
	SentAt           *time.Time         `json:"sent_at,omitempty"`
	ViewedAt         *time.Time         `json:"viewed_at,omitempty"`
	AcceptedAt       *time.Time         `json:"accepted_at,omitempty"`
	SignedAt         *time.Time         `json:"signed_at,omitempty"`
	Signature        *quote.Signature   `json:"signature,omitempty"`
	LineItems        []lineItemResponse `json:"line_items,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at,omitempty"`
}

type lineItemResponse struct {
	ID              uuid.UUID             `json:"id"`
	Category        quote.Category        `json:"category"`
	Description     string                `json:"description"`
	QualityTier     *template.Tier        `json:"quality_tier,omitempty"`
	IsAllowance     bool                  `json:"is_allowance"`
	IsRange         bool                  `json:"is_range"`
	RangeLow        *int64                `json:"range_low,omitempty"`
	RangeHigh       *int64                `json:"range_high,omitempty"`
	FinalSelection  *string               `json:"final_selection,omitempty"`
	FinalPrice      *int64                `json:"final_price,omitempty"`
	SelectionStatus quote.SelectionStatus `json:"selection_status"`
	BudgetStatus    quote.BudgetStatus    `json:"budget_status"`
	OverageAmount   int64                 `json:"overage_amount,omitempty"`
	InternalNotes   string                `json:"internal_notes,omitempty"`
	SortOrder       int                   `json:"sort_order"`
}

func toResponse(q *quote.Quote) quoteResponse {
	resp := quoteResponse{
		ID:               q.ID,
		ClientID:         q.ClientID,
		QuoteNumber:      q.QuoteNumber,
		Status:           q.Status,
		TemplateType:     q.TemplateType,
		ProjectSize:      q.ProjectSize,
		ProjectAddress:   q.ProjectAddress,
		ProjectCity:      q.ProjectCity,
		ProjectState:     q.ProjectState,
		ProjectZipCode:   q.ProjectZipCode,
		Notes:            q.Notes,
		Terms:            q.Terms,
		PaymentTerms:     q.PaymentTerms,
		TimelineEstimate: q.TimelineEstimate,
		TotalRangeLow:    q.TotalRangeLow,
		TotalRangeHigh:   q.TotalRangeHigh,
		FormattedTotal:   money.FormatRange(q.TotalRangeLow, q.TotalRangeHigh),
		ValidDays:        q.ValidDays,
		ClientViewToken:  q.ClientViewToken,
		SentAt:           q.SentAt,
		ViewedAt:         q.ViewedAt,
		AcceptedAt:       q.AcceptedAt,
		SignedAt:         q.SignedAt,
		Signature:        q.Signature,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}

	for _, li := range q.LineItems {
		resp.LineItems = append(resp.LineItems, toLineItemResponse(li))
	}

	return resp
}

func toLineItemResponse(li *quote.LineItem) lineItemResponse {
	return lineItemResponse{
		ID:              li.ID,
		Category:        li.Category,
		Description:     li.Description,
		QualityTier:     li.QualityTier,
		IsAllowance:     li.IsAllowance,
		IsRange:         li.IsRange,
		RangeLow:        li.RangeLow,
		RangeHigh:       li.RangeHigh,
		FinalSelection:  li.FinalSelection,
		FinalPrice:      li.FinalPrice,
		SelectionStatus: li.SelectionStatus,
		BudgetStatus:    li.BudgetStatus(),
		OverageAmount:   li.OverageAmount(),
		SortOrder:       li.SortOrder,
		InternalNotes:   li.InternalNotes,
	}
}

func toResponseList(quotes []*quote.Quote) []quoteResponse {
	resp := make([]quoteResponse, len(quotes))
	for i, q := range quotes {
		resp[i] = toResponse(q)
	}

	return resp
}
