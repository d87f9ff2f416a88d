package portal

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/money"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

// The portal views deliberately carry less than the contractor API:
// no internal notes, no suggested ranges, no company-side identifiers.

type clientResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

func toClientResponse(c *client.Client) clientResponse {
	return clientResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}

type quoteView struct {
	QuoteNumber      string         `json:"quote_number"`
	Status           quote.Status   `json:"status"`
	ProjectAddress   string         `json:"project_address,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	Terms            string         `json:"terms,omitempty"`
	PaymentTerms     string         `json:"payment_terms,omitempty"`
	TimelineEstimate string         `json:"timeline_estimate,omitempty"`
	FormattedTotal   string         `json:"formatted_total"`
	LineItems        []lineItemView `json:"line_items"`
	SentAt           *time.Time     `json:"sent_at,omitempty"`
	SignedAt         *time.Time     `json:"signed_at,omitempty"`
}

type lineItemView struct {
	Category    quote.Category `json:"category"`
	Description string         `json:"description"`
	IsAllowance bool           `json:"is_allowance"`
	Price       string         `json:"price,omitempty"`
}

func toQuoteView(q *quote.Quote) quoteView {
	view := quoteView{
		QuoteNumber:      q.QuoteNumber,
		Status:           q.Status,
		ProjectAddress:   q.ProjectFullAddress(),
		Notes:            q.Notes,
		Terms:            q.Terms,
		PaymentTerms:     q.PaymentTerms,
		TimelineEstimate: q.TimelineEstimate,
		FormattedTotal:   money.FormatRange(q.TotalRangeLow, q.TotalRangeHigh),
		LineItems:        []lineItemView{},
		SentAt:           q.SentAt,
		SignedAt:         q.SignedAt,
	}

	for _, li := range q.LineItems {
		item := lineItemView{
			Category:    li.Category,
			Description: li.Description,
			IsAllowance: li.IsAllowance,
		}

		switch {
		case li.FinalPrice != nil:
			item.Price = money.FormatUSD(*li.FinalPrice)
		case li.RangeLow != nil && li.RangeHigh != nil && *li.RangeLow != *li.RangeHigh:
			item.Price = money.FormatRange(*li.RangeLow, *li.RangeHigh)
		case li.RangeLow != nil:
			item.Price = money.FormatUSD(*li.RangeLow)
		}

		view.LineItems = append(view.LineItems, item)
	}

	return view
}

type jobView struct {
	JobNumber       string            `json:"job_number"`
	Status          job.Status        `json:"status"`
	ProjectAddress  string            `json:"project_address,omitempty"`
	ContractedRange string            `json:"contracted_range"`
	CurrentRange    string            `json:"current_range"`
	ChangeOrders    []changeOrderView `json:"change_orders"`
	StartedAt       *time.Time        `json:"started_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
}

func toJobView(j *job.Job, orders []*changeorder.ChangeOrder) jobView {
	view := jobView{
		JobNumber:       j.JobNumber,
		Status:          j.Status,
		ProjectAddress:  j.ProjectFullAddress(),
		ContractedRange: money.FormatRange(j.ContractedTotalLow, j.ContractedTotalHigh),
		CurrentRange:    money.FormatRange(j.CurrentTotalLow(), j.CurrentTotalHigh()),
		ChangeOrders:    []changeOrderView{},
		StartedAt:       j.StartedAt,
		CompletedAt:     j.CompletedAt,
	}

	for _, co := range orders {
		view.ChangeOrders = append(view.ChangeOrders, toChangeOrderView(co))
	}

	return view
}

type changeOrderView struct {
	Number          string             `json:"number"`
	Status          changeorder.Status `json:"status"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	FormattedAmount string             `json:"formatted_amount"`
	ScheduleImpact  string             `json:"schedule_impact"`
	Boilerplate     string             `json:"boilerplate"`
	SentAt          *time.Time         `json:"sent_at,omitempty"`
	SignedAt        *time.Time         `json:"signed_at,omitempty"`
}

func toChangeOrderView(co *changeorder.ChangeOrder) changeOrderView {
	return changeOrderView{
		Number:          co.Number(),
		Status:          co.Status,
		Title:           co.Title,
		Description:     co.Description,
		FormattedAmount: co.FormattedAmount(),
		ScheduleImpact:  co.ScheduleImpactDisplay(),
		Boilerplate:     co.Boilerplate,
		SentAt:          co.SentAt,
		SignedAt:        co.SignedAt,
	}
}
