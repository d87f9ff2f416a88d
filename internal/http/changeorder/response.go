package changeorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

type changeOrderResponse struct {
	ID                 uuid.UUID              `json:"id"`
	JobID              uuid.UUID              `json:"job_id"`
	QuoteID            *uuid.UUID             `json:"quote_id,omitempty"`
	LineItemID         *uuid.UUID             `json:"line_item_id,omitempty"`
	CONumber           int                    `json:"co_number"`
	Number             string                 `json:"number"`
	Status             changeorder.Status     `json:"status"`
	Title              string                 `json:"title"`
	Description        string                 `json:"description,omitempty"`
	Category           quote.Category         `json:"category"`
	Amount             *int64                 `json:"amount,omitempty"`
	FormattedAmount    string                 `json:"formatted_amount"`
	IsTimeAndMaterials bool                   `json:"is_time_and_materials"`
	HourlyRate         *int64                 `json:"hourly_rate,omitempty"`
	EstimatedHours     *float64               `json:"estimated_hours,omitempty"`
	DelaysSchedule     bool                   `json:"delays_schedule"`
	DelayDays          *int                   `json:"delay_days,omitempty"`
	ScheduleImpact     string                 `json:"schedule_impact"`
	Boilerplate        string                 `json:"boilerplate"`
	ClientViewToken    string                 `json:"client_view_token,omitempty"`
	SentAt             *time.Time             `json:"sent_at,omitempty"`
	ViewedAt           *time.Time             `json:"viewed_at,omitempty"`
	SignedAt           *time.Time             `json:"signed_at,omitempty"`
	Signature          *changeorder.Signature `json:"signature,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func toResponse(co *changeorder.ChangeOrder) changeOrderResponse {
	return changeOrderResponse{
		ID:                 co.ID,
		JobID:              co.JobID,
		QuoteID:            co.QuoteID,
		LineItemID:         co.LineItemID,
		CONumber:           co.CONumber,
		Number:             co.Number(),
		Status:             co.Status,
		Title:              co.Title,
		Description:        co.Description,
		Category:           co.Category,
		Amount:             co.Amount,
		FormattedAmount:    co.FormattedAmount(),
		IsTimeAndMaterials: co.IsTimeAndMaterials,
		HourlyRate:         co.HourlyRate,
		EstimatedHours:     co.EstimatedHours,
		DelaysSchedule:     co.DelaysSchedule,
		DelayDays:          co.DelayDays,
		ScheduleImpact:     co.ScheduleImpactDisplay(),
		Boilerplate:        co.Boilerplate,
		ClientViewToken:    co.ClientViewToken,
		SentAt:             co.SentAt,
		ViewedAt:           co.ViewedAt,
		SignedAt:           co.SignedAt,
		Signature:          co.Signature,
		CreatedAt:          co.CreatedAt,
		UpdatedAt:          co.UpdatedAt,
	}
}

func toResponseList(orders []*changeorder.ChangeOrder) []changeOrderResponse {
	resp := make([]changeOrderResponse, len(orders))
	for i, co := range orders {
		resp[i] = toResponse(co)
	}

	return resp
}
