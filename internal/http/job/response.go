package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/money"
)

type jobResponse struct {
	ID                    uuid.UUID  `json:"id"`
	QuoteID               uuid.UUID  `json:"quote_id"`
	ClientID              *uuid.UUID `json:"client_id,omitempty"`
	JobNumber             string     `json:"job_number"`
	Status                job.Status `json:"status"`
	ClientViewToken       string     `json:"client_view_token"`
	ProjectAddress        string     `json:"project_address,omitempty"`
	ProjectCity           string     `json:"project_city,omitempty"`
	ProjectState          string     `json:"project_state,omitempty"`
	ProjectZipCode        string     `json:"project_zip_code,omitempty"`
	ContractedTotalLow    int64      `json:"contracted_total_low"`
	ContractedTotalHigh   int64      `json:"contracted_total_high"`
	ChangeOrdersTotal     int64      `json:"change_orders_total"`
	CurrentTotalLow       int64      `json:"current_total_low"`
	CurrentTotalHigh      int64      `json:"current_total_high"`
	FormattedTotal        string     `json:"formatted_total"`
	Notes                 string     `json:"notes,omitempty"`
	StartedAt             *time.Time `json:"started_at,omitempty"`
	EstimatedCompletionAt *time.Time `json:"estimated_completion_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func toResponse(j *job.Job) jobResponse {
	return jobResponse{
		ID:                    j.ID,
		QuoteID:               j.QuoteID,
		ClientID:              j.ClientID,
		JobNumber:             j.JobNumber,
		Status:                j.Status,
		ClientViewToken:       j.ClientViewToken,
		ProjectAddress:        j.ProjectAddress,
		ProjectCity:           j.ProjectCity,
		ProjectState:          j.ProjectState,
		ProjectZipCode:        j.ProjectZipCode,
		ContractedTotalLow:    j.ContractedTotalLow,
		ContractedTotalHigh:   j.ContractedTotalHigh,
		ChangeOrdersTotal:     j.ChangeOrdersTotal,
		CurrentTotalLow:       j.CurrentTotalLow(),
		CurrentTotalHigh:      j.CurrentTotalHigh(),
		FormattedTotal:        money.FormatRange(j.CurrentTotalLow(), j.CurrentTotalHigh()),
		Notes:                 j.Notes,
		StartedAt:             j.StartedAt,
		EstimatedCompletionAt: j.EstimatedCompletionAt,
		CompletedAt:           j.CompletedAt,
		CreatedAt:             j.CreatedAt,
		UpdatedAt:             j.UpdatedAt,
	}
}

func toResponseList(jobs []*job.Job) []jobResponse {
	resp := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = toResponse(j)
	}

	return resp
}
