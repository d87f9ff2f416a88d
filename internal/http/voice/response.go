package voice

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/voice"
)

type sessionResponse struct {
	ID                uuid.UUID             `json:"id"`
	Purpose           voice.Purpose         `json:"purpose"`
	Status            voice.Status          `json:"status"`
	QuoteID           *uuid.UUID            `json:"quote_id,omitempty"`
	ChangeOrderID     *uuid.UUID            `json:"change_order_id,omitempty"`
	DurationSeconds   *int                  `json:"duration_seconds,omitempty"`
	FormattedDuration string                `json:"formatted_duration,omitempty"`
	Transcript        string                `json:"transcript,omitempty"`
	Extracted         *voice.Extraction     `json:"extracted,omitempty"`
	ConfidenceScore   *float64              `json:"confidence_score,omitempty"`
	ConfidenceLevel   voice.ConfidenceLevel `json:"confidence_level"`
	ErrorMessage      string                `json:"error_message,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func toResponse(s *voice.Session) sessionResponse {
	return sessionResponse{
		ID:                s.ID,
		Purpose:           s.Purpose,
		Status:            s.Status,
		QuoteID:           s.QuoteID,
		ChangeOrderID:     s.ChangeOrderID,
		DurationSeconds:   s.DurationSeconds,
		FormattedDuration: s.FormattedDuration(),
		Transcript:        s.Transcript,
		Extracted:         s.Extracted,
		ConfidenceScore:   s.ConfidenceScore,
		ConfidenceLevel:   s.ConfidenceLevel(),
		ErrorMessage:      s.ErrorMessage,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toResponseList(sessions []*voice.Session) []sessionResponse {
	resp := make([]sessionResponse, len(sessions))
	for i, s := range sessions {
		resp[i] = toResponse(s)
	}

	return resp
}
