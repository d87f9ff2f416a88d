package voice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Purpose is what the recorded note is meant to produce.
type Purpose string

const (
	PurposeQuoteCreation  Purpose = "quote_creation"
	PurposeChangeOrder    Purpose = "change_order"
	PurposeLineItemUpdate Purpose = "line_item_update"
)

func (p Purpose) Valid() bool {
	switch p {
	case PurposeQuoteCreation, PurposeChangeOrder, PurposeLineItemUpdate:
		return true
	}

	return false
}

// Status is the processing state of a voice session.
type Status string

const (
	StatusRecording  Status = "recording"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// ConfidenceLevel buckets an extraction confidence score for display.
type ConfidenceLevel string

const (
	ConfidenceHigh    ConfidenceLevel = "high"
	ConfidenceMedium  ConfidenceLevel = "medium"
	ConfidenceLow     ConfidenceLevel = "low"
	ConfidenceUnknown ConfidenceLevel = "unknown"
)

// Session is one recorded contractor note and everything derived from
// it. The audio itself lives in object storage under AudioKey.
type Session struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	Purpose       Purpose
	Status        Status
	QuoteID       *uuid.UUID
	ChangeOrderID *uuid.UUID

	AudioKey         string
	AudioContentType string
	DurationSeconds  *int

	Transcript      string
	Extracted       *Extraction
	ConfidenceScore *float64
	ErrorMessage    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfidenceLevel buckets the session's score: 0.85 and up is high,
// 0.60 and up is medium, anything lower is low.
func (s *Session) ConfidenceLevel() ConfidenceLevel {
	if s.ConfidenceScore == nil {
		return ConfidenceUnknown
	}

	switch {
	case *s.ConfidenceScore >= 0.85:
		return ConfidenceHigh
	case *s.ConfidenceScore >= 0.60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// FormattedDuration renders the recording length, "2m 15s" or "45s".
func (s *Session) FormattedDuration() string {
	if s.DurationSeconds == nil {
		return ""
	}

	minutes := *s.DurationSeconds / 60
	seconds := *s.DurationSeconds % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}
