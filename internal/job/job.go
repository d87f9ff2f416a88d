package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Job is the execution record created when a quote is signed. The
// contracted totals and project address are snapshots taken at signing;
// later edits to the quote never flow through.
type Job struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	QuoteID   uuid.UUID
	ClientID  *uuid.UUID
	JobNumber string
	Status    Status

	// ClientViewToken is the share token for the portal job page,
	// generated once at creation and never rotated.
	ClientViewToken string

	ProjectAddress string
	ProjectCity    string
	ProjectState   string
	ProjectZipCode string

	ContractedTotalLow  int64
	ContractedTotalHigh int64

	// ChangeOrdersTotal is the maintained sum of signed fixed-amount
	// change orders, positive or negative.
	ChangeOrdersTotal int64

	Notes string

	StartedAt             *time.Time
	EstimatedCompletionAt *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Started reports whether work on the job has begun.
func (j *Job) Started() bool {
	return j.StartedAt != nil
}

// CurrentTotalLow is the contracted low adjusted by signed change orders.
func (j *Job) CurrentTotalLow() int64 {
	return j.ContractedTotalLow + j.ChangeOrdersTotal
}

// CurrentTotalHigh is the contracted high adjusted by signed change orders.
func (j *Job) CurrentTotalHigh() int64 {
	return j.ContractedTotalHigh + j.ChangeOrdersTotal
}

// ProjectFullAddress joins the populated address parts.
func (j *Job) ProjectFullAddress() string {
	var parts []string

	for _, p := range []string{j.ProjectAddress, j.ProjectCity, j.ProjectState, j.ProjectZipCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}
