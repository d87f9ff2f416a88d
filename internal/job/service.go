package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

var (
	ErrNotFound          = errors.New("job not found")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrStale             = errors.New("job modified concurrently")

	// ErrNotSigned rejects job creation from a quote without a captured
	// signature.
	ErrNotSigned = errors.New("quote is not signed")
)

// numberAttempts bounds retries on job number collisions.
const numberAttempts = 3

// jobNumberPrefix marks job numbers apart from quote numbers.
const jobNumberPrefix = "J"

//go:generate mockgen -source=service.go -destination=service_mock.go -package=job
type Repository interface {
	// CreateJob inserts the job. A second job for the same quote fails
	// with an error wrapping quote.ErrJobExists.
	CreateJob(ctx context.Context, j *Job) error
	GetJob(ctx context.Context, companyID, id uuid.UUID) (*Job, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (*Job, error)
	GetJobByQuote(ctx context.Context, companyID, quoteID uuid.UUID) (*Job, error)
	GetJobByToken(ctx context.Context, token string) (*Job, error)
	ListJobs(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]*Job, error)

	NextSequence(ctx context.Context, pattern string) (int, error)

	// UpdateJobDetails persists the mutable fields: project address,
	// notes, and the estimated completion date.
	UpdateJobDetails(ctx context.Context, j *Job) error

	// UpdateJobStatus applies a transition only while the status still
	// equals expect, returning ErrStale otherwise.
	UpdateJobStatus(ctx context.Context, id uuid.UUID, expect Status, upd StatusUpdate) error

	// RecalculateChangeOrdersTotal refolds the maintained sum of signed
	// fixed-amount change orders under a per-job advisory lock.
	RecalculateChangeOrdersTotal(ctx context.Context, jobID uuid.UUID) (int64, error)
}

// StatusUpdate is the atomic payload of a lifecycle transition.
type StatusUpdate struct {
	Status      Status
	StartedAt   *time.Time
	CompletedAt *time.Time
}

type ListFilter struct {
	Status *Status
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateFromQuote materializes the job for a signed quote, snapshotting
// the project address and the quote's totals at signing. The unique
// index on quote_id makes this exactly-once; a duplicate surfaces as an
// error wrapping quote.ErrJobExists.
func (s *Service) CreateFromQuote(ctx context.Context, q *quote.Quote) error {
	if !q.Signed() {
		return ErrNotSigned
	}

	now := time.Now()
	j := &Job{
		CompanyID:           q.CompanyID,
		QuoteID:             q.ID,
		ClientID:            q.ClientID,
		Status:              StatusActive,
		ProjectAddress:      q.ProjectAddress,
		ProjectCity:         q.ProjectCity,
		ProjectState:        q.ProjectState,
		ProjectZipCode:      q.ProjectZipCode,
		ContractedTotalLow:  q.TotalRangeLow,
		ContractedTotalHigh: q.TotalRangeHigh,
		Notes:               q.Notes,
	}

	pattern := jobNumberPrefix + now.Format("0601")

	var err error

	for attempt := 0; attempt < numberAttempts; attempt++ {
		var seq int

		seq, err = s.repo.NextSequence(ctx, pattern)
		if err != nil {
			return fmt.Errorf("deriving job sequence: %w", err)
		}

		j.JobNumber = identity.DocumentNumber(jobNumberPrefix, now, seq)
		j.ClientViewToken = identity.NewToken()

		err = s.repo.CreateJob(ctx, j)
		if err == nil {
			return nil
		}

		if !errors.Is(err, identity.ErrNumberCollision) && !errors.Is(err, identity.ErrTokenCollision) {
			return err
		}
	}

	return fmt.Errorf("creating job after %d attempts: %w", numberAttempts, err)
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Job, error) {
	return s.repo.GetJob(ctx, companyID, id)
}

func (s *Service) GetByQuote(ctx context.Context, companyID, quoteID uuid.UUID) (*Job, error) {
	return s.repo.GetJobByQuote(ctx, companyID, quoteID)
}

// GetByToken resolves the portal share token. An unknown token is
// indistinguishable from a missing job.
func (s *Service) GetByToken(ctx context.Context, token string) (*Job, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetJobByToken(ctx, token)
}

func (s *Service) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]*Job, error) {
	return s.repo.ListJobs(ctx, companyID, filter)
}

// Start records the day work begins and reactivates the job if it was
// held. Allowed from any non-terminal status; starting again refreshes
// the date.
func (s *Service) Start(ctx context.Context, companyID, id uuid.UUID) (*Job, error) {
	j, err := s.repo.GetJob(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if j.Status.Terminal() {
		return nil, fmt.Errorf("start from %s: %w", j.Status, ErrInvalidTransition)
	}

	now := time.Now()
	if err := s.repo.UpdateJobStatus(ctx, j.ID, j.Status, StatusUpdate{Status: StatusActive, StartedAt: &now}); err != nil {
		return nil, err
	}

	j.Status = StatusActive
	j.StartedAt = &now

	return j, nil
}

type UpdateParams struct {
	ProjectAddress        *string
	ProjectCity           *string
	ProjectState          *string
	ProjectZipCode        *string
	Notes                 *string
	EstimatedCompletionAt *time.Time
}

// Update edits the job's mutable details. Contracted totals and the
// snapshot identity never change after creation.
func (s *Service) Update(ctx context.Context, companyID, id uuid.UUID, upd UpdateParams) (*Job, error) {
	j, err := s.repo.GetJob(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if upd.ProjectAddress != nil {
		j.ProjectAddress = *upd.ProjectAddress
	}

	if upd.ProjectCity != nil {
		j.ProjectCity = *upd.ProjectCity
	}

	if upd.ProjectState != nil {
		j.ProjectState = *upd.ProjectState
	}

	if upd.ProjectZipCode != nil {
		j.ProjectZipCode = *upd.ProjectZipCode
	}

	if upd.Notes != nil {
		j.Notes = *upd.Notes
	}

	if upd.EstimatedCompletionAt != nil {
		j.EstimatedCompletionAt = upd.EstimatedCompletionAt
	}

	if err := s.repo.UpdateJobDetails(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// Hold pauses an active job.
func (s *Service) Hold(ctx context.Context, companyID, id uuid.UUID) (*Job, error) {
	return s.transition(ctx, companyID, id, StatusActive, StatusOnHold)
}

// Resume reactivates a held job.
func (s *Service) Resume(ctx context.Context, companyID, id uuid.UUID) (*Job, error) {
	return s.transition(ctx, companyID, id, StatusOnHold, StatusActive)
}

// Complete closes out a job from either working state.
func (s *Service) Complete(ctx context.Context, companyID, id uuid.UUID) (*Job, error) {
	q, err := s.repo.GetJob(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if q.Status.Terminal() {
		return nil, fmt.Errorf("complete from %s: %w", q.Status, ErrInvalidTransition)
	}

	now := time.Now()
	if err := s.repo.UpdateJobStatus(ctx, q.ID, q.Status, StatusUpdate{Status: StatusCompleted, CompletedAt: &now}); err != nil {
		return nil, err
	}

	q.Status = StatusCompleted
	q.CompletedAt = &now

	return q, nil
}

// Cancel abandons any non-terminal job.
func (s *Service) Cancel(ctx context.Context, companyID, id uuid.UUID) (*Job, error) {
	q, err := s.repo.GetJob(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if q.Status.Terminal() {
		return nil, fmt.Errorf("cancel from %s: %w", q.Status, ErrInvalidTransition)
	}

	if err := s.repo.UpdateJobStatus(ctx, q.ID, q.Status, StatusUpdate{Status: StatusCancelled}); err != nil {
		return nil, err
	}

	q.Status = StatusCancelled

	return q, nil
}

func (s *Service) transition(ctx context.Context, companyID, id uuid.UUID, from, to Status) (*Job, error) {
	j, err := s.repo.GetJob(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if j.Status != from {
		return nil, fmt.Errorf("%s from %s: %w", to, j.Status, ErrInvalidTransition)
	}

	if err := s.repo.UpdateJobStatus(ctx, j.ID, from, StatusUpdate{Status: to}); err != nil {
		return nil, err
	}

	j.Status = to

	return j, nil
}

// RecalculateChangeOrdersTotal refolds the job's signed change-order
// sum and returns the refreshed job.
func (s *Service) RecalculateChangeOrdersTotal(ctx context.Context, companyID, jobID uuid.UUID) (*Job, error) {
	j, err := s.repo.GetJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.RecalculateChangeOrdersTotal(ctx, jobID)
	if err != nil {
		return nil, err
	}

	j.ChangeOrdersTotal = total

	return j, nil
}

// GetByID looks a job up without company scope. Portal flows reach
// jobs through a change order resolved by its own share token, which
// already proves the caller may see it.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Job, error) {
	return s.repo.GetJobByID(ctx, id)
}

// RefreshChangeOrdersTotal refolds the maintained sum by job id alone.
// Change-order signing calls this, including the portal path where no
// company scope is in hand; the change order was already resolved
// through its own token.
func (s *Service) RefreshChangeOrdersTotal(ctx context.Context, jobID uuid.UUID) (int64, error) {
	return s.repo.RecalculateChangeOrdersTotal(ctx, jobID)
}
