package changeorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

// createAttempts bounds retries on number and token collisions.
const createAttempts = 3

var (
	ErrNotFound          = errors.New("change order not found")
	ErrInvalidTransition = errors.New("invalid change order status transition")
	ErrStale             = errors.New("change order modified concurrently")
	ErrAlreadySigned     = errors.New("change order already signed")
)

// ValidationError reports a rejected change order field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=changeorder
type Repository interface {
	CreateChangeOrder(ctx context.Context, co *ChangeOrder) error
	GetChangeOrder(ctx context.Context, companyID, id uuid.UUID) (*ChangeOrder, error)
	GetChangeOrderByToken(ctx context.Context, token string) (*ChangeOrder, error)
	ListChangeOrders(ctx context.Context, companyID, jobID uuid.UUID) ([]*ChangeOrder, error)
	UpdateChangeOrder(ctx context.Context, co *ChangeOrder) error
	DeleteChangeOrder(ctx context.Context, companyID, id uuid.UUID) error

	// NextCONumber returns max(co_number)+1 for the job, starting at 1.
	NextCONumber(ctx context.Context, jobID uuid.UUID) (int, error)

	// UpdateChangeOrderStatus applies a transition only while the
	// status still equals expect, returning ErrStale otherwise.
	UpdateChangeOrderStatus(ctx context.Context, id uuid.UUID, expect Status, upd StatusUpdate) error
}

// StatusUpdate is the atomic payload of a lifecycle transition.
type StatusUpdate struct {
	Status    Status
	SentAt    *time.Time
	ViewedAt  *time.Time
	SignedAt  *time.Time
	Signature *Signature
}

// Jobs scopes change orders to their parent job and maintains the
// job's signed change-order total. Satisfied by job.Service.
type Jobs interface {
	Get(ctx context.Context, companyID, id uuid.UUID) (*job.Job, error)
	RefreshChangeOrdersTotal(ctx context.Context, jobID uuid.UUID) (int64, error)
}

// Companies supplies the owning company's legal boilerplate for orders
// created without their own. Satisfied by company.Service.
type Companies interface {
	Get(ctx context.Context, id uuid.UUID) (*company.Company, error)
}

type Service struct {
	repo      Repository
	jobs      Jobs
	companies Companies
}

func NewService(repo Repository, jobs Jobs, companies Companies) *Service {
	return &Service{repo: repo, jobs: jobs, companies: companies}
}

type CreateParams struct {
	Title              string
	Description        string
	Category           quote.Category
	Amount             *int64
	IsTimeAndMaterials bool
	HourlyRate         *int64
	EstimatedHours     *float64
	DelaysSchedule     bool
	DelayDays          *int
	Boilerplate        string
	QuoteID            *uuid.UUID
	LineItemID         *uuid.UUID
}

func validateParams(params CreateParams) error {
	if params.Title == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}

	if params.Category != "" && !params.Category.Valid() {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", params.Category)}
	}

	if params.DelayDays != nil && *params.DelayDays < 0 {
		return &ValidationError{Field: "delay_days", Reason: "must not be negative"}
	}

	if params.IsTimeAndMaterials {
		if params.HourlyRate == nil {
			return &ValidationError{Field: "hourly_rate", Reason: "hourly rate is required for time and materials"}
		}

		if *params.HourlyRate < 0 {
			return &ValidationError{Field: "hourly_rate", Reason: "must not be negative"}
		}

		return nil
	}

	if params.Amount == nil {
		return &ValidationError{Field: "amount", Reason: "amount is required"}
	}

	return nil
}

// Create drafts a change order against an active or held job. Numbers
// are dense per job, starting at CO-1.
func (s *Service) Create(ctx context.Context, companyID, jobID uuid.UUID, params CreateParams) (*ChangeOrder, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	j, err := s.jobs.Get(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}

	if j.Status.Terminal() {
		return nil, fmt.Errorf("change order on %s job: %w", j.Status, ErrInvalidTransition)
	}

	co := &ChangeOrder{
		JobID:              jobID,
		Status:             StatusDraft,
		QuoteID:            params.QuoteID,
		LineItemID:         params.LineItemID,
		Title:              params.Title,
		Description:        params.Description,
		Category:           params.Category,
		Amount:             params.Amount,
		IsTimeAndMaterials: params.IsTimeAndMaterials,
		HourlyRate:         params.HourlyRate,
		EstimatedHours:     params.EstimatedHours,
		DelaysSchedule:     params.DelaysSchedule,
		DelayDays:          params.DelayDays,
		Boilerplate:        params.Boilerplate,
	}

	if co.Category == "" {
		co.Category = quote.CategoryOther
	}

	if co.IsTimeAndMaterials {
		co.Amount = nil
	}

	if co.Boilerplate == "" {
		c, err := s.companies.Get(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("resolving company boilerplate: %w", err)
		}

		co.Boilerplate = c.LegalBoilerplate
	}

	// A concurrent sibling can take the same max+1 number, and the
	// token index is global; regenerate both and retry on collision.
	for attempt := 0; attempt < createAttempts; attempt++ {
		var num int

		num, err = s.repo.NextCONumber(ctx, jobID)
		if err != nil {
			return nil, fmt.Errorf("deriving change order number: %w", err)
		}

		co.CONumber = num
		co.ClientViewToken = identity.NewToken()

		err = s.repo.CreateChangeOrder(ctx, co)
		if err == nil {
			return co, nil
		}

		if !errors.Is(err, identity.ErrNumberCollision) && !errors.Is(err, identity.ErrTokenCollision) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("creating change order after %d attempts: %w", createAttempts, err)
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*ChangeOrder, error) {
	return s.repo.GetChangeOrder(ctx, companyID, id)
}

// GetByToken resolves a client view token for the portal.
func (s *Service) GetByToken(ctx context.Context, token string) (*ChangeOrder, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetChangeOrderByToken(ctx, token)
}

func (s *Service) List(ctx context.Context, companyID, jobID uuid.UUID) ([]*ChangeOrder, error) {
	if _, err := s.jobs.Get(ctx, companyID, jobID); err != nil {
		return nil, err
	}

	return s.repo.ListChangeOrders(ctx, companyID, jobID)
}

type UpdateParams struct {
	Title              *string
	Description        *string
	Category           *quote.Category
	Amount             *int64
	IsTimeAndMaterials *bool
	HourlyRate         *int64
	EstimatedHours     *float64
	DelaysSchedule     *bool
	DelayDays          *int
	Boilerplate        *string
}

// Update edits an unsigned change order.
func (s *Service) Update(ctx context.Context, companyID, id uuid.UUID, upd UpdateParams) (*ChangeOrder, error) {
	co, err := s.repo.GetChangeOrder(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if co.Status == StatusSigned {
		return nil, ErrAlreadySigned
	}

	if upd.Title != nil {
		co.Title = *upd.Title
	}

	if upd.Description != nil {
		co.Description = *upd.Description
	}

	if upd.Category != nil {
		co.Category = *upd.Category
	}

	if upd.Amount != nil {
		co.Amount = upd.Amount
	}

	if upd.IsTimeAndMaterials != nil {
		co.IsTimeAndMaterials = *upd.IsTimeAndMaterials
	}

	if upd.HourlyRate != nil {
		co.HourlyRate = upd.HourlyRate
	}

	if upd.EstimatedHours != nil {
		co.EstimatedHours = upd.EstimatedHours
	}

	if upd.DelaysSchedule != nil {
		co.DelaysSchedule = *upd.DelaysSchedule
	}

	if upd.DelayDays != nil {
		co.DelayDays = upd.DelayDays
	}

	if upd.Boilerplate != nil {
		co.Boilerplate = *upd.Boilerplate
	}

	if err := validateParams(CreateParams{
		Title:              co.Title,
		Category:           co.Category,
		Amount:             co.Amount,
		IsTimeAndMaterials: co.IsTimeAndMaterials,
		HourlyRate:         co.HourlyRate,
		DelayDays:          co.DelayDays,
	}); err != nil {
		return nil, err
	}

	if co.IsTimeAndMaterials {
		co.Amount = nil
	}

	if err := s.repo.UpdateChangeOrder(ctx, co); err != nil {
		return nil, err
	}

	return co, nil
}

// Delete removes a draft change order.
func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	co, err := s.repo.GetChangeOrder(ctx, companyID, id)
	if err != nil {
		return err
	}

	if co.Status != StatusDraft {
		return fmt.Errorf("delete from %s: %w", co.Status, ErrInvalidTransition)
	}

	return s.repo.DeleteChangeOrder(ctx, companyID, id)
}

// MarkSent sends a draft change order to the client.
func (s *Service) MarkSent(ctx context.Context, companyID, id uuid.UUID) (*ChangeOrder, error) {
	co, err := s.repo.GetChangeOrder(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	switch co.Status {
	case StatusDraft:
		if err := s.repo.UpdateChangeOrderStatus(ctx, co.ID, StatusDraft, StatusUpdate{Status: StatusSent, SentAt: &now}); err != nil {
			return nil, err
		}

		co.Status = StatusSent
	case StatusSent, StatusViewed:
		if err := s.repo.UpdateChangeOrderStatus(ctx, co.ID, co.Status, StatusUpdate{Status: co.Status, SentAt: &now}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("send from %s: %w", co.Status, ErrInvalidTransition)
	}

	co.SentAt = &now

	return co, nil
}

// MarkViewed records the client's first view. Only sent orders
// transition; any other status is a no-op.
func (s *Service) MarkViewed(ctx context.Context, co *ChangeOrder) (*ChangeOrder, error) {
	if co.Status != StatusSent {
		return co, nil
	}

	now := time.Now()
	if err := s.repo.UpdateChangeOrderStatus(ctx, co.ID, StatusSent, StatusUpdate{Status: StatusViewed, ViewedAt: &now}); err != nil {
		if errors.Is(err, ErrStale) {
			return s.repo.GetChangeOrderByToken(ctx, co.ClientViewToken)
		}

		return nil, err
	}

	co.Status = StatusViewed
	co.ViewedAt = &now

	return co, nil
}

// Reject marks any unsigned change order rejected.
func (s *Service) Reject(ctx context.Context, companyID, id uuid.UUID) (*ChangeOrder, error) {
	co, err := s.repo.GetChangeOrder(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if co.Status == StatusSigned {
		return nil, ErrAlreadySigned
	}

	if err := s.repo.UpdateChangeOrderStatus(ctx, co.ID, co.Status, StatusUpdate{Status: StatusRejected}); err != nil {
		return nil, err
	}

	co.Status = StatusRejected

	return co, nil
}

type SignParams struct {
	SignatureImage string
	SignerName     string
	SignerEmail    string
	SignerIP       string
	SignerGeo      json.RawMessage
}

// SignByToken signs the change order a portal token resolves to.
func (s *Service) SignByToken(ctx context.Context, token string, params SignParams) (*ChangeOrder, error) {
	co, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.sign(ctx, co, params)
}

// Sign accepts the change order with the captured signature and folds
// a fixed amount into the job's maintained total. Allowed from any
// status except signed.
func (s *Service) Sign(ctx context.Context, companyID, id uuid.UUID, params SignParams) (*ChangeOrder, error) {
	co, err := s.repo.GetChangeOrder(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	return s.sign(ctx, co, params)
}

func (s *Service) sign(ctx context.Context, co *ChangeOrder, params SignParams) (*ChangeOrder, error) {
	if params.SignatureImage == "" {
		return nil, &ValidationError{Field: "signature_image", Reason: "signature is required"}
	}

	if co.Status == StatusSigned {
		return nil, ErrAlreadySigned
	}

	now := time.Now()
	sig := &Signature{
		Image:       params.SignatureImage,
		SignedAt:    now.UTC().Format(time.RFC3339),
		SignerName:  params.SignerName,
		SignerEmail: params.SignerEmail,
		IPAddress:   params.SignerIP,
		Geolocation: params.SignerGeo,
	}

	upd := StatusUpdate{
		Status:    StatusSigned,
		SignedAt:  &now,
		Signature: sig,
	}
	if err := s.repo.UpdateChangeOrderStatus(ctx, co.ID, co.Status, upd); err != nil {
		return nil, err
	}

	co.Status = StatusSigned
	co.SignedAt = &now
	co.Signature = sig

	if _, err := s.jobs.RefreshChangeOrdersTotal(ctx, co.JobID); err != nil {
		return nil, fmt.Errorf("refreshing job totals: %w", err)
	}

	return co, nil
}
