package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/template"
)

// numberAttempts bounds retries when a generated quote number or token
// collides with a concurrent creation.
const numberAttempts = 3

//go:generate mockgen -source=service.go -destination=service_mock.go -package=quote
type Repository interface {
	CreateQuote(ctx context.Context, q *Quote, items []*LineItem) error
	GetQuote(ctx context.Context, companyID, id uuid.UUID) (*Quote, error)
	GetQuoteByToken(ctx context.Context, token string) (*Quote, error)
	ListQuotes(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]*Quote, error)
	UpdateQuote(ctx context.Context, q *Quote) error
	DeleteQuote(ctx context.Context, companyID, id uuid.UUID) error

	// NextSequence returns count(existing numbers matching pattern%)+1
	// for the company. Not atomic; the unique index on quote_number is
	// the real guard and collisions surface as ErrNumberCollision.
	NextSequence(ctx context.Context, pattern string) (int, error)

	// UpdateQuoteStatus applies a transition only while the status
	// still equals expect, returning ErrStale otherwise.
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, expect Status, upd StatusUpdate) error

	CreateLineItem(ctx context.Context, li *LineItem) error
	GetLineItem(ctx context.Context, quoteID, id uuid.UUID) (*LineItem, error)
	UpdateLineItem(ctx context.Context, li *LineItem) error
	DeleteLineItem(ctx context.Context, quoteID, id uuid.UUID) error
	MaxSortOrder(ctx context.Context, quoteID uuid.UUID) (int, error)
	ReorderLineItems(ctx context.Context, quoteID uuid.UUID, ids []uuid.UUID) error

	// RecalculateTotals refolds the quote's totals from its current
	// line items inside a per-quote advisory lock, so concurrent child
	// writes cannot leave a stale aggregate.
	RecalculateTotals(ctx context.Context, quoteID uuid.UUID) (low, high int64, err error)
}

// StatusUpdate is the atomic payload of a lifecycle transition.
type StatusUpdate struct {
	Status     Status
	SentAt     *time.Time
	ViewedAt   *time.Time
	AcceptedAt *time.Time
	SignedAt   *time.Time
	Signature  *Signature
}

// TemplateResolver supplies the template a new quote seeds from.
type TemplateResolver interface {
	Resolve(ctx context.Context, companyID uuid.UUID, templateID *uuid.UUID, t template.Type) (*template.Template, error)
}

// JobCreator turns a signed quote into a job. Implementations return
// an error wrapping ErrJobExists when the quote already has one.
type JobCreator interface {
	CreateFromQuote(ctx context.Context, q *Quote) error
}

type Service struct {
	repo      Repository
	templates TemplateResolver
	jobs      JobCreator
}

func NewService(repo Repository, templates TemplateResolver, jobs JobCreator) *Service {
	return &Service{repo: repo, templates: templates, jobs: jobs}
}

type ListFilter struct {
	Status *Status
}

type CreateParams struct {
	ClientID         *uuid.UUID
	TemplateType     template.Type
	TemplateID       *uuid.UUID
	ProjectSize      template.Size
	ProjectAddress   string
	ProjectCity      string
	ProjectState     string
	ProjectZipCode   string
	Notes            string
	Terms            string
	PaymentTerms     string
	TimelineEstimate string
	ValidDays        *int
	Items            []LineItemParams
}

type LineItemParams struct {
	Category           Category
	Description        string
	QualityTier        *template.Tier
	IsAllowance        bool
	IsRange            bool
	RangeLow           *int64
	RangeHigh          *int64
	SuggestedRangeLow  *int64
	SuggestedRangeHigh *int64
	FinalSelection     *string
	FinalPrice         *int64
	InternalNotes      string
	SortOrder          int
}

// Create builds a new draft quote. When no explicit items are given
// the resolved template seeds one line item per configured category at
// the quote's project size.
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, params CreateParams) (*Quote, error) {
	if params.TemplateType == "" {
		params.TemplateType = template.TypeKitchen
	}

	if params.ProjectSize == "" {
		params.ProjectSize = template.SizeMedium
	}

	if params.ValidDays != nil && *params.ValidDays <= 0 {
		return nil, &ValidationError{Field: "valid_days", Reason: "must be greater than zero"}
	}

	q := &Quote{
		CompanyID:        companyID,
		ClientID:         params.ClientID,
		Status:           StatusDraft,
		TemplateType:     params.TemplateType,
		ProjectSize:      params.ProjectSize,
		ProjectAddress:   params.ProjectAddress,
		ProjectCity:      params.ProjectCity,
		ProjectState:     params.ProjectState,
		ProjectZipCode:   params.ProjectZipCode,
		Notes:            params.Notes,
		Terms:            params.Terms,
		PaymentTerms:     params.PaymentTerms,
		TimelineEstimate: params.TimelineEstimate,
		ValidDays:        params.ValidDays,
	}

	items, err := s.buildItems(ctx, companyID, params)
	if err != nil {
		return nil, err
	}

	q.TotalRangeLow, q.TotalRangeHigh = ComputeTotals(items)

	if err := s.createWithFreshIdentity(ctx, q, items); err != nil {
		return nil, err
	}

	q.LineItems = items

	return q, nil
}

func (s *Service) buildItems(ctx context.Context, companyID uuid.UUID, params CreateParams) ([]*LineItem, error) {
	if len(params.Items) > 0 {
		items := make([]*LineItem, 0, len(params.Items))

		for i, p := range params.Items {
			li := lineItemFromParams(p)
			if li.SortOrder == 0 {
				li.SortOrder = i + 1
			}

			li.Normalize()

			if err := li.Validate(); err != nil {
				return nil, err
			}

			items = append(items, li)
		}

		return items, nil
	}

	tpl, err := s.templates.Resolve(ctx, companyID, params.TemplateID, params.TemplateType)
	if err != nil {
		return nil, fmt.Errorf("resolving template: %w", err)
	}

	if tpl == nil {
		return nil, nil
	}

	var items []*LineItem

	for _, seed := range tpl.BuildSeeds(params.ProjectSize) {
		if seed.RangeLow == nil && seed.RangeHigh == nil {
			// Unconfigured range: leave the item out rather than
			// fabricating a zero-value range.
			continue
		}

		items = append(items, &LineItem{
			Category:           Category(seed.Category),
			Description:        seed.Description,
			QualityTier:        seed.QualityTier,
			IsAllowance:        seed.IsAllowance,
			IsRange:            true,
			RangeLow:           seed.RangeLow,
			RangeHigh:          seed.RangeHigh,
			SuggestedRangeLow:  seed.SuggestedRangeLow,
			SuggestedRangeHigh: seed.SuggestedRangeHigh,
			SelectionStatus:    SelectionPending,
			SortOrder:          seed.SortOrder,
		})
	}

	return items, nil
}

func lineItemFromParams(p LineItemParams) *LineItem {
	return &LineItem{
		Category:           p.Category,
		Description:        p.Description,
		QualityTier:        p.QualityTier,
		IsAllowance:        p.IsAllowance,
		IsRange:            p.IsRange,
		RangeLow:           p.RangeLow,
		RangeHigh:          p.RangeHigh,
		SuggestedRangeLow:  p.SuggestedRangeLow,
		SuggestedRangeHigh: p.SuggestedRangeHigh,
		FinalSelection:     p.FinalSelection,
		FinalPrice:         p.FinalPrice,
		SelectionStatus:    SelectionPending,
		InternalNotes:      p.InternalNotes,
		SortOrder:          p.SortOrder,
	}
}

// createWithFreshIdentity generates the number and token, retrying on
// uniqueness collisions with regenerated values. A collision is never
// resolved by suffixing.
func (s *Service) createWithFreshIdentity(ctx context.Context, q *Quote, items []*LineItem) error {
	now := time.Now()
	pattern := q.NumberPrefix() + now.Format("0601")

	var err error

	for attempt := 0; attempt < numberAttempts; attempt++ {
		var seq int

		seq, err = s.repo.NextSequence(ctx, pattern)
		if err != nil {
			return fmt.Errorf("deriving quote sequence: %w", err)
		}

		q.QuoteNumber = identity.DocumentNumber(q.NumberPrefix(), now, seq)
		q.ClientViewToken = identity.NewToken()

		err = s.repo.CreateQuote(ctx, q, items)
		if err == nil {
			return nil
		}

		if !errors.Is(err, identity.ErrNumberCollision) && !errors.Is(err, identity.ErrTokenCollision) {
			return err
		}
	}

	return fmt.Errorf("creating quote after %d attempts: %w", numberAttempts, err)
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Quote, error) {
	return s.repo.GetQuote(ctx, companyID, id)
}

// GetByToken resolves a client view token for the portal. Unknown
// tokens yield ErrNotFound, never partial data.
func (s *Service) GetByToken(ctx context.Context, token string) (*Quote, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetQuoteByToken(ctx, token)
}

func (s *Service) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]*Quote, error) {
	return s.repo.ListQuotes(ctx, companyID, filter)
}

// Update saves editable quote fields and refolds totals, since a save
// always recomputes the aggregate.
func (s *Service) Update(ctx context.Context, q *Quote) (*Quote, error) {
	if q.ValidDays != nil && *q.ValidDays <= 0 {
		return nil, &ValidationError{Field: "valid_days", Reason: "must be greater than zero"}
	}

	if err := s.repo.UpdateQuote(ctx, q); err != nil {
		return nil, err
	}

	low, high, err := s.repo.RecalculateTotals(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	q.TotalRangeLow, q.TotalRangeHigh = low, high

	return q, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.DeleteQuote(ctx, companyID, id)
}

// AddLineItem validates and appends an item, assigning the next dense
// sort position when none is given, then refolds the quote totals.
func (s *Service) AddLineItem(ctx context.Context, companyID, quoteID uuid.UUID, params LineItemParams) (*LineItem, error) {
	q, err := s.repo.GetQuote(ctx, companyID, quoteID)
	if err != nil {
		return nil, err
	}

	li := lineItemFromParams(params)
	li.QuoteID = q.ID
	li.Normalize()

	if err := li.Validate(); err != nil {
		return nil, err
	}

	if li.SortOrder == 0 {
		maxOrder, err := s.repo.MaxSortOrder(ctx, q.ID)
		if err != nil {
			return nil, err
		}

		li.SortOrder = maxOrder + 1
	}

	if err := s.repo.CreateLineItem(ctx, li); err != nil {
		return nil, err
	}

	if _, _, err := s.repo.RecalculateTotals(ctx, q.ID); err != nil {
		return nil, err
	}

	return li, nil
}

type LineItemUpdate struct {
	Description     *string
	QualityTier     *template.Tier
	IsAllowance     *bool
	IsRange         *bool
	RangeLow        *int64
	RangeHigh       *int64
	FinalSelection  *string
	FinalPrice      *int64
	SelectionStatus *SelectionStatus
	InternalNotes   *string
}

func (s *Service) UpdateLineItem(ctx context.Context, companyID, quoteID, itemID uuid.UUID, upd LineItemUpdate) (*LineItem, error) {
	if _, err := s.repo.GetQuote(ctx, companyID, quoteID); err != nil {
		return nil, err
	}

	li, err := s.repo.GetLineItem(ctx, quoteID, itemID)
	if err != nil {
		return nil, err
	}

	if upd.Description != nil {
		li.Description = *upd.Description
	}

	if upd.QualityTier != nil {
		li.QualityTier = upd.QualityTier
	}

	if upd.IsAllowance != nil {
		li.IsAllowance = *upd.IsAllowance
	}

	if upd.IsRange != nil {
		li.IsRange = *upd.IsRange
	}

	if upd.RangeLow != nil {
		li.RangeLow = upd.RangeLow
	}

	if upd.RangeHigh != nil {
		li.RangeHigh = upd.RangeHigh
	}

	if upd.FinalSelection != nil {
		li.FinalSelection = upd.FinalSelection
	}

	if upd.FinalPrice != nil {
		li.FinalPrice = upd.FinalPrice
	}

	if upd.SelectionStatus != nil {
		li.SelectionStatus = *upd.SelectionStatus
	}

	if upd.InternalNotes != nil {
		li.InternalNotes = *upd.InternalNotes
	}

	li.Normalize()

	if err := li.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLineItem(ctx, li); err != nil {
		return nil, err
	}

	if _, _, err := s.repo.RecalculateTotals(ctx, quoteID); err != nil {
		return nil, err
	}

	return li, nil
}

func (s *Service) RemoveLineItem(ctx context.Context, companyID, quoteID, itemID uuid.UUID) error {
	if _, err := s.repo.GetQuote(ctx, companyID, quoteID); err != nil {
		return err
	}

	if err := s.repo.DeleteLineItem(ctx, quoteID, itemID); err != nil {
		return err
	}

	_, _, err := s.repo.RecalculateTotals(ctx, quoteID)

	return err
}

// ReorderLineItems assigns dense 1-based sort positions matching the
// given order.
func (s *Service) ReorderLineItems(ctx context.Context, companyID, quoteID uuid.UUID, ids []uuid.UUID) error {
	if _, err := s.repo.GetQuote(ctx, companyID, quoteID); err != nil {
		return err
	}

	if err := s.repo.ReorderLineItems(ctx, quoteID, ids); err != nil {
		return err
	}

	_, _, err := s.repo.RecalculateTotals(ctx, quoteID)

	return err
}

// MarkSent sends a draft quote to the client; re-sending from sent or
// viewed refreshes sent_at without a status change.
func (s *Service) MarkSent(ctx context.Context, companyID, id uuid.UUID) (*Quote, error) {
	q, err := s.repo.GetQuote(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	switch q.Status {
	case StatusDraft:
		if err := s.repo.UpdateQuoteStatus(ctx, q.ID, StatusDraft, StatusUpdate{Status: StatusSent, SentAt: &now}); err != nil {
			return nil, err
		}

		q.Status = StatusSent
	case StatusSent, StatusViewed:
		if err := s.repo.UpdateQuoteStatus(ctx, q.ID, q.Status, StatusUpdate{Status: q.Status, SentAt: &now}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("send from %s: %w", q.Status, ErrInvalidTransition)
	}

	q.SentAt = &now

	return q, nil
}

// MarkViewed records the client's first view. Only sent quotes
// transition; any other status is a no-op.
func (s *Service) MarkViewed(ctx context.Context, q *Quote) (*Quote, error) {
	if q.Status != StatusSent {
		return q, nil
	}

	now := time.Now()
	if err := s.repo.UpdateQuoteStatus(ctx, q.ID, StatusSent, StatusUpdate{Status: StatusViewed, ViewedAt: &now}); err != nil {
		if errors.Is(err, ErrStale) {
			// Lost the race to a concurrent view or sign; nothing to do.
			return s.repo.GetQuoteByToken(ctx, q.ClientViewToken)
		}

		return nil, err
	}

	q.Status = StatusViewed
	q.ViewedAt = &now

	return q, nil
}

// Reject marks a non-terminal quote rejected.
func (s *Service) Reject(ctx context.Context, companyID, id uuid.UUID) (*Quote, error) {
	q, err := s.repo.GetQuote(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if q.Status.Terminal() {
		return nil, fmt.Errorf("reject from %s: %w", q.Status, ErrInvalidTransition)
	}

	if err := s.repo.UpdateQuoteStatus(ctx, q.ID, q.Status, StatusUpdate{Status: StatusRejected}); err != nil {
		return nil, err
	}

	q.Status = StatusRejected

	return q, nil
}

type SignParams struct {
	SignatureImage string
	SignerName     string
	SignerEmail    string
	SignerIP       string
	SignerGeo      json.RawMessage
}

// SignByToken signs the quote a portal token resolves to.
func (s *Service) SignByToken(ctx context.Context, token string, params SignParams) (*Quote, error) {
	q, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.sign(ctx, q, params)
}

// Sign accepts the quote with the captured signature evidence and
// creates its job exactly once. Re-signing an accepted quote refuses
// with ErrAlreadyAccepted once its job exists.
func (s *Service) Sign(ctx context.Context, companyID, id uuid.UUID, params SignParams) (*Quote, error) {
	q, err := s.repo.GetQuote(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	return s.sign(ctx, q, params)
}

func (s *Service) sign(ctx context.Context, q *Quote, params SignParams) (*Quote, error) {
	if params.SignatureImage == "" {
		return nil, &ValidationError{Field: "signature_image", Reason: "signature is required"}
	}

	if q.Status == StatusAccepted {
		// An earlier signing may have accepted the quote and then lost
		// the job write. Retry the job before refusing the re-sign so
		// the quote cannot stay accepted and jobless forever.
		err := s.jobs.CreateFromQuote(ctx, q)
		switch {
		case err == nil:
			return q, nil
		case errors.Is(err, ErrJobExists):
			return nil, ErrAlreadyAccepted
		default:
			return nil, fmt.Errorf("creating job from signed quote: %w", err)
		}
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
		Status:     StatusAccepted,
		AcceptedAt: &now,
		SignedAt:   &now,
		Signature:  sig,
	}
	if err := s.repo.UpdateQuoteStatus(ctx, q.ID, q.Status, upd); err != nil {
		return nil, err
	}

	q.Status = StatusAccepted
	q.AcceptedAt = &now
	q.SignedAt = &now
	q.Signature = sig

	if err := s.jobs.CreateFromQuote(ctx, q); err != nil && !errors.Is(err, ErrJobExists) {
		return nil, fmt.Errorf("creating job from signed quote: %w", err)
	}

	return q, nil
}

// Duplicate produces a fresh draft with a new number and token, the
// same project fields, and copies of the line items stripped of their
// identity. All signature and lifecycle timestamps are cleared.
func (s *Service) Duplicate(ctx context.Context, companyID, id uuid.UUID) (*Quote, error) {
	src, err := s.repo.GetQuote(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	dup := &Quote{
		CompanyID:        src.CompanyID,
		ClientID:         src.ClientID,
		Status:           StatusDraft,
		TemplateType:     src.TemplateType,
		ProjectSize:      src.ProjectSize,
		ProjectAddress:   src.ProjectAddress,
		ProjectCity:      src.ProjectCity,
		ProjectState:     src.ProjectState,
		ProjectZipCode:   src.ProjectZipCode,
		Notes:            src.Notes,
		Terms:            src.Terms,
		PaymentTerms:     src.PaymentTerms,
		TimelineEstimate: src.TimelineEstimate,
		ValidDays:        src.ValidDays,
	}

	items := make([]*LineItem, 0, len(src.LineItems))

	for _, li := range src.LineItems {
		items = append(items, &LineItem{
			Category:           li.Category,
			Description:        li.Description,
			QualityTier:        li.QualityTier,
			IsAllowance:        li.IsAllowance,
			IsRange:            li.IsRange,
			RangeLow:           li.RangeLow,
			RangeHigh:          li.RangeHigh,
			SuggestedRangeLow:  li.SuggestedRangeLow,
			SuggestedRangeHigh: li.SuggestedRangeHigh,
			FinalSelection:     li.FinalSelection,
			FinalPrice:         li.FinalPrice,
			SelectionStatus:    li.SelectionStatus,
			InternalNotes:      li.InternalNotes,
			SortOrder:          li.SortOrder,
		})
	}

	dup.TotalRangeLow, dup.TotalRangeHigh = ComputeTotals(items)

	if err := s.createWithFreshIdentity(ctx, dup, items); err != nil {
		return nil, err
	}

	dup.LineItems = items

	return dup, nil
}
