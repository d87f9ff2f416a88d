package quote

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/notify"
	"github.com/rgoodwin/quoteforge/internal/pdf"
	"github.com/rgoodwin/quoteforge/internal/quote"
	"github.com/rgoodwin/quoteforge/internal/template"
	"github.com/rgoodwin/quoteforge/internal/tenant"
)

type Handler struct {
	svc       *quote.Service
	jobs      *job.Service
	companies *company.Service
	clients   *client.Service
	renderer  *pdf.Renderer
	notifier  *notify.Notifier
}

func NewHandler(svc *quote.Service, jobs *job.Service, companies *company.Service, clients *client.Service, renderer *pdf.Renderer, notifier *notify.Notifier) *Handler {
	return &Handler{
		svc:       svc,
		jobs:      jobs,
		companies: companies,
		clients:   clients,
		renderer:  renderer,
		notifier:  notifier,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	r.Post("/{id}/send", h.send)
	r.Post("/{id}/sign", h.sign)
	r.Post("/{id}/reject", h.reject)
	r.Post("/{id}/duplicate", h.duplicate)
	r.Get("/{id}/pdf", h.renderPDF)

	r.Post("/{id}/line-items", h.addLineItem)
	r.Patch("/{id}/line-items/{itemID}", h.updateLineItem)
	r.Delete("/{id}/line-items/{itemID}", h.removeLineItem)
	r.Put("/{id}/line-items/reorder", h.reorderLineItems)
}

// writeError maps domain errors onto status codes shared by every
// endpoint in this package.
func writeError(w http.ResponseWriter, err error) {
	var vErr *quote.ValidationError

	switch {
	case errors.Is(err, quote.ErrNotFound):
		http.Error(w, "quote not found", http.StatusNotFound)
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, quote.ErrInvalidTransition),
		errors.Is(err, quote.ErrAlreadyAccepted),
		errors.Is(err, quote.ErrStale):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type lineItemRequest struct {
	Category           quote.Category `json:"category"`
	Description        string         `json:"description"`
	QualityTier        *template.Tier `json:"quality_tier,omitempty"`
	IsAllowance        bool           `json:"is_allowance"`
	IsRange            bool           `json:"is_range"`
	RangeLow           *int64         `json:"range_low,omitempty"`
	RangeHigh          *int64         `json:"range_high,omitempty"`
	SuggestedRangeLow  *int64         `json:"suggested_range_low,omitempty"`
	SuggestedRangeHigh *int64         `json:"suggested_range_high,omitempty"`
	FinalSelection     *string        `json:"final_selection,omitempty"`
	FinalPrice         *int64         `json:"final_price,omitempty"`
	InternalNotes      string         `json:"internal_notes,omitempty"`
	SortOrder          int            `json:"sort_order"`
}

func (r lineItemRequest) toParams() quote.LineItemParams {
	return quote.LineItemParams{
		Category:           r.Category,
		Description:        r.Description,
		QualityTier:        r.QualityTier,
		IsAllowance:        r.IsAllowance,
		IsRange:            r.IsRange,
		RangeLow:           r.RangeLow,
		RangeHigh:          r.RangeHigh,
		SuggestedRangeLow:  r.SuggestedRangeLow,
		SuggestedRangeHigh: r.SuggestedRangeHigh,
		FinalSelection:     r.FinalSelection,
		FinalPrice:         r.FinalPrice,
		InternalNotes:      r.InternalNotes,
		SortOrder:          r.SortOrder,
	}
}

// newClientRequest creates the client inline while creating the quote,
// for callers that have not set one up beforehand.
type newClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Notes   string `json:"notes"`
}

type createQuoteRequest struct {
	ClientID         *uuid.UUID        `json:"client_id,omitempty"`
	NewClient        *newClientRequest `json:"new_client,omitempty"`
	TemplateType     template.Type     `json:"template_type"`
	TemplateID       *uuid.UUID        `json:"template_id,omitempty"`
	ProjectSize      template.Size     `json:"project_size"`
	ProjectAddress   string            `json:"project_address"`
	ProjectCity      string            `json:"project_city"`
	ProjectState     string            `json:"project_state"`
	ProjectZipCode   string            `json:"project_zip_code"`
	Notes            string            `json:"notes"`
	Terms            string            `json:"terms"`
	PaymentTerms     string            `json:"payment_terms"`
	TimelineEstimate string            `json:"timeline_estimate"`
	ValidDays        *int              `json:"valid_days,omitempty"`
	Items            []lineItemRequest `json:"items,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ClientID == nil && req.NewClient != nil {
		cl, err := h.clients.Create(r.Context(), companyID, client.CreateParams{
			Name:    req.NewClient.Name,
			Email:   req.NewClient.Email,
			Phone:   req.NewClient.Phone,
			Address: req.NewClient.Address,
			City:    req.NewClient.City,
			State:   req.NewClient.State,
			ZipCode: req.NewClient.ZipCode,
			Notes:   req.NewClient.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req.ClientID = &cl.ID
	}

	params := quote.CreateParams{
		ClientID:         req.ClientID,
		TemplateType:     req.TemplateType,
		TemplateID:       req.TemplateID,
		ProjectSize:      req.ProjectSize,
		ProjectAddress:   req.ProjectAddress,
		ProjectCity:      req.ProjectCity,
		ProjectState:     req.ProjectState,
		ProjectZipCode:   req.ProjectZipCode,
		Notes:            req.Notes,
		Terms:            req.Terms,
		PaymentTerms:     req.PaymentTerms,
		TimelineEstimate: req.TimelineEstimate,
		ValidDays:        req.ValidDays,
	}
	for _, item := range req.Items {
		params.Items = append(params.Items, item.toParams())
	}

	q, err := h.svc.Create(r.Context(), companyID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	filter := quote.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := quote.Status(s)
		filter.Status = &status
	}

	quotes, err := h.svc.List(r.Context(), companyID, filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(quotes)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateQuoteRequest struct {
	ClientID         *uuid.UUID `json:"client_id,omitempty"`
	ProjectAddress   *string    `json:"project_address,omitempty"`
	ProjectCity      *string    `json:"project_city,omitempty"`
	ProjectState     *string    `json:"project_state,omitempty"`
	ProjectZipCode   *string    `json:"project_zip_code,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	Terms            *string    `json:"terms,omitempty"`
	PaymentTerms     *string    `json:"payment_terms,omitempty"`
	TimelineEstimate *string    `json:"timeline_estimate,omitempty"`
	ValidDays        *int       `json:"valid_days,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.ClientID != nil {
		q.ClientID = req.ClientID
	}

	if req.ProjectAddress != nil {
		q.ProjectAddress = *req.ProjectAddress
	}

	if req.ProjectCity != nil {
		q.ProjectCity = *req.ProjectCity
	}

	if req.ProjectState != nil {
		q.ProjectState = *req.ProjectState
	}

	if req.ProjectZipCode != nil {
		q.ProjectZipCode = *req.ProjectZipCode
	}

	if req.Notes != nil {
		q.Notes = *req.Notes
	}

	if req.Terms != nil {
		q.Terms = *req.Terms
	}

	if req.PaymentTerms != nil {
		q.PaymentTerms = *req.PaymentTerms
	}

	if req.TimelineEstimate != nil {
		q.TimelineEstimate = *req.TimelineEstimate
	}

	if req.ValidDays != nil {
		q.ValidDays = req.ValidDays
	}

	updated, err := h.svc.Update(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(updated)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), companyID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.MarkSent(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.notifier.QuoteSent(r.Context(), q)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type signQuoteRequest struct {
	SignatureImage string          `json:"signature_image"`
	SignerName     string          `json:"signer_name"`
	SignerEmail    string          `json:"signer_email"`
	SignerGeo      json.RawMessage `json:"signer_geo,omitempty"`
}

func (h *Handler) sign(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req signQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.svc.Sign(r.Context(), companyID, id, quote.SignParams{
		SignatureImage: req.SignatureImage,
		SignerName:     req.SignerName,
		SignerEmail:    req.SignerEmail,
		SignerIP:       remoteIP(r),
		SignerGeo:      req.SignerGeo,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.notifier.QuoteSigned(r.Context(), q, h.jobNumberFor(r, companyID, q.ID))

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.Reject(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) duplicate(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.Duplicate(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) renderPDF(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	co, err := h.companies.Get(r.Context(), companyID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var cl *client.Client
	if q.ClientID != nil {
		if cl, err = h.clients.Get(r.Context(), companyID, *q.ClientID); err != nil && !errors.Is(err, client.ErrNotFound) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	doc, err := h.renderer.RenderQuote(r.Context(), q, co, cl)
	if err != nil {
		slog.Error("rendering quote pdf", "quote_id", id, "error", err)
		http.Error(w, "pdf rendering failed", http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+q.QuoteNumber+`.pdf"`)

	if _, err := w.Write(doc); err != nil {
		slog.Error("failed to write pdf response", "error", err)
	}
}

func (h *Handler) addLineItem(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req lineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	li, err := h.svc.AddLineItem(r.Context(), companyID, quoteID, req.toParams())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toLineItemResponse(li)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateLineItemRequest struct {
	Description     *string                `json:"description,omitempty"`
	QualityTier     *template.Tier         `json:"quality_tier,omitempty"`
	IsAllowance     *bool                  `json:"is_allowance,omitempty"`
	IsRange         *bool                  `json:"is_range,omitempty"`
	RangeLow        *int64                 `json:"range_low,omitempty"`
	RangeHigh       *int64                 `json:"range_high,omitempty"`
	FinalSelection  *string                `json:"final_selection,omitempty"`
	FinalPrice      *int64                 `json:"final_price,omitempty"`
	SelectionStatus *quote.SelectionStatus `json:"selection_status,omitempty"`
	InternalNotes   *string                `json:"internal_notes,omitempty"`
}

func (h *Handler) updateLineItem(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req updateLineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	li, err := h.svc.UpdateLineItem(r.Context(), companyID, quoteID, itemID, quote.LineItemUpdate{
		Description:     req.Description,
		QualityTier:     req.QualityTier,
		IsAllowance:     req.IsAllowance,
		IsRange:         req.IsRange,
		RangeLow:        req.RangeLow,
		RangeHigh:       req.RangeHigh,
		FinalSelection:  req.FinalSelection,
		FinalPrice:      req.FinalPrice,
		SelectionStatus: req.SelectionStatus,
		InternalNotes:   req.InternalNotes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toLineItemResponse(li)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) removeLineItem(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveLineItem(r.Context(), companyID, quoteID, itemID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids"`
}

func (h *Handler) reorderLineItems(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ReorderLineItems(r.Context(), companyID, quoteID, req.ItemIDs); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// jobNumberFor resolves the job opened by a successful sign. Best
// effort: the notification just omits the number when lookup fails.
func (h *Handler) jobNumberFor(r *http.Request, companyID, quoteID uuid.UUID) string {
	j, err := h.jobs.GetByQuote(r.Context(), companyID, quoteID)
	if err != nil {
		return ""
	}

	return j.JobNumber
}

func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
