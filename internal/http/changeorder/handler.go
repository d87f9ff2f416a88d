package changeorder

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/notify"
	"github.com/rgoodwin/quoteforge/internal/pdf"
	"github.com/rgoodwin/quoteforge/internal/quote"
	"github.com/rgoodwin/quoteforge/internal/tenant"
)

type Handler struct {
	svc       *changeorder.Service
	jobs      *job.Service
	companies *company.Service
	renderer  *pdf.Renderer
	notifier  *notify.Notifier
}

func NewHandler(svc *changeorder.Service, jobs *job.Service, companies *company.Service, renderer *pdf.Renderer, notifier *notify.Notifier) *Handler {
	return &Handler{
		svc:       svc,
		jobs:      jobs,
		companies: companies,
		renderer:  renderer,
		notifier:  notifier,
	}
}

// JobRoutes mounts the collection endpoints nested under a job.
func (h *Handler) JobRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

// Routes mounts the flat per-change-order endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/send", h.send)
	r.Post("/{id}/sign", h.sign)
	r.Post("/{id}/reject", h.reject)
	r.Get("/{id}/pdf", h.renderPDF)
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *changeorder.ValidationError

	switch {
	case errors.Is(err, changeorder.ErrNotFound):
		http.Error(w, "change order not found", http.StatusNotFound)
	case errors.Is(err, job.ErrNotFound):
		http.Error(w, "job not found", http.StatusNotFound)
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, changeorder.ErrInvalidTransition),
		errors.Is(err, changeorder.ErrAlreadySigned),
		errors.Is(err, changeorder.ErrStale):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createChangeOrderRequest struct {
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Category           quote.Category `json:"category,omitempty"`
	Amount             *int64         `json:"amount,omitempty"`
	IsTimeAndMaterials bool           `json:"is_time_and_materials"`
	HourlyRate         *int64         `json:"hourly_rate,omitempty"`
	EstimatedHours     *float64       `json:"estimated_hours,omitempty"`
	DelaysSchedule     bool           `json:"delays_schedule"`
	DelayDays          *int           `json:"delay_days,omitempty"`
	QuoteID            *uuid.UUID     `json:"quote_id,omitempty"`
	LineItemID         *uuid.UUID     `json:"line_item_id,omitempty"`
	Boilerplate        string         `json:"boilerplate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	var req createChangeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	co, err := h.svc.Create(r.Context(), companyID, jobID, changeorder.CreateParams{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Amount:             req.Amount,
		IsTimeAndMaterials: req.IsTimeAndMaterials,
		HourlyRate:         req.HourlyRate,
		EstimatedHours:     req.EstimatedHours,
		DelaysSchedule:     req.DelaysSchedule,
		DelayDays:          req.DelayDays,
		QuoteID:            req.QuoteID,
		LineItemID:         req.LineItemID,
		Boilerplate:        req.Boilerplate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(co)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.List(r.Context(), companyID, jobID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(orders)); err != nil {
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

	co, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(co)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateChangeOrderRequest struct {
	Title              *string         `json:"title,omitempty"`
	Description        *string         `json:"description,omitempty"`
	Category           *quote.Category `json:"category,omitempty"`
	Amount             *int64          `json:"amount,omitempty"`
	IsTimeAndMaterials *bool           `json:"is_time_and_materials,omitempty"`
	HourlyRate         *int64          `json:"hourly_rate,omitempty"`
	EstimatedHours     *float64        `json:"estimated_hours,omitempty"`
	DelaysSchedule     *bool           `json:"delays_schedule,omitempty"`
	DelayDays          *int            `json:"delay_days,omitempty"`
	Boilerplate        *string         `json:"boilerplate,omitempty"`
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

	var req updateChangeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	co, err := h.svc.Update(r.Context(), companyID, id, changeorder.UpdateParams{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Amount:             req.Amount,
		IsTimeAndMaterials: req.IsTimeAndMaterials,
		HourlyRate:         req.HourlyRate,
		EstimatedHours:     req.EstimatedHours,
		DelaysSchedule:     req.DelaysSchedule,
		DelayDays:          req.DelayDays,
		Boilerplate:        req.Boilerplate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(co)); err != nil {
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

	co, err := h.svc.MarkSent(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	if j, err := h.jobs.Get(r.Context(), companyID, co.JobID); err == nil {
		h.notifier.ChangeOrderSent(r.Context(), co, companyID, j.ClientID)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(co)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type signChangeOrderRequest struct {
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

	var req signChangeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	co, err := h.svc.Sign(r.Context(), companyID, id, changeorder.SignParams{
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

	if j, err := h.jobs.Get(r.Context(), companyID, co.JobID); err == nil {
		h.notifier.ChangeOrderSigned(r.Context(), co, companyID, j.ClientID)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(co)); err != nil {
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

	co, err := h.svc.Reject(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(co)); err != nil {
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

	co, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	comp, err := h.companies.Get(r.Context(), companyID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	jobNumber := ""
	if j, err := h.jobs.Get(r.Context(), companyID, co.JobID); err == nil {
		jobNumber = j.JobNumber
	}

	doc, err := h.renderer.RenderChangeOrder(r.Context(), co, comp, jobNumber)
	if err != nil {
		slog.Error("rendering change order pdf", "change_order_id", id, "error", err)
		http.Error(w, "pdf rendering failed", http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+co.Number()+`.pdf"`)

	if _, err := w.Write(doc); err != nil {
		slog.Error("failed to write pdf response", "error", err)
	}
}

func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
