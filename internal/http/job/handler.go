package job

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/tenant"
)

type Handler struct {
	svc *job.Service
}

func NewHandler(svc *job.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/start", h.start)
	r.Post("/{id}/hold", h.hold)
	r.Post("/{id}/resume", h.resume)
	r.Post("/{id}/complete", h.complete)
	r.Post("/{id}/cancel", h.cancel)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, job.ErrNotFound):
		http.Error(w, "job not found", http.StatusNotFound)
	case errors.Is(err, job.ErrInvalidTransition), errors.Is(err, job.ErrStale):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	filter := job.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := job.Status(s)
		filter.Status = &status
	}

	jobs, err := h.svc.List(r.Context(), companyID, filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(jobs)); err != nil {
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

	j, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(j)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateJobRequest struct {
	ProjectAddress        *string    `json:"project_address,omitempty"`
	ProjectCity           *string    `json:"project_city,omitempty"`
	ProjectState          *string    `json:"project_state,omitempty"`
	ProjectZipCode        *string    `json:"project_zip_code,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
	EstimatedCompletionAt *time.Time `json:"estimated_completion_at,omitempty"`
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

	var req updateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	j, err := h.svc.Update(r.Context(), companyID, id, job.UpdateParams{
		ProjectAddress:        req.ProjectAddress,
		ProjectCity:           req.ProjectCity,
		ProjectState:          req.ProjectState,
		ProjectZipCode:        req.ProjectZipCode,
		Notes:                 req.Notes,
		EstimatedCompletionAt: req.EstimatedCompletionAt,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(j)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Start)
}

func (h *Handler) hold(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Hold)
}

func (h *Handler) resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Resume)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Complete)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, companyID, id uuid.UUID) (*job.Job, error)) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	j, err := op(r.Context(), companyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(j)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
