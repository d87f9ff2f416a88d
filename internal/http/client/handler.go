package client

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/tenant"
)

type Handler struct {
	svc *client.Service
}

func NewHandler(svc *client.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/magic-link", h.regenerateMagicLink)
}

type createClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Notes   string `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), companyID, client.CreateParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Notes:   req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	clients, err := h.svc.List(r.Context(), companyID, r.URL.Query().Get("search"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(clients)); err != nil {
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

	c, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Notes   *string `json:"notes,omitempty"`
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

	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if req.Email != nil {
		c.Email = *req.Email
	}

	if req.Phone != nil {
		c.Phone = *req.Phone
	}

	if req.Address != nil {
		c.Address = *req.Address
	}

	if req.City != nil {
		c.City = *req.City
	}

	if req.State != nil {
		c.State = *req.State
	}

	if req.ZipCode != nil {
		c.ZipCode = *req.ZipCode
	}

	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := h.svc.Update(r.Context(), c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
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
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) regenerateMagicLink(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.RegenerateMagicLink(r.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
