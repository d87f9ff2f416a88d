package company

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/tenant"
)

type Handler struct {
	svc *company.Service
}

func NewHandler(svc *company.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Patch("/", h.update)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			http.Error(w, "company not found", http.StatusNotFound)
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

type updateCompanyRequest struct {
	Name                  *string  `json:"name,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	Phone                 *string  `json:"phone,omitempty"`
	Address               *string  `json:"address,omitempty"`
	City                  *string  `json:"city,omitempty"`
	State                 *string  `json:"state,omitempty"`
	ZipCode               *string  `json:"zip_code,omitempty"`
	LicenseNumber         *string  `json:"license_number,omitempty"`
	DefaultLaborMarkup    *float64 `json:"default_labor_markup,omitempty"`
	DefaultMaterialMarkup *float64 `json:"default_material_markup,omitempty"`
	DefaultTerms          *string  `json:"default_terms,omitempty"`
	DefaultPaymentTerms   *string  `json:"default_payment_terms,omitempty"`
	LegalBoilerplate      *string  `json:"legal_boilerplate,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	var req updateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			http.Error(w, "company not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	applyUpdate(c, req)

	if err := h.svc.UpdateSettings(r.Context(), c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func applyUpdate(c *company.Company, req updateCompanyRequest) {
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

	if req.LicenseNumber != nil {
		c.LicenseNumber = *req.LicenseNumber
	}

	if req.DefaultLaborMarkup != nil {
		c.DefaultLaborMarkup = *req.DefaultLaborMarkup
	}

	if req.DefaultMaterialMarkup != nil {
		c.DefaultMaterialMarkup = *req.DefaultMaterialMarkup
	}

	if req.DefaultTerms != nil {
		c.DefaultTerms = *req.DefaultTerms
	}

	if req.DefaultPaymentTerms != nil {
		c.DefaultPaymentTerms = *req.DefaultPaymentTerms
	}

	if req.LegalBoilerplate != nil {
		c.LegalBoilerplate = *req.LegalBoilerplate
	}
}
