package company

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/company"
)

type companyResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	Address               string     `json:"address,omitempty"`
	City                  string     `json:"city,omitempty"`
	State                 string     `json:"state,omitempty"`
	ZipCode               string     `json:"zip_code,omitempty"`
	LicenseNumber         string     `json:"license_number,omitempty"`
	DefaultLaborMarkup    float64    `json:"default_labor_markup"`
	DefaultMaterialMarkup float64    `json:"default_material_markup"`
	DefaultTerms          string     `json:"default_terms"`
	DefaultPaymentTerms   string     `json:"default_payment_terms"`
	LegalBoilerplate      string     `json:"legal_boilerplate,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *company.Company) companyResponse {
	return companyResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Email:                 c.Email,
		Phone:                 c.Phone,
		Address:               c.Address,
		City:                  c.City,
		State:                 c.State,
		ZipCode:               c.ZipCode,
		LicenseNumber:         c.LicenseNumber,
		DefaultLaborMarkup:    c.DefaultLaborMarkup,
		DefaultMaterialMarkup: c.DefaultMaterialMarkup,
		DefaultTerms:          c.DefaultTerms,
		DefaultPaymentTerms:   c.DefaultPaymentTerms,
		LegalBoilerplate:      c.LegalBoilerplate,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}
