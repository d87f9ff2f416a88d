// Package company holds the tenant root: every quote, job, and client
// belongs to exactly one company.
package company

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a company registers without its own terms.
const (
	DefaultLaborMarkup    = 30.0
	DefaultMaterialMarkup = 20.0

	DefaultTerms = `This estimate is valid for 30 days from the date of issue.
A 30% deposit is required to schedule the project.
Progress payments will be due at key milestones.
Final 10% payment due upon satisfactory completion.`

	DefaultPaymentTerms = `- 30% deposit to schedule project
- Progress payments at milestones
- 10% upon satisfactory completion`

	DefaultLegalBoilerplate = `I authorize this change to the original project scope and agree to the additional cost stated above.
This change order becomes part of the original contract and is subject to all original terms and conditions.`
)

type Company struct {
	ID                    uuid.UUID
	Name                  string
	Email                 string
	Phone                 string
	Address               string
	City                  string
	State                 string
	ZipCode               string
	LicenseNumber         string
	DefaultLaborMarkup    float64
	DefaultMaterialMarkup float64
	DefaultTerms          string
	DefaultPaymentTerms   string
	LegalBoilerplate      string
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

// FullAddress joins the present address parts with commas.
func (c *Company) FullAddress() string {
	parts := make([]string, 0, 4)

	for _, p := range []string{c.Address, c.City, c.State, c.ZipCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// ApplyDefaults fills unset markups and boilerplate before first save.
func (c *Company) ApplyDefaults() {
	if c.DefaultLaborMarkup == 0 {
		c.DefaultLaborMarkup = DefaultLaborMarkup
	}

	if c.DefaultMaterialMarkup == 0 {
		c.DefaultMaterialMarkup = DefaultMaterialMarkup
	}

	if c.DefaultTerms == "" {
		c.DefaultTerms = DefaultTerms
	}

	if c.DefaultPaymentTerms == "" {
		c.DefaultPaymentTerms = DefaultPaymentTerms
	}

	if c.LegalBoilerplate == "" {
		c.LegalBoilerplate = DefaultLegalBoilerplate
	}
}
