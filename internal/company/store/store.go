package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/company"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectCompanyColumns = `
	id, name, email, phone, address, city, state, zip_code, license_number,
	default_labor_markup, default_material_markup, default_terms, default_payment_terms,
	legal_boilerplate, created_at, updated_at
`

func (s *Store) CreateCompany(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (name, email, phone, address, city, state, zip_code, license_number,
			default_labor_markup, default_material_markup, default_terms, default_payment_terms,
			legal_boilerplate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode, c.LicenseNumber,
		c.DefaultLaborMarkup, c.DefaultMaterialMarkup, c.DefaultTerms, c.DefaultPaymentTerms,
		c.LegalBoilerplate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating company: %w", err)
	}

	return nil
}

func (s *Store) GetCompany(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	query := `SELECT ` + selectCompanyColumns + ` FROM companies WHERE id = $1`

	var c company.Company
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.State, &c.ZipCode, &c.LicenseNumber,
		&c.DefaultLaborMarkup, &c.DefaultMaterialMarkup, &c.DefaultTerms, &c.DefaultPaymentTerms,
		&c.LegalBoilerplate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	return &c, nil
}

func (s *Store) UpdateCompany(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6, zip_code = $7,
			license_number = $8, default_labor_markup = $9, default_material_markup = $10,
			default_terms = $11, default_payment_terms = $12, legal_boilerplate = $13, updated_at = NOW()
		WHERE id = $14
	`

	res, err := s.db.ExecContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode, c.LicenseNumber,
		c.DefaultLaborMarkup, c.DefaultMaterialMarkup, c.DefaultTerms, c.DefaultPaymentTerms,
		c.LegalBoilerplate, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating company: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return company.ErrNotFound
	}

	return nil
}
