package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/template"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTemplateColumns = `
	id, company_id, name, template_type, is_system, line_items_config, created_at, updated_at
`

func scanTemplate(s scanner) (*template.Template, error) {
	var tpl template.Template

	var typeStr string

	var itemsJSON []byte

	if err := s.Scan(
		&tpl.ID, &tpl.CompanyID, &tpl.Name, &typeStr, &tpl.IsSystem, &itemsJSON,
		&tpl.CreatedAt, &tpl.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tpl.Type = template.Type(typeStr)

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &tpl.Items); err != nil {
			return nil, fmt.Errorf("decoding line items config: %w", err)
		}
	}

	return &tpl, nil
}

func (s *Store) CreateTemplate(ctx context.Context, tpl *template.Template) error {
	itemsJSON, err := json.Marshal(tpl.Items)
	if err != nil {
		return fmt.Errorf("encoding line items config: %w", err)
	}

	query := `
		INSERT INTO quote_templates (company_id, name, template_type, is_system, line_items_config, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		tpl.CompanyID,
		tpl.Name,
		tpl.Type,
		tpl.IsSystem,
		itemsJSON,
	).Scan(&tpl.ID, &tpl.CreatedAt, &tpl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating template: %w", err)
	}

	return nil
}

func (s *Store) GetTemplate(ctx context.Context, companyID, id uuid.UUID) (*template.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM quote_templates
		WHERE id = $1 AND company_id = $2`

	tpl, err := scanTemplate(s.db.QueryRowContext(ctx, query, id, companyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, template.ErrNotFound
		}

		return nil, fmt.Errorf("getting template: %w", err)
	}

	return tpl, nil
}

func (s *Store) ListTemplates(ctx context.Context, companyID uuid.UUID) ([]*template.Template, error) {
	query := `SELECT ` + selectTemplateColumns + `
		FROM quote_templates
		WHERE company_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var tpls []*template.Template

	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}

		tpls = append(tpls, tpl)
	}

	return tpls, rows.Err()
}

func (s *Store) UpdateTemplate(ctx context.Context, tpl *template.Template) error {
	itemsJSON, err := json.Marshal(tpl.Items)
	if err != nil {
		return fmt.Errorf("encoding line items config: %w", err)
	}

	query := `
		UPDATE quote_templates
		SET name = $1, template_type = $2, line_items_config = $3, updated_at = NOW()
		WHERE id = $4 AND company_id = $5 AND is_system = FALSE
	`

	res, err := s.db.ExecContext(ctx, query, tpl.Name, tpl.Type, itemsJSON, tpl.ID, tpl.CompanyID)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return template.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, companyID, id uuid.UUID) error {
	query := `DELETE FROM quote_templates WHERE id = $1 AND company_id = $2 AND is_system = FALSE`

	res, err := s.db.ExecContext(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return template.ErrNotFound
	}

	return nil
}
