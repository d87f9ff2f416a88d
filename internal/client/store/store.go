package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/client"
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

const selectClientColumns = `
	id, company_id, name, email, phone, address, city, state, zip_code, notes,
	magic_link_token, magic_link_expires_at, created_at, updated_at
`

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	if err := s.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.State,
		&c.ZipCode, &c.Notes, &c.MagicLinkToken, &c.MagicLinkExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (company_id, name, email, phone, address, city, state, zip_code, notes,
			magic_link_token, magic_link_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.CompanyID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode, c.Notes,
		c.MagicLinkToken, c.MagicLinkExpiresAt,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, companyID, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + ` FROM clients WHERE id = $1 AND company_id = $2`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id, companyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) GetClientByMagicLink(ctx context.Context, token string) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + ` FROM clients WHERE magic_link_token = $1`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client by magic link: %w", err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context, companyID uuid.UUID, search string) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + ` FROM clients WHERE company_id = $1`

	args := []any{companyID}

	if search != "" {
		query += ` AND (name ILIKE $2 OR email ILIKE $2 OR phone ILIKE $2)`

		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6,
			zip_code = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND company_id = $10
	`

	res, err := s.db.ExecContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode, c.Notes,
		c.ID, c.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return client.ErrNotFound
	}

	return nil
}

// DeleteClient removes the client; quotes and jobs keep their rows
// with the client reference nulled by the schema's ON DELETE SET NULL.
func (s *Store) DeleteClient(ctx context.Context, companyID, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1 AND company_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return client.ErrNotFound
	}

	return nil
}

func (s *Store) RotateMagicLink(ctx context.Context, companyID, id uuid.UUID, token string, expiresAt time.Time) error {
	query := `
		UPDATE clients
		SET magic_link_token = $1, magic_link_expires_at = $2, updated_at = NOW()
		WHERE id = $3 AND company_id = $4
	`

	res, err := s.db.ExecContext(ctx, query, token, expiresAt, id, companyID)
	if err != nil {
		return fmt.Errorf("rotating magic link: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return client.ErrNotFound
	}

	return nil
}
