package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const uniqueViolation = "23505"

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "change_orders_job_co_number_key":
		return fmt.Errorf("change order number taken: %w", identity.ErrNumberCollision)
	case "change_orders_client_view_token_key":
		return fmt.Errorf("change order token taken: %w", identity.ErrTokenCollision)
	}

	return err
}

const selectColumns = `
	co.id, co.job_id, co.quote_id, co.line_item_id, co.co_number, co.status,
	co.title, co.description, co.category,
	co.amount, co.is_time_and_materials, co.hourly_rate, co.estimated_hours,
	co.delays_schedule, co.delay_days,
	co.boilerplate, co.client_view_token,
	co.sent_at, co.viewed_at, co.signed_at, co.signature_data,
	co.created_at, co.updated_at
`

func scanChangeOrder(s scanner) (*changeorder.ChangeOrder, error) {
	var co changeorder.ChangeOrder

	var statusStr, categoryStr string

	var sigJSON []byte

	if err := s.Scan(
		&co.ID, &co.JobID, &co.QuoteID, &co.LineItemID, &co.CONumber, &statusStr,
		&co.Title, &co.Description, &categoryStr,
		&co.Amount, &co.IsTimeAndMaterials, &co.HourlyRate, &co.EstimatedHours,
		&co.DelaysSchedule, &co.DelayDays,
		&co.Boilerplate, &co.ClientViewToken,
		&co.SentAt, &co.ViewedAt, &co.SignedAt, &sigJSON,
		&co.CreatedAt, &co.UpdatedAt,
	); err != nil {
		return nil, err
	}

	co.Status = changeorder.Status(statusStr)
	co.Category = quote.Category(categoryStr)

	if len(sigJSON) > 0 {
		co.Signature = &changeorder.Signature{}
		if err := json.Unmarshal(sigJSON, co.Signature); err != nil {
			return nil, fmt.Errorf("decoding signature: %w", err)
		}
	}

	return &co, nil
}

func (s *Store) CreateChangeOrder(ctx context.Context, co *changeorder.ChangeOrder) error {
	query := `
		INSERT INTO change_orders (job_id, quote_id, line_item_id, co_number, status,
			title, description, category,
			amount, is_time_and_materials, hourly_rate, estimated_hours,
			delays_schedule, delay_days,
			boilerplate, client_view_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		co.JobID, co.QuoteID, co.LineItemID, co.CONumber, co.Status,
		co.Title, co.Description, co.Category,
		co.Amount, co.IsTimeAndMaterials, co.HourlyRate, co.EstimatedHours,
		co.DelaysSchedule, co.DelayDays,
		co.Boilerplate, co.ClientViewToken,
	).Scan(&co.ID, &co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating change order: %w", mapUniqueViolation(err))
	}

	return nil
}

// GetChangeOrder joins through jobs so company scoping holds even
// though change orders carry no company column of their own.
func (s *Store) GetChangeOrder(ctx context.Context, companyID, id uuid.UUID) (*changeorder.ChangeOrder, error) {
	query := `SELECT ` + selectColumns + `
		FROM change_orders co
		JOIN jobs j ON j.id = co.job_id
		WHERE co.id = $1 AND j.company_id = $2`

	co, err := scanChangeOrder(s.db.QueryRowContext(ctx, query, id, companyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, changeorder.ErrNotFound
		}

		return nil, fmt.Errorf("getting change order: %w", err)
	}

	return co, nil
}

func (s *Store) GetChangeOrderByToken(ctx context.Context, token string) (*changeorder.ChangeOrder, error) {
	query := `SELECT ` + selectColumns + `
		FROM change_orders co
		WHERE co.client_view_token = $1`

	co, err := scanChangeOrder(s.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, changeorder.ErrNotFound
		}

		return nil, fmt.Errorf("getting change order by token: %w", err)
	}

	return co, nil
}

func (s *Store) ListChangeOrders(ctx context.Context, companyID, jobID uuid.UUID) ([]*changeorder.ChangeOrder, error) {
	query := `SELECT ` + selectColumns + `
		FROM change_orders co
		JOIN jobs j ON j.id = co.job_id
		WHERE co.job_id = $1 AND j.company_id = $2
		ORDER BY co.co_number ASC`

	rows, err := s.db.QueryContext(ctx, query, jobID, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing change orders: %w", err)
	}
	defer rows.Close()

	var orders []*changeorder.ChangeOrder

	for rows.Next() {
		co, err := scanChangeOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning change order: %w", err)
		}

		orders = append(orders, co)
	}

	return orders, rows.Err()
}

func (s *Store) UpdateChangeOrder(ctx context.Context, co *changeorder.ChangeOrder) error {
	query := `
		UPDATE change_orders
		SET title = $1, description = $2, category = $3, amount = $4,
			is_time_and_materials = $5, hourly_rate = $6, estimated_hours = $7,
			delays_schedule = $8, delay_days = $9, boilerplate = $10, updated_at = NOW()
		WHERE id = $11
	`

	res, err := s.db.ExecContext(ctx, query,
		co.Title, co.Description, co.Category, co.Amount,
		co.IsTimeAndMaterials, co.HourlyRate, co.EstimatedHours,
		co.DelaysSchedule, co.DelayDays, co.Boilerplate, co.ID,
	)
	if err != nil {
		return fmt.Errorf("updating change order: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return changeorder.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteChangeOrder(ctx context.Context, companyID, id uuid.UUID) error {
	query := `
		DELETE FROM change_orders co
		USING jobs j
		WHERE co.id = $1 AND co.job_id = j.id AND j.company_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deleting change order: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return changeorder.ErrNotFound
	}

	return nil
}

func (s *Store) NextCONumber(ctx context.Context, jobID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(co_number), 0) + 1 FROM change_orders WHERE job_id = $1`

	var num int
	if err := s.db.QueryRowContext(ctx, query, jobID).Scan(&num); err != nil {
		return 0, fmt.Errorf("deriving change order number: %w", err)
	}

	return num, nil
}

func (s *Store) UpdateChangeOrderStatus(ctx context.Context, id uuid.UUID, expect changeorder.Status, upd changeorder.StatusUpdate) error {
	var sigJSON []byte

	if upd.Signature != nil {
		var err error
		if sigJSON, err = json.Marshal(upd.Signature); err != nil {
			return fmt.Errorf("encoding signature: %w", err)
		}
	}

	query := `
		UPDATE change_orders
		SET status = $1,
			sent_at = COALESCE($2, sent_at),
			viewed_at = COALESCE($3, viewed_at),
			signed_at = COALESCE($4, signed_at),
			signature_data = COALESCE($5, signature_data),
			updated_at = NOW()
		WHERE id = $6 AND status = $7
	`

	res, err := s.db.ExecContext(ctx, query, upd.Status, upd.SentAt, upd.ViewedAt, upd.SignedAt, sigJSON, id, expect)
	if err != nil {
		return fmt.Errorf("updating change order status: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return changeorder.ErrStale
	}

	return nil
}
