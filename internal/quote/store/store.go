package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/quote"
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

const uniqueViolation = "23505"

// mapUniqueViolation turns the schema's uniqueness constraints into
// the sentinel the service retries on.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "quotes_quote_number_key":
		return fmt.Errorf("quote number taken: %w", identity.ErrNumberCollision)
	case "quotes_client_view_token_key":
		return fmt.Errorf("client view token taken: %w", identity.ErrTokenCollision)
	}

	return err
}

// totalsLockKey derives the advisory lock key serializing total
// recalculation for one quote.
func totalsLockKey(quoteID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("quote-totals:"))
	h.Write(quoteID[:])

	return int64(h.Sum64())
}

const selectQuoteColumns = `
	id, company_id, client_id, quote_number, status, template_type, project_size,
	project_address, project_city, project_state, project_zip_code,
	notes, terms, payment_terms, timeline_estimate,
	total_range_low, total_range_high, valid_days, client_view_token,
	sent_at, viewed_at, accepted_at, signed_at, signature_data, created_at, updated_at
`

func scanQuote(s scanner) (*quote.Quote, error) {
	var q quote.Quote

	var statusStr, typeStr, sizeStr string

	var sigJSON []byte

	if err := s.Scan(
		&q.ID, &q.CompanyID, &q.ClientID, &q.QuoteNumber, &statusStr, &typeStr, &sizeStr,
		&q.ProjectAddress, &q.ProjectCity, &q.ProjectState, &q.ProjectZipCode,
		&q.Notes, &q.Terms, &q.PaymentTerms, &q.TimelineEstimate,
		&q.TotalRangeLow, &q.TotalRangeHigh, &q.ValidDays, &q.ClientViewToken,
		&q.SentAt, &q.ViewedAt, &q.AcceptedAt, &q.SignedAt, &sigJSON, &q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}

	q.Status = quote.Status(statusStr)
	q.TemplateType = template.Type(typeStr)
	q.ProjectSize = template.Size(sizeStr)

	if len(sigJSON) > 0 {
		q.Signature = &quote.Signature{}
		if err := json.Unmarshal(sigJSON, q.Signature); err != nil {
			return nil, fmt.Errorf("decoding signature: %w", err)
		}
	}

	return &q, nil
}

const selectLineItemColumns = `
	id, quote_id, category, description, quality_tier, is_allowance, is_range,
	range_low, range_high, suggested_range_low, suggested_range_high,
	final_selection, final_price, selection_status, internal_notes, sort_order,
	created_at, updated_at
`

func scanLineItem(s scanner) (*quote.LineItem, error) {
	var li quote.LineItem

	var categoryStr, selectionStr string

	var tier sql.NullString

	if err := s.Scan(
		&li.ID, &li.QuoteID, &categoryStr, &li.Description, &tier, &li.IsAllowance, &li.IsRange,
		&li.RangeLow, &li.RangeHigh, &li.SuggestedRangeLow, &li.SuggestedRangeHigh,
		&li.FinalSelection, &li.FinalPrice, &selectionStr, &li.InternalNotes, &li.SortOrder,
		&li.CreatedAt, &li.UpdatedAt,
	); err != nil {
		return nil, err
	}

	li.Category = quote.Category(categoryStr)
	li.SelectionStatus = quote.SelectionStatus(selectionStr)

	if tier.Valid {
		t := template.Tier(tier.String)
		li.QualityTier = &t
	}

	return &li, nil
}

func (s *Store) CreateQuote(ctx context.Context, q *quote.Quote, items []*quote.LineItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO quotes (company_id, client_id, quote_number, status, template_type, project_size,
			project_address, project_city, project_state, project_zip_code,
			notes, terms, payment_terms, timeline_estimate,
			total_range_low, total_range_high, valid_days, client_view_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		q.CompanyID, q.ClientID, q.QuoteNumber, q.Status, q.TemplateType, q.ProjectSize,
		q.ProjectAddress, q.ProjectCity, q.ProjectState, q.ProjectZipCode,
		q.Notes, q.Terms, q.PaymentTerms, q.TimelineEstimate,
		q.TotalRangeLow, q.TotalRangeHigh, q.ValidDays, q.ClientViewToken,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating quote: %w", mapUniqueViolation(err))
	}

	for _, li := range items {
		li.QuoteID = q.ID
		if err := insertLineItem(ctx, tx, li); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing quote: %w", err)
	}

	return nil
}

type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertLineItem(ctx context.Context, db execer, li *quote.LineItem) error {
	query := `
		INSERT INTO line_items (quote_id, category, description, quality_tier, is_allowance, is_range,
			range_low, range_high, suggested_range_low, suggested_range_high,
			final_selection, final_price, selection_status, internal_notes, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	var tier *string
	if li.QualityTier != nil {
		t := string(*li.QualityTier)
		tier = &t
	}

	err := db.QueryRowContext(ctx, query,
		li.QuoteID, li.Category, li.Description, tier, li.IsAllowance, li.IsRange,
		li.RangeLow, li.RangeHigh, li.SuggestedRangeLow, li.SuggestedRangeHigh,
		li.FinalSelection, li.FinalPrice, li.SelectionStatus, li.InternalNotes, li.SortOrder,
	).Scan(&li.ID, &li.CreatedAt, &li.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating line item: %w", err)
	}

	return nil
}

func (s *Store) loadLineItems(ctx context.Context, quoteID uuid.UUID) ([]*quote.LineItem, error) {
	query := `SELECT ` + selectLineItemColumns + `
		FROM line_items
		WHERE quote_id = $1
		ORDER BY sort_order ASC`

	rows, err := s.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()

	var items []*quote.LineItem

	for rows.Next() {
		li, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning line item: %w", err)
		}

		items = append(items, li)
	}

	return items, rows.Err()
}

func (s *Store) GetQuote(ctx context.Context, companyID, id uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes WHERE id = $1 AND company_id = $2`

	q, err := scanQuote(s.db.QueryRowContext(ctx, query, id, companyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("getting quote: %w", err)
	}

	if q.LineItems, err = s.loadLineItems(ctx, q.ID); err != nil {
		return nil, err
	}

	return q, nil
}

func (s *Store) GetQuoteByToken(ctx context.Context, token string) (*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes WHERE client_view_token = $1`

	q, err := scanQuote(s.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("getting quote by token: %w", err)
	}

	if q.LineItems, err = s.loadLineItems(ctx, q.ID); err != nil {
		return nil, err
	}

	return q, nil
}

func (s *Store) ListQuotes(ctx context.Context, companyID uuid.UUID, filter quote.ListFilter) ([]*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes WHERE company_id = $1`

	args := []any{companyID}

	if filter.Status != nil {
		query += ` AND status = $2`

		args = append(args, *filter.Status)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*quote.Quote

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

func (s *Store) UpdateQuote(ctx context.Context, q *quote.Quote) error {
	query := `
		UPDATE quotes
		SET client_id = $1, project_size = $2, project_address = $3, project_city = $4,
			project_state = $5, project_zip_code = $6, notes = $7, terms = $8,
			payment_terms = $9, timeline_estimate = $10, valid_days = $11, updated_at = NOW()
		WHERE id = $12 AND company_id = $13
	`

	res, err := s.db.ExecContext(ctx, query,
		q.ClientID, q.ProjectSize, q.ProjectAddress, q.ProjectCity,
		q.ProjectState, q.ProjectZipCode, q.Notes, q.Terms,
		q.PaymentTerms, q.TimelineEstimate, q.ValidDays,
		q.ID, q.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("updating quote: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

// DeleteQuote removes the quote; line items cascade in the schema.
func (s *Store) DeleteQuote(ctx context.Context, companyID, id uuid.UUID) error {
	query := `DELETE FROM quotes WHERE id = $1 AND company_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

func (s *Store) NextSequence(ctx context.Context, pattern string) (int, error) {
	query := `SELECT COUNT(*) + 1 FROM quotes WHERE quote_number LIKE $1`

	var seq int
	if err := s.db.QueryRowContext(ctx, query, pattern+"%").Scan(&seq); err != nil {
		return 0, fmt.Errorf("counting quote numbers: %w", err)
	}

	return seq, nil
}

func (s *Store) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, expect quote.Status, upd quote.StatusUpdate) error {
	var sigJSON []byte

	if upd.Signature != nil {
		var err error
		if sigJSON, err = json.Marshal(upd.Signature); err != nil {
			return fmt.Errorf("encoding signature: %w", err)
		}
	}

	query := `
		UPDATE quotes
		SET status = $1,
			sent_at = COALESCE($2, sent_at),
			viewed_at = COALESCE($3, viewed_at),
			accepted_at = COALESCE($4, accepted_at),
			signed_at = COALESCE($5, signed_at),
			signature_data = COALESCE($6, signature_data),
			updated_at = NOW()
		WHERE id = $7 AND status = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		upd.Status, upd.SentAt, upd.ViewedAt, upd.AcceptedAt, upd.SignedAt, sigJSON, id, expect,
	)
	if err != nil {
		return fmt.Errorf("updating quote status: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return quote.ErrStale
	}

	return nil
}

func (s *Store) CreateLineItem(ctx context.Context, li *quote.LineItem) error {
	return insertLineItem(ctx, s.db, li)
}

func (s *Store) GetLineItem(ctx context.Context, quoteID, id uuid.UUID) (*quote.LineItem, error) {
	query := `SELECT ` + selectLineItemColumns + ` FROM line_items WHERE id = $1 AND quote_id = $2`

	li, err := scanLineItem(s.db.QueryRowContext(ctx, query, id, quoteID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("getting line item: %w", err)
	}

	return li, nil
}

func (s *Store) UpdateLineItem(ctx context.Context, li *quote.LineItem) error {
	query := `
		UPDATE line_items
		SET category = $1, description = $2, quality_tier = $3, is_allowance = $4, is_range = $5,
			range_low = $6, range_high = $7, final_selection = $8, final_price = $9,
			selection_status = $10, internal_notes = $11, updated_at = NOW()
		WHERE id = $12 AND quote_id = $13
	`

	var tier *string
	if li.QualityTier != nil {
		t := string(*li.QualityTier)
		tier = &t
	}

	res, err := s.db.ExecContext(ctx, query,
		li.Category, li.Description, tier, li.IsAllowance, li.IsRange,
		li.RangeLow, li.RangeHigh, li.FinalSelection, li.FinalPrice,
		li.SelectionStatus, li.InternalNotes, li.ID, li.QuoteID,
	)
	if err != nil {
		return fmt.Errorf("updating line item: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteLineItem(ctx context.Context, quoteID, id uuid.UUID) error {
	query := `DELETE FROM line_items WHERE id = $1 AND quote_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, quoteID)
	if err != nil {
		return fmt.Errorf("deleting line item: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

func (s *Store) MaxSortOrder(ctx context.Context, quoteID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order), 0) FROM line_items WHERE quote_id = $1`

	var maxOrder int
	if err := s.db.QueryRowContext(ctx, query, quoteID).Scan(&maxOrder); err != nil {
		return 0, fmt.Errorf("finding max sort order: %w", err)
	}

	return maxOrder, nil
}

// ReorderLineItems assigns dense 1-based positions matching the given
// id order, in one transaction.
func (s *Store) ReorderLineItems(ctx context.Context, quoteID uuid.UUID, ids []uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE line_items SET sort_order = $1, updated_at = NOW() WHERE id = $2 AND quote_id = $3`

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, query, i+1, id, quoteID); err != nil {
			return fmt.Errorf("reordering line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}

	return nil
}

// RecalculateTotals refolds the quote's range totals from its current
// line items under a per-quote advisory lock, so two concurrent child
// writes cannot interleave into a lost update.
func (s *Store) RecalculateTotals(ctx context.Context, quoteID uuid.UUID) (int64, int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", totalsLockKey(quoteID)); err != nil {
		return 0, 0, fmt.Errorf("acquiring totals lock: %w", err)
	}

	query := `
		UPDATE quotes
		SET total_range_low = agg.low, total_range_high = agg.high, updated_at = NOW()
		FROM (
			SELECT COALESCE(SUM(range_low), 0) AS low, COALESCE(SUM(range_high), 0) AS high
			FROM line_items WHERE quote_id = $1
		) agg
		WHERE quotes.id = $1
		RETURNING total_range_low, total_range_high
	`

	var low, high int64
	if err := tx.QueryRowContext(ctx, query, quoteID).Scan(&low, &high); err != nil {
		if err == sql.ErrNoRows {
			return 0, 0, quote.ErrNotFound
		}

		return 0, 0, fmt.Errorf("recalculating totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing totals: %w", err)
	}

	return low, high, nil
}
