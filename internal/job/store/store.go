package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/job"
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
	case "jobs_quote_id_key":
		return fmt.Errorf("job for quote exists: %w", quote.ErrJobExists)
	case "jobs_job_number_key":
		return fmt.Errorf("job number taken: %w", identity.ErrNumberCollision)
	case "jobs_client_view_token_key":
		return fmt.Errorf("job token taken: %w", identity.ErrTokenCollision)
	}

	return err
}

func changeOrdersLockKey(jobID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("job-change-orders:"))
	h.Write(jobID[:])

	return int64(h.Sum64())
}

const selectJobColumns = `
	id, company_id, quote_id, client_id, job_number, status, client_view_token,
	project_address, project_city, project_state, project_zip_code,
	contracted_total_low, contracted_total_high, change_orders_total, notes,
	started_at, estimated_completion_at, completed_at, created_at, updated_at
`

func scanJob(s scanner) (*job.Job, error) {
	var j job.Job

	var statusStr string

	if err := s.Scan(
		&j.ID, &j.CompanyID, &j.QuoteID, &j.ClientID, &j.JobNumber, &statusStr, &j.ClientViewToken,
		&j.ProjectAddress, &j.ProjectCity, &j.ProjectState, &j.ProjectZipCode,
		&j.ContractedTotalLow, &j.ContractedTotalHigh, &j.ChangeOrdersTotal, &j.Notes,
		&j.StartedAt, &j.EstimatedCompletionAt, &j.CompletedAt, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}

	j.Status = job.Status(statusStr)

	return &j, nil
}

func (s *Store) CreateJob(ctx context.Context, j *job.Job) error {
	query := `
		INSERT INTO jobs (company_id, quote_id, client_id, job_number, status, client_view_token,
			project_address, project_city, project_state, project_zip_code,
			contracted_total_low, contracted_total_high, change_orders_total,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		j.CompanyID, j.QuoteID, j.ClientID, j.JobNumber, j.Status, j.ClientViewToken,
		j.ProjectAddress, j.ProjectCity, j.ProjectState, j.ProjectZipCode,
		j.ContractedTotalLow, j.ContractedTotalHigh, j.ChangeOrdersTotal,
		j.Notes,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating job: %w", mapUniqueViolation(err))
	}

	return nil
}

func (s *Store) GetJob(ctx context.Context, companyID, id uuid.UUID) (*job.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM jobs WHERE id = $1 AND company_id = $2`

	j, err := scanJob(s.db.QueryRowContext(ctx, query, id, companyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound
		}

		return nil, fmt.Errorf("getting job: %w", err)
	}

	return j, nil
}

func (s *Store) GetJobByID(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM jobs WHERE id = $1`

	j, err := scanJob(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound
		}

		return nil, fmt.Errorf("getting job: %w", err)
	}

	return j, nil
}

func (s *Store) GetJobByToken(ctx context.Context, token string) (*job.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM jobs WHERE client_view_token = $1`

	j, err := scanJob(s.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound
		}

		return nil, fmt.Errorf("getting job by token: %w", err)
	}

	return j, nil
}

func (s *Store) GetJobByQuote(ctx context.Context, companyID, quoteID uuid.UUID) (*job.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM jobs WHERE quote_id = $1 AND company_id = $2`

	j, err := scanJob(s.db.QueryRowContext(ctx, query, quoteID, companyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound
		}

		return nil, fmt.Errorf("getting job by quote: %w", err)
	}

	return j, nil
}

func (s *Store) ListJobs(ctx context.Context, companyID uuid.UUID, filter job.ListFilter) ([]*job.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM jobs WHERE company_id = $1`

	args := []any{companyID}

	if filter.Status != nil {
		query += ` AND status = $2`

		args = append(args, *filter.Status)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*job.Job

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (s *Store) NextSequence(ctx context.Context, pattern string) (int, error) {
	query := `SELECT COUNT(*) + 1 FROM jobs WHERE job_number LIKE $1`

	var seq int
	if err := s.db.QueryRowContext(ctx, query, pattern+"%").Scan(&seq); err != nil {
		return 0, fmt.Errorf("counting job numbers: %w", err)
	}

	return seq, nil
}

func (s *Store) UpdateJobDetails(ctx context.Context, j *job.Job) error {
	query := `
		UPDATE jobs
		SET project_address = $1, project_city = $2, project_state = $3,
			project_zip_code = $4, notes = $5, estimated_completion_at = $6,
			updated_at = NOW()
		WHERE id = $7 AND company_id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		j.ProjectAddress, j.ProjectCity, j.ProjectState,
		j.ProjectZipCode, j.Notes, j.EstimatedCompletionAt,
		j.ID, j.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("updating job details: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return job.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateJobStatus(ctx context.Context, id uuid.UUID, expect job.Status, upd job.StatusUpdate) error {
	query := `
		UPDATE jobs
		SET status = $1,
			started_at = COALESCE($2, started_at),
			completed_at = COALESCE($3, completed_at),
			updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	res, err := s.db.ExecContext(ctx, query, upd.Status, upd.StartedAt, upd.CompletedAt, id, expect)
	if err != nil {
		return fmt.Errorf("updating job status: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return job.ErrStale
	}

	return nil
}

// RecalculateChangeOrdersTotal refolds the maintained sum from signed
// fixed-amount change orders. Time-and-materials orders carry no fixed
// amount and are excluded by the amount filter.
func (s *Store) RecalculateChangeOrdersTotal(ctx context.Context, jobID uuid.UUID) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", changeOrdersLockKey(jobID)); err != nil {
		return 0, fmt.Errorf("acquiring change orders lock: %w", err)
	}

	query := `
		UPDATE jobs
		SET change_orders_total = agg.total, updated_at = NOW()
		FROM (
			SELECT COALESCE(SUM(amount), 0) AS total
			FROM change_orders
			WHERE job_id = $1 AND status = 'signed' AND NOT is_time_and_materials
		) agg
		WHERE jobs.id = $1
		RETURNING change_orders_total
	`

	var total int64
	if err := tx.QueryRowContext(ctx, query, jobID).Scan(&total); err != nil {
		if err == sql.ErrNoRows {
			return 0, job.ErrNotFound
		}

		return 0, fmt.Errorf("recalculating change orders total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing change orders total: %w", err)
	}

	return total, nil
}
