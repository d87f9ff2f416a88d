package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/voice"
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

const selectColumns = `
	id, company_id, purpose, status, quote_id, change_order_id,
	audio_key, audio_content_type, duration_seconds,
	transcript, extracted_data, confidence_score, error_message,
	created_at, updated_at
`

func scanSession(s scanner) (*voice.Session, error) {
	var sess voice.Session

	var purposeStr, statusStr string

	var extractedJSON []byte

	if err := s.Scan(
		&sess.ID, &sess.CompanyID, &purposeStr, &statusStr, &sess.QuoteID, &sess.ChangeOrderID,
		&sess.AudioKey, &sess.AudioContentType, &sess.DurationSeconds,
		&sess.Transcript, &extractedJSON, &sess.ConfidenceScore, &sess.ErrorMessage,
		&sess.CreatedAt, &sess.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sess.Purpose = voice.Purpose(purposeStr)
	sess.Status = voice.Status(statusStr)

	if len(extractedJSON) > 0 {
		sess.Extracted = &voice.Extraction{}
		if err := json.Unmarshal(extractedJSON, sess.Extracted); err != nil {
			return nil, fmt.Errorf("decoding extracted data: %w", err)
		}
	}

	return &sess, nil
}

func (s *Store) CreateSession(ctx context.Context, sess *voice.Session) error {
	query := `
		INSERT INTO voice_sessions (company_id, purpose, status, quote_id, change_order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sess.CompanyID, sess.Purpose, sess.Status, sess.QuoteID, sess.ChangeOrderID,
	).Scan(&sess.ID, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating voice session: %w", err)
	}

	return nil
}

func (s *Store) GetSession(ctx context.Context, companyID, id uuid.UUID) (*voice.Session, error) {
	query := `SELECT ` + selectColumns + ` FROM voice_sessions WHERE id = $1 AND company_id = $2`

	sess, err := scanSession(s.db.QueryRowContext(ctx, query, id, companyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, voice.ErrNotFound
		}

		return nil, fmt.Errorf("getting voice session: %w", err)
	}

	return sess, nil
}

func (s *Store) GetSessionByID(ctx context.Context, id uuid.UUID) (*voice.Session, error) {
	query := `SELECT ` + selectColumns + ` FROM voice_sessions WHERE id = $1`

	sess, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, voice.ErrNotFound
		}

		return nil, fmt.Errorf("getting voice session: %w", err)
	}

	return sess, nil
}

func (s *Store) ListSessions(ctx context.Context, companyID uuid.UUID) ([]*voice.Session, error) {
	query := `SELECT ` + selectColumns + ` FROM voice_sessions WHERE company_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing voice sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*voice.Session

	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning voice session: %w", err)
		}

		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

func (s *Store) SetSessionStatus(ctx context.Context, id uuid.UUID, status voice.Status) error {
	query := `UPDATE voice_sessions SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating voice session status: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return voice.ErrNotFound
	}

	return nil
}

func (s *Store) SetSessionAudio(ctx context.Context, id uuid.UUID, key, contentType string, durationSeconds *int) error {
	query := `
		UPDATE voice_sessions
		SET audio_key = $1, audio_content_type = $2, duration_seconds = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query, key, contentType, durationSeconds, id)
	if err != nil {
		return fmt.Errorf("updating voice session audio: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return voice.ErrNotFound
	}

	return nil
}

func (s *Store) SetSessionTranscript(ctx context.Context, id uuid.UUID, transcript string) error {
	query := `UPDATE voice_sessions SET transcript = $1, updated_at = NOW() WHERE id = $2`

	res, err := s.db.ExecContext(ctx, query, transcript, id)
	if err != nil {
		return fmt.Errorf("updating voice session transcript: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return voice.ErrNotFound
	}

	return nil
}

func (s *Store) CompleteSession(ctx context.Context, id uuid.UUID, transcript string, data *voice.Extraction, confidence float64) error {
	extractedJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding extracted data: %w", err)
	}

	query := `
		UPDATE voice_sessions
		SET status = $1, transcript = $2, extracted_data = $3, confidence_score = $4,
			error_message = '', updated_at = NOW()
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query, voice.StatusCompleted, transcript, extractedJSON, confidence, id)
	if err != nil {
		return fmt.Errorf("completing voice session: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return voice.ErrNotFound
	}

	return nil
}

func (s *Store) FailSession(ctx context.Context, id uuid.UUID, errorMessage string) error {
	query := `
		UPDATE voice_sessions
		SET status = $1, error_message = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, voice.StatusFailed, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failing voice session: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return voice.ErrNotFound
	}

	return nil
}
