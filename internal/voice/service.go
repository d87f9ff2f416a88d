package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("voice session not found")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=voice

// Repository persists voice sessions.
type Repository interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, companyID, id uuid.UUID) (*Session, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (*Session, error)
	ListSessions(ctx context.Context, companyID uuid.UUID) ([]*Session, error)
	SetSessionStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetSessionAudio(ctx context.Context, id uuid.UUID, key, contentType string, durationSeconds *int) error
	SetSessionTranscript(ctx context.Context, id uuid.UUID, transcript string) error
	CompleteSession(ctx context.Context, id uuid.UUID, transcript string, data *Extraction, confidence float64) error
	FailSession(ctx context.Context, id uuid.UUID, errorMessage string) error
}

// Queue runs processing off the request path. Satisfied by worker.Pool.
type Queue interface {
	Submit(task func(ctx context.Context)) error
}

type Service struct {
	repo      Repository
	audio     AudioStore
	processor *Processor
	queue     Queue
	logger    *slog.Logger
}

func NewService(repo Repository, audio AudioStore, processor *Processor, queue Queue, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		audio:     audio,
		processor: processor,
		queue:     queue,
		logger:    logger,
	}
}

type StartParams struct {
	Purpose       Purpose
	QuoteID       *uuid.UUID
	ChangeOrderID *uuid.UUID
}

// Start opens a recording session.
func (s *Service) Start(ctx context.Context, companyID uuid.UUID, params StartParams) (*Session, error) {
	if params.Purpose == "" {
		params.Purpose = PurposeQuoteCreation
	}

	if !params.Purpose.Valid() {
		return nil, fmt.Errorf("unknown purpose %q", params.Purpose)
	}

	session := &Session{
		CompanyID:     companyID,
		Purpose:       params.Purpose,
		Status:        StatusRecording,
		QuoteID:       params.QuoteID,
		ChangeOrderID: params.ChangeOrderID,
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Session, error) {
	return s.repo.GetSession(ctx, companyID, id)
}

func (s *Service) List(ctx context.Context, companyID uuid.UUID) ([]*Session, error) {
	return s.repo.ListSessions(ctx, companyID)
}

// AttachAudio stores the recording and queues the session for
// processing. The processing itself runs on the worker pool; the
// caller polls the session for completion.
func (s *Service) AttachAudio(ctx context.Context, companyID, id uuid.UUID, audio []byte, contentType string, durationSeconds *int) (*Session, error) {
	session, err := s.repo.GetSession(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if len(audio) == 0 {
		return nil, fmt.Errorf("audio payload is empty")
	}

	key := fmt.Sprintf("voice/%s/%s%s", companyID, id, extensionFor(contentType))

	if err := s.audio.Upload(ctx, key, contentType, audio); err != nil {
		return nil, fmt.Errorf("storing audio: %w", err)
	}

	if err := s.repo.SetSessionAudio(ctx, id, key, contentType, durationSeconds); err != nil {
		return nil, err
	}

	session.AudioKey = key
	session.AudioContentType = contentType
	session.DurationSeconds = durationSeconds

	if err := s.queue.Submit(s.processTask(id)); err != nil {
		return nil, fmt.Errorf("queueing voice processing: %w", err)
	}

	return session, nil
}

// processTask wraps a processing run for the worker pool. Pipeline
// failures land on the session itself; what gets logged here is the
// infrastructure error that kept even that from happening.
func (s *Service) processTask(id uuid.UUID) func(ctx context.Context) {
	return func(ctx context.Context) {
		if err := s.processor.Process(ctx, id); err != nil {
			s.logger.Error("voice processing failed", "session_id", id, "error", err)
		}
	}
}

// Retry re-queues a failed session. An existing transcript is kept, so
// a retry after an extraction failure skips transcription.
func (s *Service) Retry(ctx context.Context, companyID, id uuid.UUID) (*Session, error) {
	session, err := s.repo.GetSession(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if session.Status != StatusFailed {
		return nil, fmt.Errorf("retry from %s status", session.Status)
	}

	if err := s.queue.Submit(s.processTask(id)); err != nil {
		return nil, fmt.Errorf("queueing voice processing: %w", err)
	}

	return session, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/webm":
		return ".webm"
	case "audio/mp4", "audio/m4a":
		return ".m4a"
	case "audio/ogg":
		return ".ogg"
	default:
		return ".wav"
	}
}
