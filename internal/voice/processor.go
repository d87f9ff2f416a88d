package voice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

//go:generate mockgen -source=processor.go -destination=processor_mock.go -package=voice

// Transcriber turns stored audio into text. Satisfied by DeepgramClient.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (*TranscriptionResult, error)
}

// Extractor pulls structured project data from a transcript. Satisfied
// by OpenAIClient.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (*ExtractionResult, error)
}

// AudioStore holds the recorded audio blobs.
type AudioStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
	Download(ctx context.Context, key string) ([]byte, error)
}

// Processor runs the transcribe-then-extract pipeline over one session.
type Processor struct {
	repo        Repository
	audio       AudioStore
	transcriber Transcriber
	extractor   Extractor
	logger      *slog.Logger
}

func NewProcessor(repo Repository, audio AudioStore, transcriber Transcriber, extractor Extractor, logger *slog.Logger) *Processor {
	return &Processor{
		repo:        repo,
		audio:       audio,
		transcriber: transcriber,
		extractor:   extractor,
		logger:      logger,
	}
}

// Process drives the session from recording to completed or failed. A
// provider failure is terminal for the session, recorded on it, and
// not returned; only infrastructure errors propagate.
func (p *Processor) Process(ctx context.Context, sessionID uuid.UUID) error {
	s, err := p.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("loading voice session: %w", err)
	}

	if err := p.repo.SetSessionStatus(ctx, s.ID, StatusProcessing); err != nil {
		return fmt.Errorf("marking session processing: %w", err)
	}

	// Retried sessions keep an existing transcript and skip straight
	// to extraction.
	if s.Transcript == "" {
		audio, err := p.audio.Download(ctx, s.AudioKey)
		if err != nil {
			return fmt.Errorf("downloading audio: %w", err)
		}

		result, err := p.transcriber.Transcribe(ctx, audio, s.AudioContentType)
		if err != nil {
			p.logger.Error("transcription failed", "session_id", s.ID, "error", err)

			return p.fail(ctx, s.ID, err)
		}

		s.Transcript = result.Transcript

		if err := p.repo.SetSessionTranscript(ctx, s.ID, s.Transcript); err != nil {
			return fmt.Errorf("saving transcript: %w", err)
		}
	}

	extracted, err := p.extractor.Extract(ctx, s.Transcript)
	if err != nil {
		p.logger.Error("extraction failed", "session_id", s.ID, "error", err)

		return p.fail(ctx, s.ID, err)
	}

	if err := p.repo.CompleteSession(ctx, s.ID, s.Transcript, extracted.Data, extracted.Confidence); err != nil {
		return fmt.Errorf("completing session: %w", err)
	}

	p.logger.Info("voice session processed", "session_id", s.ID, "confidence", extracted.Confidence)

	return nil
}

func (p *Processor) fail(ctx context.Context, sessionID uuid.UUID, cause error) error {
	if err := p.repo.FailSession(ctx, sessionID, cause.Error()); err != nil {
		return fmt.Errorf("marking session failed: %w", err)
	}

	return nil
}
