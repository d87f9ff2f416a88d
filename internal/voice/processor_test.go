package voice_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rgoodwin/quoteforge/internal/voice"
)

func strPtr(s string) *string { return &s }

type processorMocks struct {
	repo        *voice.MockRepository
	audio       *voice.MockAudioStore
	transcriber *voice.MockTranscriber
	extractor   *voice.MockExtractor
}

func newProcessorWithMocks(t *testing.T) (*voice.Processor, processorMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := processorMocks{
		repo:        voice.NewMockRepository(ctrl),
		audio:       voice.NewMockAudioStore(ctrl),
		transcriber: voice.NewMockTranscriber(ctrl),
		extractor:   voice.NewMockExtractor(ctrl),
	}

	p := voice.NewProcessor(m.repo, m.audio, m.transcriber, m.extractor, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return p, m
}

func TestProcessor_Process(t *testing.T) {
	sessionID := uuid.New()

	extraction := &voice.Extraction{
		ClientName:   voice.Field{Value: strPtr("John Smith"), Confidence: 0.95},
		TemplateType: voice.Field{Value: strPtr("kitchen"), Confidence: 0.98},
	}

	t.Run("FullPipeline", func(t *testing.T) {
		p, m := newProcessorWithMocks(t)

		m.repo.EXPECT().
			GetSessionByID(gomock.Any(), sessionID).
			Return(&voice.Session{ID: sessionID, Status: voice.StatusRecording, AudioKey: "voice/a/b.wav", AudioContentType: "audio/wav"}, nil)
		m.repo.EXPECT().
			SetSessionStatus(gomock.Any(), sessionID, voice.StatusProcessing).
			Return(nil)
		m.audio.EXPECT().
			Download(gomock.Any(), "voice/a/b.wav").
			Return([]byte("audio-bytes"), nil)
		m.transcriber.EXPECT().
			Transcribe(gomock.Any(), []byte("audio-bytes"), "audio/wav").
			Return(&voice.TranscriptionResult{Transcript: "Kitchen remodel for John Smith.", Confidence: 0.92}, nil)
		m.repo.EXPECT().
			SetSessionTranscript(gomock.Any(), sessionID, "Kitchen remodel for John Smith.").
			Return(nil)
		m.extractor.EXPECT().
			Extract(gomock.Any(), "Kitchen remodel for John Smith.").
			Return(&voice.ExtractionResult{Data: extraction, Confidence: 0.965}, nil)
		m.repo.EXPECT().
			CompleteSession(gomock.Any(), sessionID, "Kitchen remodel for John Smith.", extraction, 0.965).
			Return(nil)

		require.NoError(t, p.Process(context.Background(), sessionID))
	})

	t.Run("ExistingTranscriptSkipsTranscription", func(t *testing.T) {
		p, m := newProcessorWithMocks(t)

		m.repo.EXPECT().
			GetSessionByID(gomock.Any(), sessionID).
			Return(&voice.Session{ID: sessionID, Status: voice.StatusFailed, Transcript: "Already transcribed."}, nil)
		m.repo.EXPECT().
			SetSessionStatus(gomock.Any(), sessionID, voice.StatusProcessing).
			Return(nil)
		m.extractor.EXPECT().
			Extract(gomock.Any(), "Already transcribed.").
			Return(&voice.ExtractionResult{Data: extraction, Confidence: 0.9}, nil)
		m.repo.EXPECT().
			CompleteSession(gomock.Any(), sessionID, "Already transcribed.", extraction, 0.9).
			Return(nil)

		require.NoError(t, p.Process(context.Background(), sessionID))
	})

	t.Run("TranscriptionFailureFailsSession", func(t *testing.T) {
		p, m := newProcessorWithMocks(t)

		m.repo.EXPECT().
			GetSessionByID(gomock.Any(), sessionID).
			Return(&voice.Session{ID: sessionID, AudioKey: "k"}, nil)
		m.repo.EXPECT().SetSessionStatus(gomock.Any(), sessionID, voice.StatusProcessing).Return(nil)
		m.audio.EXPECT().Download(gomock.Any(), "k").Return([]byte("audio"), nil)
		m.transcriber.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("deepgram: 503"))
		m.repo.EXPECT().
			FailSession(gomock.Any(), sessionID, "deepgram: 503").
			Return(nil)

		// Provider failure is terminal for the session, not for the caller.
		require.NoError(t, p.Process(context.Background(), sessionID))
	})

	t.Run("ExtractionFailureFailsSession", func(t *testing.T) {
		p, m := newProcessorWithMocks(t)

		m.repo.EXPECT().
			GetSessionByID(gomock.Any(), sessionID).
			Return(&voice.Session{ID: sessionID, Transcript: "text"}, nil)
		m.repo.EXPECT().SetSessionStatus(gomock.Any(), sessionID, voice.StatusProcessing).Return(nil)
		m.extractor.EXPECT().
			Extract(gomock.Any(), "text").
			Return(nil, errors.New("openai: rate limited"))
		m.repo.EXPECT().
			FailSession(gomock.Any(), sessionID, "openai: rate limited").
			Return(nil)

		require.NoError(t, p.Process(context.Background(), sessionID))
	})

	t.Run("RepoErrorPropagates", func(t *testing.T) {
		p, m := newProcessorWithMocks(t)

		m.repo.EXPECT().
			GetSessionByID(gomock.Any(), sessionID).
			Return(nil, voice.ErrNotFound)

		require.ErrorIs(t, p.Process(context.Background(), sessionID), voice.ErrNotFound)
	})
}

func TestExtraction_AverageConfidence(t *testing.T) {
	e := voice.Extraction{
		ClientName:     voice.Field{Value: strPtr("John Smith"), Confidence: 0.95},
		ProjectAddress: voice.Field{Value: strPtr("123 Main Street"), Confidence: 0.90},
		ProjectCity:    voice.Field{Confidence: 0},
		ProjectState:   voice.Field{Confidence: 0},
		TemplateType:   voice.Field{Value: strPtr("kitchen"), Confidence: 0.98},
		ProjectSize:    voice.Field{Value: strPtr("medium"), Confidence: 0.85},
		LineItems: []voice.ExtractedLineItem{
			{Category: "cabinets", Confidence: 0.88},
			{Category: "demo", Confidence: 0.92},
		},
	}

	// Zero-confidence fields stay out of the mean.
	assert.InDelta(t, 0.913, e.AverageConfidence(), 0.001)

	empty := voice.Extraction{}
	assert.Zero(t, empty.AverageConfidence())
}

func TestSession_ConfidenceLevel(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name  string
		score *float64
		want  voice.ConfidenceLevel
	}{
		{"High", f(0.85), voice.ConfidenceHigh},
		{"Medium", f(0.60), voice.ConfidenceMedium},
		{"Low", f(0.59), voice.ConfidenceLow},
		{"Unknown", nil, voice.ConfidenceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := voice.Session{ConfidenceScore: tt.score}
			assert.Equal(t, tt.want, s.ConfidenceLevel())
		})
	}
}

func TestSession_FormattedDuration(t *testing.T) {
	d := func(v int) *int { return &v }

	assert.Equal(t, "2m 15s", (&voice.Session{DurationSeconds: d(135)}).FormattedDuration())
	assert.Equal(t, "45s", (&voice.Session{DurationSeconds: d(45)}).FormattedDuration())
	assert.Equal(t, "", (&voice.Session{}).FormattedDuration())
}
