package voice_test

import (
	"bytes"
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

type sessionServiceMocks struct {
	repo  *voice.MockRepository
	audio *voice.MockAudioStore
	queue *voice.MockQueue
}

func newSessionService(t *testing.T) (*voice.Service, sessionServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := sessionServiceMocks{
		repo:  voice.NewMockRepository(ctrl),
		audio: voice.NewMockAudioStore(ctrl),
		queue: voice.NewMockQueue(ctrl),
	}

	processor := voice.NewProcessor(
		m.repo, m.audio,
		voice.NewMockTranscriber(ctrl), voice.NewMockExtractor(ctrl),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return voice.NewService(m.repo, m.audio, processor, m.queue, slog.New(slog.NewTextHandler(io.Discard, nil))), m
}

func TestService_Start(t *testing.T) {
	companyID := uuid.New()

	t.Run("DefaultsToQuoteCreation", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.repo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *voice.Session) error {
				s.ID = uuid.New()
				return nil
			})

		got, err := svc.Start(context.Background(), companyID, voice.StartParams{})
		require.NoError(t, err)
		assert.Equal(t, voice.PurposeQuoteCreation, got.Purpose)
		assert.Equal(t, voice.StatusRecording, got.Status)
	})

	t.Run("UnknownPurpose", func(t *testing.T) {
		svc, _ := newSessionService(t)

		_, err := svc.Start(context.Background(), companyID, voice.StartParams{Purpose: "karaoke"})
		require.Error(t, err)
	})
}

func TestService_AttachAudio(t *testing.T) {
	companyID := uuid.New()
	sessionID := uuid.New()

	duration := 42

	t.Run("StoresAndQueues", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.repo.EXPECT().
			GetSession(gomock.Any(), companyID, sessionID).
			Return(&voice.Session{ID: sessionID, CompanyID: companyID, Status: voice.StatusRecording}, nil)
		m.audio.EXPECT().
			Upload(gomock.Any(), gomock.Any(), "audio/webm", []byte("audio")).
			DoAndReturn(func(_ context.Context, key, _ string, _ []byte) error {
				assert.Contains(t, key, "voice/")
				assert.Contains(t, key, ".webm")
				return nil
			})
		m.repo.EXPECT().
			SetSessionAudio(gomock.Any(), sessionID, gomock.Any(), "audio/webm", &duration).
			Return(nil)
		m.queue.EXPECT().
			Submit(gomock.Any()).
			Return(nil)

		got, err := svc.AttachAudio(context.Background(), companyID, sessionID, []byte("audio"), "audio/webm", &duration)
		require.NoError(t, err)
		assert.NotEmpty(t, got.AudioKey)
		assert.Equal(t, &duration, got.DurationSeconds)
	})

	t.Run("EmptyAudioRejected", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.repo.EXPECT().
			GetSession(gomock.Any(), companyID, sessionID).
			Return(&voice.Session{ID: sessionID}, nil)

		_, err := svc.AttachAudio(context.Background(), companyID, sessionID, nil, "audio/webm", nil)
		require.Error(t, err)
	})
}

func TestService_AttachAudio_LogsInfrastructureFailure(t *testing.T) {
	companyID := uuid.New()
	sessionID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := voice.NewMockRepository(ctrl)
	audio := voice.NewMockAudioStore(ctrl)
	queue := voice.NewMockQueue(ctrl)

	processor := voice.NewProcessor(
		repo, audio,
		voice.NewMockTranscriber(ctrl), voice.NewMockExtractor(ctrl),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	var logged bytes.Buffer
	svc := voice.NewService(repo, audio, processor, queue, slog.New(slog.NewTextHandler(&logged, nil)))

	repo.EXPECT().
		GetSession(gomock.Any(), companyID, sessionID).
		Return(&voice.Session{ID: sessionID, CompanyID: companyID, Status: voice.StatusRecording}, nil)
	audio.EXPECT().
		Upload(gomock.Any(), gomock.Any(), "audio/webm", gomock.Any()).
		Return(nil)
	repo.EXPECT().
		SetSessionAudio(gomock.Any(), sessionID, gomock.Any(), "audio/webm", gomock.Nil()).
		Return(nil)

	// Run the queued task inline. The session row is gone by the time it
	// runs, so processing cannot even record the failure on the session.
	queue.EXPECT().
		Submit(gomock.Any()).
		DoAndReturn(func(task func(ctx context.Context)) error {
			task(context.Background())
			return nil
		})
	repo.EXPECT().
		GetSessionByID(gomock.Any(), sessionID).
		Return(nil, errors.New("connection reset"))

	_, err := svc.AttachAudio(context.Background(), companyID, sessionID, []byte("audio"), "audio/webm", nil)
	require.NoError(t, err)

	assert.Contains(t, logged.String(), "voice processing failed")
	assert.Contains(t, logged.String(), sessionID.String())
}

func TestService_Retry(t *testing.T) {
	companyID := uuid.New()
	sessionID := uuid.New()

	t.Run("FailedSessionRequeues", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.repo.EXPECT().
			GetSession(gomock.Any(), companyID, sessionID).
			Return(&voice.Session{ID: sessionID, Status: voice.StatusFailed, Transcript: "kept"}, nil)
		m.queue.EXPECT().Submit(gomock.Any()).Return(nil)

		got, err := svc.Retry(context.Background(), companyID, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "kept", got.Transcript)
	})

	t.Run("CompletedSessionRefuses", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.repo.EXPECT().
			GetSession(gomock.Any(), companyID, sessionID).
			Return(&voice.Session{ID: sessionID, Status: voice.StatusCompleted}, nil)

		_, err := svc.Retry(context.Background(), companyID, sessionID)
		require.Error(t, err)
	})
}
