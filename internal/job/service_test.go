package job_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

func signedQuote() *quote.Quote {
	now := time.Now()

	return &quote.Quote{
		ID:             uuid.New(),
		CompanyID:      uuid.New(),
		Status:         quote.StatusAccepted,
		ProjectAddress: "12 Oak St",
		ProjectCity:    "Portland",
		ProjectState:   "OR",
		ProjectZipCode: "97201",
		TotalRangeLow:  25000,
		TotalRangeHigh: 35000,
		Notes:          "Gate code 4412; dog in yard.",
		SignedAt:       &now,
		Signature:      &quote.Signature{Image: "sig"},
	}
}

func TestService_CreateFromQuote(t *testing.T) {
	t.Run("SnapshotsQuote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		q := signedQuote()

		repo.EXPECT().
			NextSequence(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pattern string) (int, error) {
				assert.Equal(t, "J"+time.Now().Format("0601"), pattern)
				return 3, nil
			})
		repo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, j *job.Job) error {
				assert.Equal(t, q.ID, j.QuoteID)
				assert.Equal(t, job.StatusActive, j.Status)
				assert.Equal(t, identity.DocumentNumber("J", time.Now(), 3), j.JobNumber)
				assert.NotEmpty(t, j.ClientViewToken)
				assert.Equal(t, int64(25000), j.ContractedTotalLow)
				assert.Equal(t, int64(35000), j.ContractedTotalHigh)
				assert.Equal(t, "12 Oak St", j.ProjectAddress)
				assert.Equal(t, "Gate code 4412; dog in yard.", j.Notes)
				assert.Nil(t, j.StartedAt)
				j.ID = uuid.New()
				return nil
			})

		require.NoError(t, svc.CreateFromQuote(context.Background(), q))
	})

	t.Run("RejectsUnsignedQuote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := job.NewService(job.NewMockRepository(ctrl))

		q := signedQuote()
		q.Signature = nil

		require.ErrorIs(t, svc.CreateFromQuote(context.Background(), q), job.ErrNotSigned)
	})

	t.Run("DuplicateQuotePropagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		repo.EXPECT().
			NextSequence(gomock.Any(), gomock.Any()).
			Return(1, nil)
		repo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("job for quote exists: %w", quote.ErrJobExists))

		err := svc.CreateFromQuote(context.Background(), signedQuote())
		require.ErrorIs(t, err, quote.ErrJobExists)
	})

	t.Run("RetriesOnNumberCollision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		repo.EXPECT().
			NextSequence(gomock.Any(), gomock.Any()).
			Return(1, nil).
			Times(2)
		first := repo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("job number taken: %w", identity.ErrNumberCollision))
		repo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any()).
			After(first).
			Return(nil)

		require.NoError(t, svc.CreateFromQuote(context.Background(), signedQuote()))
	})

	t.Run("RetriesWithFreshTokenOnCollision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		repo.EXPECT().
			NextSequence(gomock.Any(), gomock.Any()).
			Return(1, nil).
			Times(2)

		var firstToken string

		first := repo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, j *job.Job) error {
				firstToken = j.ClientViewToken
				return fmt.Errorf("job token taken: %w", identity.ErrTokenCollision)
			})
		repo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any()).
			After(first).
			DoAndReturn(func(_ context.Context, j *job.Job) error {
				assert.NotEqual(t, firstToken, j.ClientViewToken)
				return nil
			})

		require.NoError(t, svc.CreateFromQuote(context.Background(), signedQuote()))
	})
}

func TestService_GetByToken(t *testing.T) {
	t.Run("EmptyTokenIsNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := job.NewService(job.NewMockRepository(ctrl))

		_, err := svc.GetByToken(context.Background(), "")
		require.ErrorIs(t, err, job.ErrNotFound)
	})

	t.Run("ResolvesToken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		want := &job.Job{ID: uuid.New(), ClientViewToken: "tok-abc"}

		repo.EXPECT().
			GetJobByToken(gomock.Any(), "tok-abc").
			Return(want, nil)

		got, err := svc.GetByToken(context.Background(), "tok-abc")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestService_Transitions(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()

	type testCase struct {
		name    string
		from    job.Status
		call    func(svc *job.Service) (*job.Job, error)
		want    job.Status
		wantErr error
	}

	tests := []testCase{
		{
			name: "HoldActive",
			from: job.StatusActive,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Hold(context.Background(), companyID, jobID)
			},
			want: job.StatusOnHold,
		},
		{
			name: "ResumeHeld",
			from: job.StatusOnHold,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Resume(context.Background(), companyID, jobID)
			},
			want: job.StatusActive,
		},
		{
			name: "HoldHeldFails",
			from: job.StatusOnHold,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Hold(context.Background(), companyID, jobID)
			},
			wantErr: job.ErrInvalidTransition,
		},
		{
			name: "CompleteActive",
			from: job.StatusActive,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Complete(context.Background(), companyID, jobID)
			},
			want: job.StatusCompleted,
		},
		{
			name: "CompleteHeld",
			from: job.StatusOnHold,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Complete(context.Background(), companyID, jobID)
			},
			want: job.StatusCompleted,
		},
		{
			name: "CompleteCancelledFails",
			from: job.StatusCancelled,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Complete(context.Background(), companyID, jobID)
			},
			wantErr: job.ErrInvalidTransition,
		},
		{
			name: "CancelActive",
			from: job.StatusActive,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Cancel(context.Background(), companyID, jobID)
			},
			want: job.StatusCancelled,
		},
		{
			name: "CancelCompletedFails",
			from: job.StatusCompleted,
			call: func(svc *job.Service) (*job.Job, error) {
				return svc.Cancel(context.Background(), companyID, jobID)
			},
			wantErr: job.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := job.NewMockRepository(ctrl)
			svc := job.NewService(repo)

			repo.EXPECT().
				GetJob(gomock.Any(), companyID, jobID).
				Return(&job.Job{ID: jobID, CompanyID: companyID, Status: tt.from}, nil)

			if tt.wantErr == nil {
				repo.EXPECT().
					UpdateJobStatus(gomock.Any(), jobID, tt.from, gomock.Any()).
					Return(nil)
			}

			got, err := tt.call(svc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)

			if tt.want == job.StatusCompleted {
				assert.NotNil(t, got.CompletedAt)
			}
		})
	}
}

func TestService_Start(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()

	t.Run("StampsStartDate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		repo.EXPECT().
			GetJob(gomock.Any(), companyID, jobID).
			Return(&job.Job{ID: jobID, CompanyID: companyID, Status: job.StatusActive}, nil)
		repo.EXPECT().
			UpdateJobStatus(gomock.Any(), jobID, job.StatusActive, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ job.Status, upd job.StatusUpdate) error {
				assert.Equal(t, job.StatusActive, upd.Status)
				require.NotNil(t, upd.StartedAt)
				assert.WithinDuration(t, time.Now(), *upd.StartedAt, time.Minute)
				return nil
			})

		got, err := svc.Start(context.Background(), companyID, jobID)
		require.NoError(t, err)
		assert.True(t, got.Started())
	})

	t.Run("ReactivatesHeldJob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		repo.EXPECT().
			GetJob(gomock.Any(), companyID, jobID).
			Return(&job.Job{ID: jobID, CompanyID: companyID, Status: job.StatusOnHold}, nil)
		repo.EXPECT().
			UpdateJobStatus(gomock.Any(), jobID, job.StatusOnHold, gomock.Any()).
			Return(nil)

		got, err := svc.Start(context.Background(), companyID, jobID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusActive, got.Status)
		assert.NotNil(t, got.StartedAt)
	})

	t.Run("CompletedJobRefuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := job.NewMockRepository(ctrl)
		svc := job.NewService(repo)

		repo.EXPECT().
			GetJob(gomock.Any(), companyID, jobID).
			Return(&job.Job{ID: jobID, CompanyID: companyID, Status: job.StatusCompleted}, nil)

		_, err := svc.Start(context.Background(), companyID, jobID)
		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestService_Update(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := job.NewMockRepository(ctrl)
	svc := job.NewService(repo)

	eta := time.Now().AddDate(0, 1, 0)
	notes := "Client added a second vanity."
	addr := "14 Oak St"

	repo.EXPECT().
		GetJob(gomock.Any(), companyID, jobID).
		Return(&job.Job{
			ID:             jobID,
			CompanyID:      companyID,
			Status:         job.StatusActive,
			ProjectAddress: "12 Oak St",
			ProjectCity:    "Portland",
			Notes:          "Gate code 4412.",
		}, nil)
	repo.EXPECT().
		UpdateJobDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j *job.Job) error {
			assert.Equal(t, "14 Oak St", j.ProjectAddress)
			assert.Equal(t, "Portland", j.ProjectCity)
			assert.Equal(t, notes, j.Notes)
			require.NotNil(t, j.EstimatedCompletionAt)
			assert.True(t, eta.Equal(*j.EstimatedCompletionAt))
			return nil
		})

	got, err := svc.Update(context.Background(), companyID, jobID, job.UpdateParams{
		ProjectAddress:        &addr,
		Notes:                 &notes,
		EstimatedCompletionAt: &eta,
	})
	require.NoError(t, err)
	assert.Equal(t, notes, got.Notes)
}

func TestService_RecalculateChangeOrdersTotal(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := job.NewMockRepository(ctrl)
	svc := job.NewService(repo)

	repo.EXPECT().
		GetJob(gomock.Any(), companyID, jobID).
		Return(&job.Job{ID: jobID, ContractedTotalLow: 25000, ContractedTotalHigh: 35000}, nil)
	repo.EXPECT().
		RecalculateChangeOrdersTotal(gomock.Any(), jobID).
		Return(int64(-1200), nil)

	j, err := svc.RecalculateChangeOrdersTotal(context.Background(), companyID, jobID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1200), j.ChangeOrdersTotal)
	assert.Equal(t, int64(23800), j.CurrentTotalLow())
	assert.Equal(t, int64(33800), j.CurrentTotalHigh())
}

func TestJob_CurrentTotals(t *testing.T) {
	j := job.Job{ContractedTotalLow: 10000, ContractedTotalHigh: 15000, ChangeOrdersTotal: 2500}
	assert.Equal(t, int64(12500), j.CurrentTotalLow())
	assert.Equal(t, int64(17500), j.CurrentTotalHigh())
}
