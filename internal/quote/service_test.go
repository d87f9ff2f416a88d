package quote_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rgoodwin/quoteforge/internal/identity"
	"github.com/rgoodwin/quoteforge/internal/quote"
	"github.com/rgoodwin/quoteforge/internal/template"
)

type serviceMocks struct {
	repo      *quote.MockRepository
	templates *quote.MockTemplateResolver
	jobs      *quote.MockJobCreator
}

func newServiceWithMocks(t *testing.T) (*quote.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:      quote.NewMockRepository(ctrl),
		templates: quote.NewMockTemplateResolver(ctrl),
		jobs:      quote.NewMockJobCreator(ctrl),
	}

	return quote.NewService(m.repo, m.templates, m.jobs), m
}

func TestService_Create(t *testing.T) {
	companyID := uuid.New()

	type testCase struct {
		name      string
		params    quote.CreateParams
		setupMock func(m serviceMocks)
		check     func(t *testing.T, got *quote.Quote)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "ExplicitItemsComputeTotals",
			params: quote.CreateParams{
				TemplateType: template.TypeKitchen,
				Items: []quote.LineItemParams{
					{Category: quote.CategoryCabinets, Description: "Cabinets", IsRange: true, RangeLow: int64Ptr(1000), RangeHigh: int64Ptr(2000)},
					{Category: quote.CategoryLabor, Description: "Labor", RangeLow: int64Ptr(500)},
				},
			},
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					NextSequence(gomock.Any(), gomock.Any()).
					Return(7, nil)
				m.repo.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q *quote.Quote, items []*quote.LineItem) error {
						q.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, got *quote.Quote) {
				assert.Equal(t, quote.StatusDraft, got.Status)
				assert.Equal(t, int64(1500), got.TotalRangeLow)
				assert.Equal(t, int64(2500), got.TotalRangeHigh)
				assert.Len(t, got.LineItems, 2)
				// Single-price item normalized to a degenerate range.
				assert.Equal(t, int64(500), *got.LineItems[1].RangeHigh)
				assert.NotEmpty(t, got.QuoteNumber)
				assert.Len(t, got.ClientViewToken, 43)
			},
		},
		{
			name: "SeedsFromTemplate",
			params: quote.CreateParams{
				TemplateType: template.TypeBathroom,
				ProjectSize:  template.SizeSmall,
			},
			setupMock: func(m serviceMocks) {
				m.templates.EXPECT().
					Resolve(gomock.Any(), companyID, nil, template.TypeBathroom).
					Return(template.BathroomTemplate(), nil)
				m.repo.EXPECT().
					NextSequence(gomock.Any(), gomock.Any()).
					Return(1, nil)
				m.repo.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, got *quote.Quote) {
				require.NotEmpty(t, got.LineItems)
				for i, li := range got.LineItems {
					assert.True(t, li.IsRange)
					assert.Equal(t, i+1, li.SortOrder)
					assert.Equal(t, quote.SelectionPending, li.SelectionStatus)
				}
			},
		},
		{
			name: "RetriesOnNumberCollision",
			params: quote.CreateParams{
				Items: []quote.LineItemParams{
					{Category: quote.CategoryOther, Description: "Misc", RangeLow: int64Ptr(100)},
				},
			},
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					NextSequence(gomock.Any(), gomock.Any()).
					Return(3, nil).
					Times(2)
				first := m.repo.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("quote number taken: %w", identity.ErrNumberCollision))
				m.repo.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).
					After(first).
					Return(nil)
			},
			check: func(t *testing.T, got *quote.Quote) {
				assert.NotEmpty(t, got.QuoteNumber)
			},
		},
		{
			name: "InvalidValidDays",
			params: quote.CreateParams{
				ValidDays: func() *int { v := 0; return &v }(),
			},
			wantErr: &quote.ValidationError{Field: "valid_days", Reason: "must be greater than zero"},
		},
		{
			name: "InvalidItem",
			params: quote.CreateParams{
				Items: []quote.LineItemParams{
					{Category: quote.CategoryDemo, RangeLow: int64Ptr(100)},
				},
			},
			wantErr: &quote.ValidationError{Field: "description", Reason: "description is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.Create(context.Background(), companyID, tt.params)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestService_MarkSent(t *testing.T) {
	companyID := uuid.New()
	quoteID := uuid.New()

	type testCase struct {
		name       string
		status     quote.Status
		setupMock  func(m serviceMocks)
		wantStatus quote.Status
		wantErr    error
	}

	tests := []testCase{
		{
			name:   "DraftTransitions",
			status: quote.StatusDraft,
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					UpdateQuoteStatus(gomock.Any(), quoteID, quote.StatusDraft, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ quote.Status, upd quote.StatusUpdate) error {
						assert.Equal(t, quote.StatusSent, upd.Status)
						assert.NotNil(t, upd.SentAt)
						return nil
					})
			},
			wantStatus: quote.StatusSent,
		},
		{
			name:   "ResendRefreshesSentAt",
			status: quote.StatusViewed,
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					UpdateQuoteStatus(gomock.Any(), quoteID, quote.StatusViewed, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ quote.Status, upd quote.StatusUpdate) error {
						assert.Equal(t, quote.StatusViewed, upd.Status)
						assert.NotNil(t, upd.SentAt)
						return nil
					})
			},
			wantStatus: quote.StatusViewed,
		},
		{
			name:    "AcceptedRefusesSend",
			status:  quote.StatusAccepted,
			wantErr: quote.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			m.repo.EXPECT().
				GetQuote(gomock.Any(), companyID, quoteID).
				Return(&quote.Quote{ID: quoteID, CompanyID: companyID, Status: tt.status}, nil)

			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.MarkSent(context.Background(), companyID, quoteID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.NotNil(t, got.SentAt)
		})
	}
}

func TestService_MarkViewed(t *testing.T) {
	t.Run("SentTransitions", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		q := &quote.Quote{ID: uuid.New(), Status: quote.StatusSent, ClientViewToken: "tok"}

		m.repo.EXPECT().
			UpdateQuoteStatus(gomock.Any(), q.ID, quote.StatusSent, gomock.Any()).
			Return(nil)

		got, err := svc.MarkViewed(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, quote.StatusViewed, got.Status)
		assert.NotNil(t, got.ViewedAt)
	})

	t.Run("NonSentIsNoOp", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)
		q := &quote.Quote{ID: uuid.New(), Status: quote.StatusAccepted}

		got, err := svc.MarkViewed(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, quote.StatusAccepted, got.Status)
	})

	t.Run("LostRaceReloadsByToken", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		q := &quote.Quote{ID: uuid.New(), Status: quote.StatusSent, ClientViewToken: "tok"}
		current := &quote.Quote{ID: q.ID, Status: quote.StatusAccepted, ClientViewToken: "tok"}

		m.repo.EXPECT().
			UpdateQuoteStatus(gomock.Any(), q.ID, quote.StatusSent, gomock.Any()).
			Return(quote.ErrStale)
		m.repo.EXPECT().
			GetQuoteByToken(gomock.Any(), "tok").
			Return(current, nil)

		got, err := svc.MarkViewed(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, quote.StatusAccepted, got.Status)
	})
}

func TestService_Sign(t *testing.T) {
	companyID := uuid.New()
	quoteID := uuid.New()

	params := quote.SignParams{
		SignatureImage: "data:image/png;base64,abc",
		SignerName:     "Pat Doe",
		SignerEmail:    "pat@example.com",
		SignerIP:       "203.0.113.9",
	}

	t.Run("SignsAndCreatesJob", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		q := &quote.Quote{ID: quoteID, CompanyID: companyID, Status: quote.StatusViewed}

		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(q, nil)
		m.repo.EXPECT().
			UpdateQuoteStatus(gomock.Any(), quoteID, quote.StatusViewed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ quote.Status, upd quote.StatusUpdate) error {
				assert.Equal(t, quote.StatusAccepted, upd.Status)
				require.NotNil(t, upd.Signature)
				assert.Equal(t, "Pat Doe", upd.Signature.SignerName)

				signedAt, err := time.Parse(time.RFC3339, upd.Signature.SignedAt)
				require.NoError(t, err)
				assert.WithinDuration(t, time.Now(), signedAt, time.Minute)
				return nil
			})
		m.jobs.EXPECT().
			CreateFromQuote(gomock.Any(), q).
			Return(nil)

		got, err := svc.Sign(context.Background(), companyID, quoteID, params)
		require.NoError(t, err)
		assert.Equal(t, quote.StatusAccepted, got.Status)
		assert.NotNil(t, got.AcceptedAt)
		assert.NotNil(t, got.SignedAt)
	})

	t.Run("ExistingJobIsNotAnError", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		q := &quote.Quote{ID: quoteID, CompanyID: companyID, Status: quote.StatusSent}

		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(q, nil)
		m.repo.EXPECT().
			UpdateQuoteStatus(gomock.Any(), quoteID, quote.StatusSent, gomock.Any()).
			Return(nil)
		m.jobs.EXPECT().
			CreateFromQuote(gomock.Any(), q).
			Return(fmt.Errorf("job for quote exists: %w", quote.ErrJobExists))

		got, err := svc.Sign(context.Background(), companyID, quoteID, params)
		require.NoError(t, err)
		assert.Equal(t, quote.StatusAccepted, got.Status)
	})

	t.Run("AlreadyAccepted", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		q := &quote.Quote{ID: quoteID, CompanyID: companyID, Status: quote.StatusAccepted}

		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(q, nil)
		m.jobs.EXPECT().
			CreateFromQuote(gomock.Any(), q).
			Return(fmt.Errorf("job for quote exists: %w", quote.ErrJobExists))

		_, err := svc.Sign(context.Background(), companyID, quoteID, params)
		require.ErrorIs(t, err, quote.ErrAlreadyAccepted)
	})

	t.Run("AcceptedButJoblessRetriesJob", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		q := &quote.Quote{ID: quoteID, CompanyID: companyID, Status: quote.StatusAccepted}

		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(q, nil)
		m.jobs.EXPECT().
			CreateFromQuote(gomock.Any(), q).
			Return(nil)

		got, err := svc.Sign(context.Background(), companyID, quoteID, params)
		require.NoError(t, err)
		assert.Equal(t, quote.StatusAccepted, got.Status)
	})

	t.Run("AcceptedJobRetryFailurePropagates", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		q := &quote.Quote{ID: quoteID, CompanyID: companyID, Status: quote.StatusAccepted}

		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(q, nil)
		m.jobs.EXPECT().
			CreateFromQuote(gomock.Any(), q).
			Return(errors.New("connection reset"))

		_, err := svc.Sign(context.Background(), companyID, quoteID, params)
		require.Error(t, err)
		require.NotErrorIs(t, err, quote.ErrAlreadyAccepted)
	})

	t.Run("MissingSignatureImage", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusSent}, nil)

		_, err := svc.Sign(context.Background(), companyID, quoteID, quote.SignParams{})

		var vErr *quote.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "signature_image", vErr.Field)
	})

	t.Run("ConcurrentSignLosesOnStale", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusViewed}, nil)
		m.repo.EXPECT().
			UpdateQuoteStatus(gomock.Any(), quoteID, quote.StatusViewed, gomock.Any()).
			Return(quote.ErrStale)

		_, err := svc.Sign(context.Background(), companyID, quoteID, params)
		require.ErrorIs(t, err, quote.ErrStale)
	})
}

func TestService_SignByToken(t *testing.T) {
	svc, m := newServiceWithMocks(t)
	q := &quote.Quote{ID: uuid.New(), Status: quote.StatusViewed, ClientViewToken: "tok"}

	m.repo.EXPECT().
		GetQuoteByToken(gomock.Any(), "tok").
		Return(q, nil)
	m.repo.EXPECT().
		UpdateQuoteStatus(gomock.Any(), q.ID, quote.StatusViewed, gomock.Any()).
		Return(nil)
	m.jobs.EXPECT().
		CreateFromQuote(gomock.Any(), q).
		Return(nil)

	got, err := svc.SignByToken(context.Background(), "tok", quote.SignParams{SignatureImage: "sig"})
	require.NoError(t, err)
	assert.Equal(t, quote.StatusAccepted, got.Status)

	_, err = svc.SignByToken(context.Background(), "", quote.SignParams{SignatureImage: "sig"})
	require.ErrorIs(t, err, quote.ErrNotFound)
}

func TestService_AddLineItem(t *testing.T) {
	companyID := uuid.New()
	quoteID := uuid.New()

	svc, m := newServiceWithMocks(t)

	m.repo.EXPECT().
		GetQuote(gomock.Any(), companyID, quoteID).
		Return(&quote.Quote{ID: quoteID, CompanyID: companyID, Status: quote.StatusDraft}, nil)
	m.repo.EXPECT().
		MaxSortOrder(gomock.Any(), quoteID).
		Return(4, nil)
	m.repo.EXPECT().
		CreateLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, li *quote.LineItem) error {
			li.ID = uuid.New()
			return nil
		})
	m.repo.EXPECT().
		RecalculateTotals(gomock.Any(), quoteID).
		Return(int64(1500), int64(2500), nil)

	li, err := svc.AddLineItem(context.Background(), companyID, quoteID, quote.LineItemParams{
		Category:    quote.CategoryPermits,
		Description: "Building permit",
		RangeLow:    int64Ptr(450),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, li.SortOrder)
	assert.Equal(t, quoteID, li.QuoteID)
	assert.Equal(t, int64(450), *li.RangeHigh)
}

func TestService_UpdateLineItem(t *testing.T) {
	companyID := uuid.New()
	quoteID := uuid.New()
	itemID := uuid.New()

	svc, m := newServiceWithMocks(t)

	existing := &quote.LineItem{
		ID:          itemID,
		QuoteID:     quoteID,
		Category:    quote.CategoryCountertops,
		Description: "Quartz",
		IsAllowance: true,
		IsRange:     true,
		RangeLow:    int64Ptr(4000),
		RangeHigh:   int64Ptr(6000),
	}

	m.repo.EXPECT().
		GetQuote(gomock.Any(), companyID, quoteID).
		Return(&quote.Quote{ID: quoteID}, nil)
	m.repo.EXPECT().
		GetLineItem(gomock.Any(), quoteID, itemID).
		Return(existing, nil)
	m.repo.EXPECT().
		UpdateLineItem(gomock.Any(), existing).
		Return(nil)
	m.repo.EXPECT().
		RecalculateTotals(gomock.Any(), quoteID).
		Return(int64(0), int64(0), nil)

	finalized := quote.SelectionFinalized

	got, err := svc.UpdateLineItem(context.Background(), companyID, quoteID, itemID, quote.LineItemUpdate{
		FinalSelection:  func() *string { s := "Caesarstone Cloudburst"; return &s }(),
		FinalPrice:      int64Ptr(6400),
		SelectionStatus: &finalized,
	})
	require.NoError(t, err)
	assert.Equal(t, quote.SelectionFinalized, got.SelectionStatus)
	assert.Equal(t, quote.BudgetOver, got.BudgetStatus())
	assert.Equal(t, int64(400), got.OverageAmount())
}

func TestService_RemoveLineItem(t *testing.T) {
	companyID := uuid.New()
	quoteID := uuid.New()
	itemID := uuid.New()

	svc, m := newServiceWithMocks(t)

	m.repo.EXPECT().
		GetQuote(gomock.Any(), companyID, quoteID).
		Return(&quote.Quote{ID: quoteID}, nil)
	m.repo.EXPECT().
		DeleteLineItem(gomock.Any(), quoteID, itemID).
		Return(nil)
	m.repo.EXPECT().
		RecalculateTotals(gomock.Any(), quoteID).
		Return(int64(0), int64(0), nil)

	require.NoError(t, svc.RemoveLineItem(context.Background(), companyID, quoteID, itemID))
}

func TestService_Reject(t *testing.T) {
	companyID := uuid.New()
	quoteID := uuid.New()

	t.Run("NonTerminal", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusSent}, nil)
		m.repo.EXPECT().
			UpdateQuoteStatus(gomock.Any(), quoteID, quote.StatusSent, gomock.Any()).
			Return(nil)

		got, err := svc.Reject(context.Background(), companyID, quoteID)
		require.NoError(t, err)
		assert.Equal(t, quote.StatusRejected, got.Status)
	})

	t.Run("Terminal", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.repo.EXPECT().
			GetQuote(gomock.Any(), companyID, quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusAccepted}, nil)

		_, err := svc.Reject(context.Background(), companyID, quoteID)
		require.ErrorIs(t, err, quote.ErrInvalidTransition)
	})
}

func TestService_Duplicate(t *testing.T) {
	companyID := uuid.New()
	quoteID := uuid.New()

	now := time.Now()
	src := &quote.Quote{
		ID:              quoteID,
		CompanyID:       companyID,
		Status:          quote.StatusAccepted,
		QuoteNumber:     "K26080003",
		ClientViewToken: "old-token",
		TemplateType:    template.TypeKitchen,
		ProjectSize:     template.SizeLarge,
		SentAt:          &now,
		AcceptedAt:      &now,
		SignedAt:        &now,
		Signature:       &quote.Signature{Image: "sig"},
		LineItems: []*quote.LineItem{
			{ID: uuid.New(), QuoteID: quoteID, Category: quote.CategoryCabinets, Description: "Cabinets", IsRange: true, RangeLow: int64Ptr(1000), RangeHigh: int64Ptr(2000), SortOrder: 1},
		},
	}

	svc, m := newServiceWithMocks(t)

	m.repo.EXPECT().
		GetQuote(gomock.Any(), companyID, quoteID).
		Return(src, nil)
	m.repo.EXPECT().
		NextSequence(gomock.Any(), gomock.Any()).
		Return(4, nil)
	m.repo.EXPECT().
		CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *quote.Quote, items []*quote.LineItem) error {
			q.ID = uuid.New()
			return nil
		})

	dup, err := svc.Duplicate(context.Background(), companyID, quoteID)
	require.NoError(t, err)

	assert.Equal(t, quote.StatusDraft, dup.Status)
	assert.NotEqual(t, src.QuoteNumber, dup.QuoteNumber)
	assert.NotEqual(t, src.ClientViewToken, dup.ClientViewToken)
	assert.Nil(t, dup.SentAt)
	assert.Nil(t, dup.AcceptedAt)
	assert.Nil(t, dup.SignedAt)
	assert.Nil(t, dup.Signature)
	assert.Equal(t, int64(1000), dup.TotalRangeLow)
	assert.Equal(t, int64(2000), dup.TotalRangeHigh)

	require.Len(t, dup.LineItems, 1)
	assert.Equal(t, uuid.Nil, dup.LineItems[0].ID)
	assert.Equal(t, src.LineItems[0].Description, dup.LineItems[0].Description)
}

func TestService_GetByToken(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	m.repo.EXPECT().
		GetQuoteByToken(gomock.Any(), "known").
		Return(&quote.Quote{ID: uuid.New()}, nil)

	_, err := svc.GetByToken(context.Background(), "known")
	require.NoError(t, err)

	_, err = svc.GetByToken(context.Background(), "")
	require.ErrorIs(t, err, quote.ErrNotFound)

	m.repo.EXPECT().
		GetQuoteByToken(gomock.Any(), "unknown").
		Return(nil, quote.ErrNotFound)

	_, err = svc.GetByToken(context.Background(), "unknown")
	require.ErrorIs(t, err, quote.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	svc, m := newServiceWithMocks(t)
	q := &quote.Quote{ID: uuid.New(), CompanyID: uuid.New(), Status: quote.StatusDraft}

	m.repo.EXPECT().
		UpdateQuote(gomock.Any(), q).
		Return(nil)
	m.repo.EXPECT().
		RecalculateTotals(gomock.Any(), q.ID).
		Return(int64(9000), int64(12000), nil)

	got, err := svc.Update(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), got.TotalRangeLow)
	assert.Equal(t, int64(12000), got.TotalRangeHigh)
}

func TestService_CreateExhaustsRetries(t *testing.T) {
	companyID := uuid.New()
	svc, m := newServiceWithMocks(t)

	m.repo.EXPECT().
		NextSequence(gomock.Any(), gomock.Any()).
		Return(1, nil).
		Times(3)
	m.repo.EXPECT().
		CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("token taken: %w", identity.ErrTokenCollision)).
		Times(3)

	_, err := svc.Create(context.Background(), companyID, quote.CreateParams{
		Items: []quote.LineItemParams{
			{Category: quote.CategoryOther, Description: "Misc", RangeLow: int64Ptr(100)},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, identity.ErrTokenCollision))
}
