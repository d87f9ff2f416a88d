package notify_test

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

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/mail"
	"github.com/rgoodwin/quoteforge/internal/notify"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

type mocks struct {
	mailer    *notify.MockMailer
	queue     *notify.MockQueue
	companies *notify.MockCompanies
	clients   *notify.MockClients
}

func newNotifier(t *testing.T) (*notify.Notifier, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		mailer:    notify.NewMockMailer(ctrl),
		queue:     notify.NewMockQueue(ctrl),
		companies: notify.NewMockCompanies(ctrl),
		clients:   notify.NewMockClients(ctrl),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	n := notify.New(m.mailer, m.queue, m.companies, m.clients, "https://portal.example.com", logger)

	return n, m
}

// runSubmitted makes the queue mock execute the submitted task inline
// so the test can assert on the resulting mail call.
func runSubmitted(m mocks) {
	m.queue.EXPECT().Submit(gomock.Any()).DoAndReturn(func(task func(ctx context.Context)) error {
		task(context.Background())
		return nil
	})
}

func TestNotifier_QuoteSent(t *testing.T) {
	n, m := newNotifier(t)

	companyID := uuid.New()
	clientID := uuid.New()

	q := &quote.Quote{
		CompanyID:       companyID,
		ClientID:        &clientID,
		QuoteNumber:     "Q2608-0004",
		TotalRangeLow:   18000,
		TotalRangeHigh:  24000,
		ClientViewToken: "tok-abc",
	}

	m.companies.EXPECT().Get(gomock.Any(), companyID).Return(&company.Company{Name: "Harborview Remodeling"}, nil)
	m.clients.EXPECT().Get(gomock.Any(), companyID, clientID).Return(&client.Client{Name: "Dana Ruiz", Email: "dana@example.com"}, nil)
	runSubmitted(m)

	var sent mail.QuoteSentParams
	m.mailer.EXPECT().SendQuoteSent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p mail.QuoteSentParams) error {
		sent = p
		return nil
	})

	n.QuoteSent(context.Background(), q)

	assert.Equal(t, "dana@example.com", sent.To)
	assert.Equal(t, "Q2608-0004", sent.QuoteNumber)
	assert.Equal(t, "$18,000 – $24,000", sent.TotalRange)
	assert.Equal(t, "https://portal.example.com/quotes/tok-abc", sent.PortalURL)
}

func TestNotifier_QuoteSent_NoClientSkips(t *testing.T) {
	n, _ := newNotifier(t)

	// No expectations: a quote without a client never reaches the
	// queue or the mailer.
	n.QuoteSent(context.Background(), &quote.Quote{QuoteNumber: "Q2608-0005"})
}

func TestNotifier_QuoteSent_ClientWithoutEmailSkips(t *testing.T) {
	n, m := newNotifier(t)

	companyID := uuid.New()
	clientID := uuid.New()

	m.companies.EXPECT().Get(gomock.Any(), companyID).Return(&company.Company{Name: "Harborview"}, nil)
	m.clients.EXPECT().Get(gomock.Any(), companyID, clientID).Return(&client.Client{Name: "Dana"}, nil)

	n.QuoteSent(context.Background(), &quote.Quote{CompanyID: companyID, ClientID: &clientID})
}

func TestNotifier_QuoteSigned_GoesToContractor(t *testing.T) {
	n, m := newNotifier(t)

	companyID := uuid.New()
	clientID := uuid.New()

	q := &quote.Quote{
		CompanyID:   companyID,
		ClientID:    &clientID,
		QuoteNumber: "Q2608-0004",
		Signature:   &quote.Signature{SignerName: "Dana Ruiz"},
	}

	m.companies.EXPECT().Get(gomock.Any(), companyID).Return(&company.Company{Name: "Harborview", Email: "office@harborview.test"}, nil)
	m.clients.EXPECT().Get(gomock.Any(), companyID, clientID).Return(&client.Client{Name: "Dana Ruiz", Email: "dana@example.com"}, nil)
	runSubmitted(m)

	var sent mail.QuoteSignedParams
	m.mailer.EXPECT().SendQuoteSigned(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p mail.QuoteSignedParams) error {
		sent = p
		return nil
	})

	n.QuoteSigned(context.Background(), q, "J2608-0002")

	assert.Equal(t, "office@harborview.test", sent.To)
	assert.Equal(t, "J2608-0002", sent.JobNumber)
	assert.Equal(t, "Dana Ruiz", sent.SignerName)
}

func TestNotifier_ChangeOrderSent(t *testing.T) {
	n, m := newNotifier(t)

	companyID := uuid.New()
	clientID := uuid.New()
	amount := int64(1800)

	co := &changeorder.ChangeOrder{
		CONumber:        3,
		Title:           "Frameless glass door",
		Amount:          &amount,
		ClientViewToken: "co-tok",
	}

	m.companies.EXPECT().Get(gomock.Any(), companyID).Return(&company.Company{Name: "Harborview"}, nil)
	m.clients.EXPECT().Get(gomock.Any(), companyID, clientID).Return(&client.Client{Name: "Dana", Email: "dana@example.com"}, nil)
	runSubmitted(m)

	var sent mail.ChangeOrderSentParams
	m.mailer.EXPECT().SendChangeOrderSent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p mail.ChangeOrderSentParams) error {
		sent = p
		return nil
	})

	n.ChangeOrderSent(context.Background(), co, companyID, &clientID)

	assert.Equal(t, "CO-3", sent.Number)
	assert.Equal(t, "+$1,800", sent.Amount)
	assert.Equal(t, "https://portal.example.com/change-orders/co-tok", sent.PortalURL)
}

func TestNotifier_QueueFullOnlyLogs(t *testing.T) {
	n, m := newNotifier(t)

	companyID := uuid.New()
	clientID := uuid.New()

	m.companies.EXPECT().Get(gomock.Any(), companyID).Return(&company.Company{Name: "Harborview"}, nil)
	m.clients.EXPECT().Get(gomock.Any(), companyID, clientID).Return(&client.Client{Name: "Dana", Email: "dana@example.com"}, nil)
	m.queue.EXPECT().Submit(gomock.Any()).Return(errors.New("queue full"))

	require.NotPanics(t, func() {
		n.QuoteSent(context.Background(), &quote.Quote{CompanyID: companyID, ClientID: &clientID})
	})
}
