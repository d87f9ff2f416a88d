// Package notify fans document lifecycle events out to email. Sends
// run on the background worker so request handlers never block on the
// mail provider, and a failed send only logs.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/mail"
	"github.com/rgoodwin/quoteforge/internal/money"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify

type Mailer interface {
	SendQuoteSent(ctx context.Context, p mail.QuoteSentParams) error
	SendQuoteSigned(ctx context.Context, p mail.QuoteSignedParams) error
	SendChangeOrderSent(ctx context.Context, p mail.ChangeOrderSentParams) error
	SendChangeOrderSigned(ctx context.Context, p mail.ChangeOrderSignedParams) error
}

type Queue interface {
	Submit(task func(ctx context.Context)) error
}

type Companies interface {
	Get(ctx context.Context, id uuid.UUID) (*company.Company, error)
}

type Clients interface {
	Get(ctx context.Context, companyID, id uuid.UUID) (*client.Client, error)
}

type Notifier struct {
	mailer    Mailer
	queue     Queue
	companies Companies
	clients   Clients
	portalURL string
	logger    *slog.Logger
}

func New(mailer Mailer, queue Queue, companies Companies, clients Clients, portalURL string, logger *slog.Logger) *Notifier {
	return &Notifier{
		mailer:    mailer,
		queue:     queue,
		companies: companies,
		clients:   clients,
		portalURL: portalURL,
		logger:    logger,
	}
}

// QuoteSent emails the client their portal link for a freshly sent
// quote. Quotes without a client are skipped.
func (n *Notifier) QuoteSent(ctx context.Context, q *quote.Quote) {
	co, cl, ok := n.resolve(ctx, q.CompanyID, q.ClientID, "quote_sent")
	if !ok {
		return
	}

	params := mail.QuoteSentParams{
		To:          cl.Email,
		ClientName:  cl.Name,
		CompanyName: co.Name,
		QuoteNumber: q.QuoteNumber,
		TotalRange:  money.FormatRange(q.TotalRangeLow, q.TotalRangeHigh),
		PortalURL:   fmt.Sprintf("%s/quotes/%s", n.portalURL, q.ClientViewToken),
	}

	n.enqueue("quote_sent", func(ctx context.Context) error {
		return n.mailer.SendQuoteSent(ctx, params)
	})
}

// QuoteSigned emails the contractor that the client accepted.
func (n *Notifier) QuoteSigned(ctx context.Context, q *quote.Quote, jobNumber string) {
	co, cl, ok := n.resolve(ctx, q.CompanyID, q.ClientID, "quote_signed")
	if !ok {
		return
	}

	signer := ""
	if q.Signature != nil {
		signer = q.Signature.SignerName
	}

	params := mail.QuoteSignedParams{
		To:          co.Email,
		ClientName:  cl.Name,
		CompanyName: co.Name,
		QuoteNumber: q.QuoteNumber,
		JobNumber:   jobNumber,
		SignerName:  signer,
	}

	n.enqueue("quote_signed", func(ctx context.Context) error {
		return n.mailer.SendQuoteSigned(ctx, params)
	})
}

// ChangeOrderSent emails the client their portal link for the change
// order. The parent quote supplies company and client.
func (n *Notifier) ChangeOrderSent(ctx context.Context, co *changeorder.ChangeOrder, companyID uuid.UUID, clientID *uuid.UUID) {
	comp, cl, ok := n.resolve(ctx, companyID, clientID, "change_order_sent")
	if !ok {
		return
	}

	params := mail.ChangeOrderSentParams{
		To:          cl.Email,
		ClientName:  cl.Name,
		CompanyName: comp.Name,
		Number:      co.Number(),
		Title:       co.Title,
		Amount:      co.FormattedAmount(),
		PortalURL:   fmt.Sprintf("%s/change-orders/%s", n.portalURL, co.ClientViewToken),
	}

	n.enqueue("change_order_sent", func(ctx context.Context) error {
		return n.mailer.SendChangeOrderSent(ctx, params)
	})
}

// ChangeOrderSigned emails the contractor that the change order was
// authorized.
func (n *Notifier) ChangeOrderSigned(ctx context.Context, co *changeorder.ChangeOrder, companyID uuid.UUID, clientID *uuid.UUID) {
	comp, cl, ok := n.resolve(ctx, companyID, clientID, "change_order_signed")
	if !ok {
		return
	}

	signer := ""
	if co.Signature != nil {
		signer = co.Signature.SignerName
	}

	params := mail.ChangeOrderSignedParams{
		To:          comp.Email,
		ClientName:  cl.Name,
		CompanyName: comp.Name,
		Number:      co.Number(),
		Title:       co.Title,
		Amount:      co.FormattedAmount(),
		SignerName:  signer,
	}

	n.enqueue("change_order_signed", func(ctx context.Context) error {
		return n.mailer.SendChangeOrderSigned(ctx, params)
	})
}

func (n *Notifier) resolve(ctx context.Context, companyID uuid.UUID, clientID *uuid.UUID, event string) (*company.Company, *client.Client, bool) {
	if clientID == nil {
		return nil, nil, false
	}

	co, err := n.companies.Get(ctx, companyID)
	if err != nil {
		n.logger.Error("resolving company for notification", "event", event, "error", err)
		return nil, nil, false
	}

	cl, err := n.clients.Get(ctx, companyID, *clientID)
	if err != nil {
		n.logger.Error("resolving client for notification", "event", event, "error", err)
		return nil, nil, false
	}

	if cl.Email == "" {
		return nil, nil, false
	}

	return co, cl, true
}

func (n *Notifier) enqueue(event string, send func(ctx context.Context) error) {
	err := n.queue.Submit(func(ctx context.Context) {
		if err := send(ctx); err != nil {
			n.logger.Error("sending notification", "event", event, "error", err)
		}
	})
	if err != nil {
		n.logger.Error("queueing notification", "event", event, "error", err)
	}
}
