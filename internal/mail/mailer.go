// Package mail sends client-facing notifications through AWS SESv2.
package mail

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Sender is the SESv2 surface the mailer uses; lets tests stand in a
// fake without AWS.
type Sender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type Mailer struct {
	sender    Sender
	fromEmail string
	logger    *slog.Logger
}

func New(cfg aws.Config, fromEmail string, logger *slog.Logger) *Mailer {
	return &Mailer{
		sender:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		logger:    logger,
	}
}

// NewWithSender wires a custom sender, used in tests.
func NewWithSender(sender Sender, fromEmail string, logger *slog.Logger) *Mailer {
	return &Mailer{sender: sender, fromEmail: fromEmail, logger: logger}
}

var bodyTemplate = template.Must(template.New("body").Parse(`<html>
<body style="font-family: sans-serif; color: #1a1a1a;">
  <p>Hi {{.Name}},</p>
  {{range .Lines}}<p>{{.}}</p>
  {{end}}{{if .LinkURL}}<p><a href="{{.LinkURL}}" style="color: #2563eb;">{{.LinkText}}</a></p>
  {{end}}<p>{{.CompanyName}}</p>
</body>
</html>`))

type message struct {
	Name        string
	Lines       []string
	LinkURL     string
	LinkText    string
	CompanyName string
}

// QuoteSentParams carries everything the quote notification renders.
type QuoteSentParams struct {
	To          string
	ClientName  string
	CompanyName string
	QuoteNumber string
	TotalRange  string
	PortalURL   string
}

// SendQuoteSent notifies the client that a quote is ready to review.
func (m *Mailer) SendQuoteSent(ctx context.Context, p QuoteSentParams) error {
	subject := fmt.Sprintf("%s sent you quote %s", p.CompanyName, p.QuoteNumber)

	return m.send(ctx, p.To, subject, message{
		Name: p.ClientName,
		Lines: []string{
			fmt.Sprintf("%s has prepared quote %s for your project.", p.CompanyName, p.QuoteNumber),
			fmt.Sprintf("Estimated range: %s.", p.TotalRange),
		},
		LinkURL:     p.PortalURL,
		LinkText:    "Review and sign your quote",
		CompanyName: p.CompanyName,
	})
}

// QuoteSignedParams carries the contractor-facing acceptance notice.
type QuoteSignedParams struct {
	To          string
	ClientName  string
	CompanyName string
	QuoteNumber string
	JobNumber   string
	SignerName  string
}

// SendQuoteSigned notifies the contractor that the client accepted.
func (m *Mailer) SendQuoteSigned(ctx context.Context, p QuoteSignedParams) error {
	subject := fmt.Sprintf("Quote %s was signed", p.QuoteNumber)

	lines := []string{
		fmt.Sprintf("%s signed quote %s.", p.SignerName, p.QuoteNumber),
	}
	if p.JobNumber != "" {
		lines = append(lines, fmt.Sprintf("Job %s was opened automatically.", p.JobNumber))
	}

	return m.send(ctx, p.To, subject, message{
		Name:        p.ClientName,
		Lines:       lines,
		CompanyName: p.CompanyName,
	})
}

// ChangeOrderSentParams carries the change order notification.
type ChangeOrderSentParams struct {
	To          string
	ClientName  string
	CompanyName string
	Number      string
	Title       string
	Amount      string
	PortalURL   string
}

// SendChangeOrderSent notifies the client of a pending change order.
func (m *Mailer) SendChangeOrderSent(ctx context.Context, p ChangeOrderSentParams) error {
	subject := fmt.Sprintf("%s sent you change order %s", p.CompanyName, p.Number)

	return m.send(ctx, p.To, subject, message{
		Name: p.ClientName,
		Lines: []string{
			fmt.Sprintf("%s: %s (%s).", p.Number, p.Title, p.Amount),
			"Please review and sign to authorize the work.",
		},
		LinkURL:     p.PortalURL,
		LinkText:    "Review and sign the change order",
		CompanyName: p.CompanyName,
	})
}

// ChangeOrderSignedParams carries the contractor-facing signed notice.
type ChangeOrderSignedParams struct {
	To          string
	ClientName  string
	CompanyName string
	Number      string
	Title       string
	Amount      string
	SignerName  string
}

// SendChangeOrderSigned notifies the contractor of a signed change order.
func (m *Mailer) SendChangeOrderSigned(ctx context.Context, p ChangeOrderSignedParams) error {
	subject := fmt.Sprintf("Change order %s was signed", p.Number)

	return m.send(ctx, p.To, subject, message{
		Name: p.ClientName,
		Lines: []string{
			fmt.Sprintf("%s signed %s: %s (%s).", p.SignerName, p.Number, p.Title, p.Amount),
		},
		CompanyName: p.CompanyName,
	})
}

func (m *Mailer) send(ctx context.Context, to, subject string, msg message) error {
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}

	var body strings.Builder
	if err := bodyTemplate.Execute(&body, msg); err != nil {
		return fmt.Errorf("rendering email body: %w", err)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.fromEmail),
		Destination:      &sestypes.Destination{ToAddresses: []string{to}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body:    &sestypes.Body{Html: &sestypes.Content{Data: aws.String(body.String())}},
			},
		},
	}

	if _, err := m.sender.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	m.logger.Info("email sent", "to", to, "subject", subject)

	return nil
}
