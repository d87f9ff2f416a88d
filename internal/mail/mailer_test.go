package mail_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/quoteforge/internal/mail"
)

type fakeSender struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSender) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)

	if f.err != nil {
		return nil, f.err
	}

	return &sesv2.SendEmailOutput{}, nil
}

func TestMailer_SendQuoteSent(t *testing.T) {
	sender := &fakeSender{}
	m := mail.NewWithSender(sender, "quotes@acme.example", slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := m.SendQuoteSent(context.Background(), mail.QuoteSentParams{
		To:          "pat@example.com",
		ClientName:  "Pat",
		CompanyName: "Acme Remodeling",
		QuoteNumber: "K26080003",
		TotalRange:  "$25,000 – $35,000",
		PortalURL:   "https://app.example.com/portal/quotes/tok",
	})
	require.NoError(t, err)
	require.Len(t, sender.inputs, 1)

	in := sender.inputs[0]
	assert.Equal(t, "quotes@acme.example", *in.FromEmailAddress)
	assert.Equal(t, []string{"pat@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "Acme Remodeling sent you quote K26080003", *in.Content.Simple.Subject.Data)

	body := *in.Content.Simple.Body.Html.Data
	assert.Contains(t, body, "K26080003")
	assert.Contains(t, body, "https://app.example.com/portal/quotes/tok")
}

func TestMailer_SendChangeOrderSigned(t *testing.T) {
	sender := &fakeSender{}
	m := mail.NewWithSender(sender, "quotes@acme.example", slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := m.SendChangeOrderSigned(context.Background(), mail.ChangeOrderSignedParams{
		To:          "owner@acme.example",
		ClientName:  "Riley",
		CompanyName: "Acme Remodeling",
		Number:      "CO-2",
		Title:       "Upgrade to quartz",
		Amount:      "+$2,500",
		SignerName:  "Pat Doe",
	})
	require.NoError(t, err)
	require.Len(t, sender.inputs, 1)
	assert.Equal(t, "Change order CO-2 was signed", *sender.inputs[0].Content.Simple.Subject.Data)
}

func TestMailer_EmptyRecipient(t *testing.T) {
	m := mail.NewWithSender(&fakeSender{}, "quotes@acme.example", slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := m.SendQuoteSent(context.Background(), mail.QuoteSentParams{})
	require.Error(t, err)
}
