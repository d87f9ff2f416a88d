// Package pdf renders quotes and change orders into client-facing PDF
// documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/money"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

type lineItemRow struct {
	Description string
	Category    string
	Tier        string
	IsAllowance bool
	PriceRange  string
}

type quoteDocument struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string

	QuoteNumber    string
	ClientName     string
	ProjectAddress string
	Timeline       string

	Items      []lineItemRow
	TotalRange string

	Notes        string
	Terms        string
	PaymentTerms string

	SignerName string
	SignedAt   string
}

type changeOrderDocument struct {
	CompanyName string
	Number      string
	JobNumber   string
	Title       string
	Description string
	Amount      string
	Boilerplate string

	SignerName string
	SignedAt   string
}

type Renderer struct {
	converter Converter
}

func NewRenderer(converter Converter) *Renderer {
	return &Renderer{converter: converter}
}

// RenderQuote renders the quote with its line items and totals.
func (r *Renderer) RenderQuote(ctx context.Context, q *quote.Quote, co *company.Company, cl *client.Client) ([]byte, error) {
	doc := quoteDocument{
		CompanyName:    co.Name,
		CompanyAddress: co.FullAddress(),
		CompanyPhone:   co.Phone,
		CompanyEmail:   co.Email,
		QuoteNumber:    q.QuoteNumber,
		ProjectAddress: q.ProjectFullAddress(),
		Timeline:       q.TimelineEstimate,
		TotalRange:     money.FormatRange(q.TotalRangeLow, q.TotalRangeHigh),
		Notes:          q.Notes,
		Terms:          q.Terms,
		PaymentTerms:   q.PaymentTerms,
	}

	if cl != nil {
		doc.ClientName = cl.Name
	}

	if q.Signature != nil {
		doc.SignerName = q.Signature.SignerName
		doc.SignedAt = q.Signature.SignedAt
	}

	for _, li := range q.LineItems {
		row := lineItemRow{
			Description: li.Description,
			Category:    string(li.Category),
			IsAllowance: li.IsAllowance,
		}

		if li.QualityTier != nil {
			row.Tier = string(*li.QualityTier)
		}

		switch {
		case li.FinalPrice != nil:
			row.PriceRange = money.FormatUSD(*li.FinalPrice)
		case li.RangeLow != nil && li.RangeHigh != nil && *li.RangeLow != *li.RangeHigh:
			row.PriceRange = money.FormatRange(*li.RangeLow, *li.RangeHigh)
		case li.RangeLow != nil:
			row.PriceRange = money.FormatUSD(*li.RangeLow)
		}

		doc.Items = append(doc.Items, row)
	}

	var html bytes.Buffer
	if err := quoteTemplate.Execute(&html, doc); err != nil {
		return nil, fmt.Errorf("rendering quote html: %w", err)
	}

	return r.converter.Convert(ctx, html.Bytes())
}

// RenderChangeOrder renders a change order amendment document.
func (r *Renderer) RenderChangeOrder(ctx context.Context, co *changeorder.ChangeOrder, comp *company.Company, jobNumber string) ([]byte, error) {
	doc := changeOrderDocument{
		CompanyName: comp.Name,
		Number:      co.Number(),
		JobNumber:   jobNumber,
		Title:       co.Title,
		Description: co.Description,
		Amount:      co.FormattedAmount(),
		Boilerplate: co.Boilerplate,
	}

	if co.Signature != nil {
		doc.SignerName = co.Signature.SignerName
		doc.SignedAt = co.Signature.SignedAt
	}

	var html bytes.Buffer
	if err := changeOrderTemplate.Execute(&html, doc); err != nil {
		return nil, fmt.Errorf("rendering change order html: %w", err)
	}

	return r.converter.Convert(ctx, html.Bytes())
}

var quoteTemplate = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; color: #1a1a1a; margin: 40px; }
h1 { font-size: 20px; }
table { width: 100%; border-collapse: collapse; margin: 16px 0; }
th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #e5e5e5; font-size: 12px; }
.total { font-size: 16px; font-weight: bold; text-align: right; }
.muted { color: #666; font-size: 11px; }
.signature { margin-top: 32px; border-top: 1px solid #1a1a1a; padding-top: 8px; width: 280px; }
</style>
</head>
<body>
<h1>{{.CompanyName}}</h1>
<p class="muted">{{.CompanyAddress}}{{if .CompanyPhone}} &middot; {{.CompanyPhone}}{{end}}{{if .CompanyEmail}} &middot; {{.CompanyEmail}}{{end}}</p>

<h2>Quote {{.QuoteNumber}}</h2>
{{if .ClientName}}<p>Prepared for {{.ClientName}}</p>{{end}}
{{if .ProjectAddress}}<p class="muted">Project: {{.ProjectAddress}}</p>{{end}}
{{if .Timeline}}<p class="muted">Estimated timeline: {{.Timeline}}</p>{{end}}

<table>
<tr><th>Item</th><th>Category</th><th>Tier</th><th>Price</th></tr>
{{range .Items}}<tr>
<td>{{.Description}}{{if .IsAllowance}} <span class="muted">(allowance)</span>{{end}}</td>
<td>{{.Category}}</td><td>{{.Tier}}</td><td>{{.PriceRange}}</td>
</tr>
{{end}}</table>

<p class="total">Estimated total: {{.TotalRange}}</p>

{{if .Notes}}<h3>Notes</h3><p>{{.Notes}}</p>{{end}}
{{if .Terms}}<h3>Terms</h3><p class="muted">{{.Terms}}</p>{{end}}
{{if .PaymentTerms}}<h3>Payment</h3><p class="muted">{{.PaymentTerms}}</p>{{end}}

{{if .SignerName}}<div class="signature">
<p>Accepted by {{.SignerName}}</p>
<p class="muted">{{.SignedAt}}</p>
</div>{{end}}
</body>
</html>`))

var changeOrderTemplate = template.Must(template.New("changeorder").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; color: #1a1a1a; margin: 40px; }
h1 { font-size: 20px; }
.amount { font-size: 18px; font-weight: bold; }
.muted { color: #666; font-size: 11px; }
.signature { margin-top: 32px; border-top: 1px solid #1a1a1a; padding-top: 8px; width: 280px; }
</style>
</head>
<body>
<h1>{{.CompanyName}}</h1>
<h2>Change Order {{.Number}}{{if .JobNumber}} &middot; Job {{.JobNumber}}{{end}}</h2>

<h3>{{.Title}}</h3>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<p class="amount">{{.Amount}}</p>

<p class="muted">{{.Boilerplate}}</p>

{{if .SignerName}}<div class="signature">
<p>Authorized by {{.SignerName}}</p>
<p class="muted">{{.SignedAt}}</p>
</div>{{end}}
</body>
</html>`))
