package pdf_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/company"
	"github.com/rgoodwin/quoteforge/internal/pdf"
	"github.com/rgoodwin/quoteforge/internal/quote"
	"github.com/rgoodwin/quoteforge/internal/template"
)

// captureConverter records the HTML it was handed and returns a fixed
// payload so tests can inspect the rendered document.
type captureConverter struct {
	html []byte
}

func (c *captureConverter) Convert(_ context.Context, html []byte) ([]byte, error) {
	c.html = html
	return []byte("%PDF-1.4 fake"), nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestRenderer_RenderQuote(t *testing.T) {
	tier := template.TierBetter

	q := &quote.Quote{
		ID:               uuid.New(),
		QuoteNumber:      "Q2608-0007",
		ProjectAddress:   "12 Oak Ln",
		ProjectCity:      "Portland",
		ProjectState:     "OR",
		TimelineEstimate: "3-4 weeks",
		TotalRangeLow:    18000,
		TotalRangeHigh:   24000,
		Notes:            "Permits handled by owner.",
		Terms:            "Valid 30 days.",
		PaymentTerms:     "30% deposit",
		LineItems: []*quote.LineItem{
			{
				Description: "Demo existing bathroom",
				Category:    quote.CategoryDemo,
				RangeLow:    int64Ptr(2000),
				RangeHigh:   int64Ptr(3000),
			},
			{
				Description: "Tile allowance",
				Category:    quote.CategoryFlooring,
				QualityTier: &tier,
				IsAllowance: true,
				RangeLow:    int64Ptr(1500),
				RangeHigh:   int64Ptr(2500),
				FinalPrice:  int64Ptr(2200),
			},
		},
	}
	q.Signature = &quote.Signature{SignerName: "Dana Ruiz", SignedAt: "2026-08-14T10:00:00Z"}

	co := &company.Company{Name: "Harborview Remodeling", Address: "400 Pier St", City: "Portland", State: "OR", Phone: "555-0142", Email: "office@harborview.test"}
	cl := &client.Client{Name: "Dana Ruiz"}

	conv := &captureConverter{}
	out, err := pdf.NewRenderer(conv).RenderQuote(context.Background(), q, co, cl)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), out)

	html := string(conv.html)
	assert.Contains(t, html, "Harborview Remodeling")
	assert.Contains(t, html, "Quote Q2608-0007")
	assert.Contains(t, html, "Prepared for Dana Ruiz")
	assert.Contains(t, html, "12 Oak Ln, Portland, OR")
	assert.Contains(t, html, "Demo existing bathroom")
	assert.Contains(t, html, "$2,000 – $3,000")
	assert.Contains(t, html, "(allowance)")
	assert.Contains(t, html, "$2,200")
	assert.Contains(t, html, "$18,000 – $24,000")
	assert.Contains(t, html, "Accepted by Dana Ruiz")
}

func TestRenderer_RenderQuote_UnsignedOmitsSignature(t *testing.T) {
	q := &quote.Quote{QuoteNumber: "Q2608-0008"}
	co := &company.Company{Name: "Harborview Remodeling"}

	conv := &captureConverter{}
	_, err := pdf.NewRenderer(conv).RenderQuote(context.Background(), q, co, nil)
	require.NoError(t, err)

	assert.NotContains(t, string(conv.html), "Accepted by")
}

func TestRenderer_RenderChangeOrder(t *testing.T) {
	co := &changeorder.ChangeOrder{
		CONumber:    2,
		Title:       "Upgrade to frameless glass door",
		Description: "Replace framed shower door with frameless.",
		Amount:      int64Ptr(1800),
		Boilerplate: company.DefaultLegalBoilerplate,
	}
	co.Signature = &changeorder.Signature{SignerName: "Dana Ruiz", SignedAt: "2026-08-20T09:30:00Z"}

	conv := &captureConverter{}
	out, err := pdf.NewRenderer(conv).RenderChangeOrder(context.Background(), co, &company.Company{Name: "Harborview Remodeling"}, "J2608-0003")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), out)

	html := string(conv.html)
	assert.Contains(t, html, "Change Order CO-2")
	assert.Contains(t, html, "Job J2608-0003")
	assert.Contains(t, html, "Upgrade to frameless glass door")
	assert.Contains(t, html, "+$1,800")
	assert.Contains(t, html, "Authorized by Dana Ruiz")
}
