package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Converter turns rendered HTML into a PDF. Satisfied by
// GotenbergClient.
type Converter interface {
	Convert(ctx context.Context, html []byte) ([]byte, error)
}

// GotenbergClient converts documents through a Gotenberg instance's
// Chromium route.
type GotenbergClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGotenbergClient(baseURL string) *GotenbergClient {
	return &GotenbergClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *GotenbergClient) Convert(ctx context.Context, html []byte) ([]byte, error) {
	var buf bytes.Buffer

	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, fmt.Errorf("building convert form: %w", err)
	}

	if _, err := part.Write(html); err != nil {
		return nil, fmt.Errorf("writing convert form: %w", err)
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("closing convert form: %w", err)
	}

	url := c.baseURL + "/forms/chromium/convert/html"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("creating convert request: %w", err)
	}

	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing convert request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading convert response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("conversion failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
