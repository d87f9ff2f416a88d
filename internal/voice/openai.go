package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIURL = "https://api.openai.com/v1"

const extractionPrompt = `You are an expert at extracting structured data from contractor voice notes about home remodeling projects.

Extract the following information from the transcript:
- client_name: The client's name (homeowner)
- project_address: The project address
- project_city: City (if mentioned)
- project_state: State (if mentioned)
- template_type: "kitchen", "bathroom", or "custom"
- project_size: "small", "medium", or "large" based on context
- line_items: Array of items mentioned with category, description, quality_tier

Categories for line_items: cabinets, countertops, flooring, backsplash, appliances, plumbing, electrical, demo, labor, permits, other

Quality tiers: "good" (budget/basic), "better" (mid-range), "best" (premium/high-end)

Return JSON only. For each field, include a confidence score (0.0-1.0).
If information is not mentioned, set value to null and confidence to 0.

Example output:
{
  "client_name": { "value": "John Smith", "confidence": 0.95 },
  "project_address": { "value": "123 Main Street", "confidence": 0.90 },
  "project_city": { "value": null, "confidence": 0 },
  "project_state": { "value": null, "confidence": 0 },
  "template_type": { "value": "kitchen", "confidence": 0.98 },
  "project_size": { "value": "medium", "confidence": 0.85 },
  "line_items": [
    {
      "category": "cabinets",
      "description": "White shaker cabinets",
      "quality_tier": "better",
      "confidence": 0.88
    }
  ]
}`

// ExtractionResult is the structured data plus the aggregate
// confidence over its populated fields.
type ExtractionResult struct {
	Data       *Extraction
	Confidence float64
}

// OpenAIClient pulls structured project data out of transcripts with
// gpt-4o in JSON mode.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewOpenAIClient(baseURL, apiKey string) *OpenAIClient {
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}

	return &OpenAIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract runs the extraction prompt over the transcript.
func (c *OpenAIClient) Extract(ctx context.Context, transcript string) (*ExtractionResult, error) {
	reqBody := chatRequest{
		Model: "gpt-4o",
		Messages: []chatMessage{
			{Role: "system", Content: extractionPrompt},
			{Role: "user", Content: transcript},
		},
		Temperature: 0.3,
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating extraction request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing extraction request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading extraction response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding extraction response: %w", err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("extraction response carried no content")
	}

	var data Extraction
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &data); err != nil {
		return nil, fmt.Errorf("parsing extracted data: %w", err)
	}

	return &ExtractionResult{
		Data:       &data,
		Confidence: data.AverageConfidence(),
	}, nil
}
