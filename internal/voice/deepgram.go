package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultDeepgramURL = "https://api.deepgram.com/v1/listen"

// TranscriptionResult is the transcript Deepgram produced for one
// audio file.
type TranscriptionResult struct {
	Transcript string
	Confidence float64
}

// DeepgramClient transcribes audio through Deepgram's prerecorded API
// with the nova-2 model.
type DeepgramClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewDeepgramClient(baseURL, apiKey string) *DeepgramClient {
	if baseURL == "" {
		baseURL = defaultDeepgramURL
	}

	return &DeepgramClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe sends the raw audio and returns the first alternative of
// the first channel.
func (c *DeepgramClient) Transcribe(ctx context.Context, audio []byte, contentType string) (*TranscriptionResult, error) {
	if contentType == "" {
		contentType = "audio/wav"
	}

	params := url.Values{}
	params.Set("model", "nova-2")
	params.Set("smart_format", "true")
	params.Set("punctuate", "true")
	params.Set("paragraphs", "true")
	params.Set("diarize", "false")
	params.Set("language", "en-US")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?"+params.Encode(), bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("creating transcription request: %w", err)
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing transcription request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcription failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed deepgramResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding transcription response: %w", err)
	}

	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return nil, fmt.Errorf("transcription response carried no alternatives")
	}

	alt := parsed.Results.Channels[0].Alternatives[0]

	return &TranscriptionResult{
		Transcript: alt.Transcript,
		Confidence: alt.Confidence,
	}, nil
}
