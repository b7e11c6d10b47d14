// golos-labs/golos-bot/tts/tts.go

// Package tts wraps the remote text-to-speech service. Synthesis is a
// best-effort stage: any failure yields an empty payload, which the
// pipeline treats as "deliver text instead", never as a run failure.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golos-labs/golos-bot/log"
)

// requestTimeout bounds one synthesis call.
const requestTimeout = 60 * time.Second

// maxInputRunes caps the text submitted for synthesis; the downstream
// service rejects long inputs. Longer replies are truncated with an
// ellipsis marker.
const maxInputRunes = 1000

// Client talks to an OpenAI-compatible /audio/speech endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	voice      string
}

// NewClient returns a synthesis client with a fixed voice identifier.
func NewClient(baseURL, apiKey, model, voice string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		voice:      voice,
	}
}

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

// Synthesize converts text to speech. An empty result means synthesis was
// unavailable and the caller should fall back to text delivery.
func (c *Client) Synthesize(ctx context.Context, text string) []byte {
	audio, err := c.synthesizeOnce(ctx, capText(text))
	if err != nil {
		log.Error("synthesizing speech", err)
		return nil
	}
	return audio
}

func (c *Client) synthesizeOnce(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(speechRequest{Model: c.model, Voice: c.voice, Input: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal speech request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/speech", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send speech request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech service returned %d: %s", resp.StatusCode, truncate(string(body), 400))
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("speech service returned an empty payload")
	}
	return body, nil
}

// capText truncates text to the synthesis input limit, counting runes so
// multi-byte characters are never split.
func capText(text string) string {
	runes := []rune(text)
	if len(runes) <= maxInputRunes {
		return text
	}
	return string(runes[:maxInputRunes]) + "…"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
