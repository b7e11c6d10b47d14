// golos-labs/golos-bot/llm/client.go

// Package llm wraps the remote text-generation service. The client never
// fails a pipeline run: any service error becomes the fixed apology reply.
package llm

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

// requestTimeout bounds one generation call.
const requestTimeout = 60 * time.Second

// Client talks to an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	httpClient   *http.Client
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// NewClient creates a generation client with the fixed assistant persona.
func NewClient(baseURL, apiKey, model string, maxTokens int, temperature float64) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		BaseURL:      strings.TrimRight(baseURL, "/"),
		APIKey:       apiKey,
		Model:        model,
		SystemPrompt: systemPrompt,
		MaxTokens:    maxTokens,
		Temperature:  temperature,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Generate returns the assistant reply for userText. On any service error
// the fixed apology is returned with ok=false, never an error.
func (c *Client) Generate(ctx context.Context, userText string) (string, bool) {
	reply, err := c.generateOnce(ctx, userText)
	if err != nil {
		log.Error("generating reply", err)
		return FallbackReply, false
	}
	return reply, true
}

func (c *Client) generateOnce(ctx context.Context, userText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	request := chatRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: c.SystemPrompt},
			{Role: "user", Content: userText},
		},
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Stream:      false,
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send chat request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat service returned non-200 status: %s, body: %s", resp.Status, truncate(string(body), 400))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat service returned no choices")
	}

	// The first choice is authoritative; extra candidates are ignored.
	reply := strings.TrimSpace(out.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("chat service returned an empty completion")
	}
	return reply, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
