// golos-labs/golos-bot/stt/openai.go

// Package stt wraps remote speech-to-text services. Both backends share
// the sentinel contract: any transport or service failure is logged and
// reported as an empty transcript, never as an error the pipeline has to
// interpret. One attempt per clip; retries are the user's resend.
package stt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/golos-labs/golos-bot/log"
)

// requestTimeout bounds one transcription call.
const requestTimeout = 60 * time.Second

// OpenAI transcribes complete clips through an OpenAI-compatible
// /audio/transcriptions endpoint (Whisper-style).
type OpenAI struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	model    string
	language string
}

// NewOpenAI returns a transcription client for the given endpoint.
func NewOpenAI(baseURL, apiKey, model, language string) *OpenAI {
	return &OpenAI{
		http:     &http.Client{Timeout: requestTimeout},
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		model:    model,
		language: language,
	}
}

// Transcribe sends one MP3 clip for recognition and returns the text.
// Empty string means "transcription unavailable".
func (c *OpenAI) Transcribe(ctx context.Context, audio []byte) string {
	text, err := c.transcribeOnce(ctx, audio)
	if err != nil {
		log.Error("transcribing voice clip", err)
		return ""
	}
	return text
}

func (c *OpenAI) transcribeOnce(ctx context.Context, audio []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "voice_message.mp3")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	_ = w.WriteField("model", c.model)
	if c.language != "" {
		_ = w.WriteField("language", c.language)
	}
	// Plain text avoids a JSON round-trip for a single string result.
	_ = w.WriteField("response_format", "text")
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stt service returned %d: %s", resp.StatusCode, truncate(string(raw), 400))
	}
	return strings.TrimSpace(string(raw)), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
