// golos-labs/golos-bot/telegram/session.go

// Package telegram implements the Telegram Bot API client the bot relays
// messages through: long-polling reception, text/voice delivery, presence
// signals and media download.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Session is a Telegram Bot API client. It holds no per-message state and
// is safe for concurrent use.
type Session struct {
	http    *http.Client
	baseURL string
	token   string
}

// NewSession creates a Telegram client for the given bot token.
// An empty baseURL selects the public Bot API endpoint.
func NewSession(token, baseURL string) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}
	return &Session{
		http:    &http.Client{Timeout: 60 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}, nil
}

// GetMe verifies the token and returns the bot's own user record.
func (s *Session) GetMe(ctx context.Context) (*User, error) {
	url := fmt.Sprintf("%s/bot%s/getMe", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("telegram http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var out getMeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, fmt.Errorf("telegram getMe: ok=false")
	}
	return &out.Result, nil
}

// GetUpdates long-polls for new updates and returns them together with the
// next offset to acknowledge what was received.
func (s *Session) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, int64, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	url := fmt.Sprintf("%s/bot%s/getUpdates?timeout=%d", s.baseURL, s.token, secs)
	if offset > 0 {
		url += fmt.Sprintf("&offset=%d", offset)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout+5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, offset, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, offset, err
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, offset, fmt.Errorf("telegram http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out getUpdatesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, offset, err
	}
	if !out.OK {
		return nil, offset, fmt.Errorf("telegram getUpdates: ok=false")
	}

	next := offset
	for _, u := range out.Result {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}
	}
	return out.Result, next, nil
}
