// golos-labs/golos-bot/telegram/send.go
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// SendText delivers a text message. Markdown formatting is attempted first;
// Telegram rejects malformed markup, so delivery falls back to plain text.
func (s *Session) SendText(ctx context.Context, chatID int64, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("empty message text")
	}
	if err := s.sendMessageWithParseMode(ctx, chatID, text, "Markdown"); err == nil {
		return nil
	}
	return s.sendMessageWithParseMode(ctx, chatID, text, "")
}

func (s *Session) sendMessageWithParseMode(ctx context.Context, chatID int64, text, parseMode string) error {
	reqBody := sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             parseMode,
		DisableWebPagePreview: true,
	}
	b, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var ok okResponse
	_ = json.Unmarshal(raw, &ok)
	if !ok.OK {
		return fmt.Errorf("telegram sendMessage: ok=false: %s", ok.Description)
	}
	return nil
}

// SendVoice delivers a voice message from an in-memory OGG/Opus payload.
func (s *Session) SendVoice(ctx context.Context, chatID int64, voice []byte, caption string) error {
	if len(voice) == 0 {
		return fmt.Errorf("empty voice payload")
	}
	if err := s.sendVoiceWithParseMode(ctx, chatID, voice, caption, "Markdown"); err == nil {
		return nil
	}
	return s.sendVoiceWithParseMode(ctx, chatID, voice, caption, "")
}

func (s *Session) sendVoiceWithParseMode(ctx context.Context, chatID int64, voice []byte, caption, parseMode string) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	_ = mw.WriteField("chat_id", strconv.FormatInt(chatID, 10))
	if caption = strings.TrimSpace(caption); caption != "" {
		_ = mw.WriteField("caption", caption)
		if parseMode != "" {
			_ = mw.WriteField("parse_mode", parseMode)
		}
	}
	part, err := mw.CreateFormFile("voice", "voice.ogg")
	if err != nil {
		return err
	}
	if _, err := part.Write(voice); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendVoice", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var ok okResponse
	_ = json.Unmarshal(raw, &ok)
	if !ok.OK {
		return fmt.Errorf("telegram sendVoice: ok=false: %s", ok.Description)
	}
	return nil
}

// SendPresence emits a chat action ("typing", "record_voice"). Presence is
// a UX affordance; callers ignore the error beyond logging.
func (s *Session) SendPresence(ctx context.Context, chatID int64, action string) error {
	reqBody := sendChatActionRequest{ChatID: chatID, Action: action}
	b, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("%s/bot%s/sendChatAction", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}
