// golos-labs/golos-bot/telegram/fetch.go
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxAudioBytes caps downloaded voice clips. Telegram voice messages are
// small; anything larger is rejected rather than buffered.
const maxAudioBytes = 20 * 1024 * 1024

// FetchAudio resolves a platform file handle and downloads its content.
func (s *Session) FetchAudio(ctx context.Context, fileID string) ([]byte, error) {
	file, err := s.getFile(ctx, fileID)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/file/bot%s/%s", s.baseURL, s.token, strings.TrimLeft(file.FilePath, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("telegram download http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxAudioBytes {
		return nil, fmt.Errorf("telegram file too large (>%d bytes)", maxAudioBytes)
	}
	return data, nil
}

func (s *Session) getFile(ctx context.Context, fileID string) (*File, error) {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return nil, fmt.Errorf("missing file_id")
	}
	u := fmt.Sprintf("%s/bot%s/getFile?file_id=%s", s.baseURL, s.token, url.QueryEscape(fileID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
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
	var out getFileResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, fmt.Errorf("telegram getFile: ok=false")
	}
	if strings.TrimSpace(out.Result.FilePath) == "" {
		return nil, fmt.Errorf("telegram getFile: missing file_path")
	}
	return &out.Result, nil
}
