// golos-labs/golos-bot/health/health.go
package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golos-labs/golos-bot/cache"
	"github.com/golos-labs/golos-bot/config"
	"github.com/golos-labs/golos-bot/interfaces"
	"github.com/golos-labs/golos-bot/system"
	"github.com/golos-labs/golos-bot/telegram"
)

// GetTelegramStatus checks and returns the status of the Telegram connection as a formatted string.
func GetTelegramStatus(s *telegram.Session) string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	me, err := s.GetMe(ctx)
	if err != nil {
		return fmt.Sprintf("**ERROR**: `%v`", err)
	}
	return fmt.Sprintf("**OK** (@%s)", me.Username)
}

// GetLLMStatus checks and returns the status of the chat completion endpoint as a formatted string.
func GetLLMStatus(baseURL string) string {
	url := strings.TrimRight(baseURL, "/") + "/models"
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Sprintf("**ERROR**: `%v`", err)
	}
	defer func() { _ = resp.Body.Close() }()
	// The models endpoint answers 401 without credentials; reachability is
	// what this check cares about.
	if resp.StatusCode >= 500 {
		return fmt.Sprintf("**ERROR**: `Status: %s`", resp.Status)
	}
	return "**OK**"
}

// GetCacheStatus checks and returns the status of the cache connection as a formatted string.
func GetCacheStatus(db *cache.DB, cfg *config.CacheConfig) string {
	if cfg == nil || cfg.Addr == "" {
		return "`Not Configured`"
	}
	if db == nil {
		return "**ERROR**: `Initialization failed`"
	}
	if err := db.Ping(); err != nil {
		return fmt.Sprintf("**ERROR**: `%v`", err)
	}
	return "**OK**"
}

// GetSTTStatus checks and returns the status of the STT client as a formatted string.
func GetSTTStatus(sttClient interfaces.SpeechToText, backend string) string {
	if sttClient == nil {
		return "**ERROR**: `Initialization failed`"
	}
	// Neither backend has a ping; it is OK once it initialized.
	return fmt.Sprintf("**OK** (%s)", backend)
}

// BootReport assembles the startup status message sent to the admin chat.
func BootReport(s *telegram.Session, db *cache.DB, cfg *config.Config, stt interfaces.SpeechToText) string {
	var b strings.Builder
	b.WriteString("*golos-bot online*\n\n")
	b.WriteString(fmt.Sprintf("Telegram: %s\n", GetTelegramStatus(s)))
	b.WriteString(fmt.Sprintf("LLM: %s\n", GetLLMStatus(cfg.OpenAI.BaseURL)))
	b.WriteString(fmt.Sprintf("STT: %s\n", GetSTTStatus(stt, cfg.STT.Backend)))
	b.WriteString(fmt.Sprintf("Cache: %s\n", GetCacheStatus(db, &cfg.Cache)))

	if cpuUsage, err := system.GetCPUUsage(); err == nil {
		b.WriteString(fmt.Sprintf("CPU: %.1f%%\n", cpuUsage))
	}
	if memUsage, err := system.GetMemoryUsage(); err == nil {
		b.WriteString(fmt.Sprintf("Memory: %.1f%%\n", memUsage))
	}
	return b.String()
}
