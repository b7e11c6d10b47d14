// golos-labs/golos-bot/commands/handler.go
package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/golos-labs/golos-bot/cache"
	"github.com/golos-labs/golos-bot/config"
	"github.com/golos-labs/golos-bot/health"
	"github.com/golos-labs/golos-bot/interfaces"
	logger "github.com/golos-labs/golos-bot/log"
	"github.com/golos-labs/golos-bot/system"
	"github.com/golos-labs/golos-bot/telegram"
)

const (
	startReply = "Привет! Я голосовой ассистент на базе Manus. Отправь мне текст или голосовое сообщение, и я отвечу."
	helpReply  = "Просто отправь мне сообщение. Я умею отвечать текстом и голосом."
)

// Handler manages all bot commands
type Handler struct {
	session *telegram.Session
	config  *config.Config
	db      *cache.DB
	stt     interfaces.SpeechToText
}

// NewHandler creates a new command handler
func NewHandler(session *telegram.Session, cfg *config.Config, db *cache.DB, stt interfaces.SpeechToText) *Handler {
	return &Handler{
		session: session,
		config:  cfg,
		db:      db,
		stt:     stt,
	}
}

// IsCommand reports whether a message text is addressed to the command
// handler rather than the pipeline.
func IsCommand(text string) bool {
	return strings.HasPrefix(text, "/")
}

// HandleCommand processes an incoming command message.
func (h *Handler) HandleCommand(ctx context.Context, chatID int64, senderID int64, text string) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return
	}
	// Telegram appends the bot name in group chats: /help@golos_bot.
	command := strings.TrimPrefix(parts[0], "/")
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	logger.Info(fmt.Sprintf("user %d executed /%s in chat %d", senderID, command, chatID))

	switch command {
	case "start":
		h.sendResponse(ctx, chatID, startReply)
	case "help":
		h.sendResponse(ctx, chatID, helpReply)
	case "status":
		h.handleStatus(ctx, chatID, senderID)
	default:
		h.sendResponse(ctx, chatID, helpReply)
	}
}

// handleStatus reports service health and run counters. Restricted to the
// admin chat; anyone else gets the help text.
func (h *Handler) handleStatus(ctx context.Context, chatID int64, senderID int64) {
	if h.config.Telegram.AdminChatID == 0 || chatID != h.config.Telegram.AdminChatID {
		h.sendResponse(ctx, chatID, helpReply)
		return
	}

	var b strings.Builder
	b.WriteString("*Status*\n\n")
	b.WriteString(fmt.Sprintf("Telegram: %s\n", health.GetTelegramStatus(h.session)))
	b.WriteString(fmt.Sprintf("LLM: %s\n", health.GetLLMStatus(h.config.OpenAI.BaseURL)))
	b.WriteString(fmt.Sprintf("STT: %s\n", health.GetSTTStatus(h.stt, h.config.STT.Backend)))
	b.WriteString(fmt.Sprintf("Cache: %s\n", health.GetCacheStatus(h.db, &h.config.Cache)))

	if cpuUsage, err := system.GetCPUUsage(); err == nil {
		b.WriteString(fmt.Sprintf("CPU: %.1f%%\n", cpuUsage))
	}
	if memUsage, err := system.GetMemoryUsage(); err == nil {
		b.WriteString(fmt.Sprintf("Memory: %.1f%%\n", memUsage))
	}

	if h.db != nil {
		if counts, err := h.db.RunCounts(); err == nil && len(counts) > 0 {
			b.WriteString("\n*Runs*\n")
			outcomes := make([]string, 0, len(counts))
			for outcome := range counts {
				outcomes = append(outcomes, outcome)
			}
			sort.Strings(outcomes)
			for _, outcome := range outcomes {
				b.WriteString(fmt.Sprintf("%s: %d\n", outcome, counts[outcome]))
			}
		}
	}

	h.sendResponse(ctx, chatID, b.String())
}

func (h *Handler) sendResponse(ctx context.Context, chatID int64, text string) {
	if err := h.session.SendText(ctx, chatID, text); err != nil {
		logger.Error(fmt.Sprintf("sending command response to chat %d", chatID), err)
	}
}
