// golos-labs/golos-bot/events/events.go

// Package events routes incoming Telegram updates: commands go to the
// command handler synchronously, chat messages become pipeline jobs on
// the worker pool.
package events

import (
	"context"
	"fmt"

	"github.com/golos-labs/golos-bot/commands"
	logger "github.com/golos-labs/golos-bot/log"
	"github.com/golos-labs/golos-bot/pipeline"
	"github.com/golos-labs/golos-bot/telegram"
	"github.com/golos-labs/golos-bot/worker"
)

var (
	ctx     context.Context
	pool    *worker.Pool
	handler *commands.Handler
)

// Init initializes the events module with the worker pool and command handler.
func Init(runCtx context.Context, workerPool *worker.Pool, commandHandler *commands.Handler) {
	ctx = runCtx
	pool = workerPool
	handler = commandHandler
}

// HandleUpdate routes one Telegram update.
func HandleUpdate(u telegram.Update) {
	m := u.Message
	if m == nil || m.Chat == nil {
		return
	}
	if m.From != nil && m.From.IsBot {
		return
	}

	var senderID int64
	if m.From != nil {
		senderID = m.From.ID
	}

	switch {
	case m.Voice != nil:
		submit(pipeline.InboundMessage{
			ID:       m.MessageID,
			ChatID:   m.Chat.ID,
			SenderID: senderID,
			Kind:     pipeline.KindVoice,
			AudioRef: m.Voice.FileID,
		})
	case commands.IsCommand(m.Text):
		handler.HandleCommand(ctx, m.Chat.ID, senderID, m.Text)
	case m.Text != "":
		submit(pipeline.InboundMessage{
			ID:       m.MessageID,
			ChatID:   m.Chat.ID,
			SenderID: senderID,
			Kind:     pipeline.KindText,
			Text:     m.Text,
		})
	default:
		// Stickers, photos and other media are outside the bot's remit.
		logger.Info(fmt.Sprintf("ignoring unsupported message %d in chat %d", m.MessageID, m.Chat.ID))
	}
}

func submit(msg pipeline.InboundMessage) {
	pool.Submit(worker.Job{Ctx: ctx, Message: msg})
}
