// golos-labs/golos-bot/interfaces/platform.go
package interfaces

import "context"

// Presence actions understood by the messaging platform.
const (
	PresenceTyping    = "typing"
	PresenceRecording = "record_voice"
)

// Platform is the interface for the chat platform the bot relays messages on.
type Platform interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendVoice(ctx context.Context, chatID int64, audio []byte, caption string) error
	SendPresence(ctx context.Context, chatID int64, action string) error
	FetchAudio(ctx context.Context, fileID string) ([]byte, error)
}
