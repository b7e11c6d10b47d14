// golos-labs/golos-bot/interfaces/llm.go
package interfaces

import "context"

// ReplyGenerator is the interface for the text-generation module.
//
// Generate always returns a usable reply. When the remote service fails,
// the fixed apology text is returned and ok is false so the caller can
// attribute the reply to the error fallback instead of the model.
type ReplyGenerator interface {
	Generate(ctx context.Context, userText string) (reply string, ok bool)
}
