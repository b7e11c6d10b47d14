// golos-labs/golos-bot/interfaces/tts.go
package interfaces

import "context"

// SpeechSynthesizer is the interface for the text-to-speech module.
//
// Synthesize returns encoded audio for the given text, or an empty slice
// when synthesis failed. The empty result is the signal to fall back to
// text-only delivery, never an error to propagate.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) []byte
}
