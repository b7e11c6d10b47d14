// golos-labs/golos-bot/interfaces/stt.go
package interfaces

import "context"

// SpeechToText is the interface for the speech-to-text module.
//
// Transcribe returns the recognized text for one complete voice clip.
// Service and transport failures are absorbed by the implementation and
// reported as an empty string, the sentinel for "transcription unavailable".
type SpeechToText interface {
	Transcribe(ctx context.Context, audio []byte) string
}
