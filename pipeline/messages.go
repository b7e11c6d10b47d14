// golos-labs/golos-bot/pipeline/messages.go
package pipeline

import (
	"fmt"
	"strings"
)

// User-visible failure texts. Always polite natural language, never raw
// errors.
const (
	msgFetchFailed      = "Не удалось получить голосовое сообщение. Попробуйте ещё раз."
	msgTranscodeFailed  = "Не удалось обработать голосовое сообщение. Попробуйте ещё раз."
	msgTranscribeFailed = "Не удалось распознать голосовое сообщение. Попробуйте ещё раз или отправьте текст."
)

// textOnlyFallback frames a reply that could not be voiced, keeping the
// transcript so the user sees what was understood.
func textOnlyFallback(transcript, reply string) string {
	return fmt.Sprintf("Вы сказали: «%s»\n\nОтвет: %s\n\nНе удалось синтезировать речь.", transcript, reply)
}

// voiceCaption derives the caption for a voice reply from the transcript
// of the question it answers.
func voiceCaption(transcript string) string {
	return fmt.Sprintf("Ответ на: *%s*", snippet(transcript, 30))
}

func snippet(text string, n int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
