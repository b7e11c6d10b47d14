// golos-labs/golos-bot/llm/prompts.go
package llm

// systemPrompt is the fixed assistant persona. Every generation request
// carries it; user text never replaces it.
const systemPrompt = "Ты — дружелюбный и полезный голосовой ассистент. " +
	"Ты свободно общаешься с пользователем на русском языке, отвечаешь " +
	"кратко и по существу, без лишних вступлений."

// FallbackReply is returned when the generation service fails. It is the
// pipeline's apology, never the model's output.
const FallbackReply = "Извините, произошла ошибка при обращении к модели. Попробуйте ещё раз чуть позже."
