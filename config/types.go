// golos-labs/golos-bot/config/types.go
package config

// TelegramConfig holds the bot token and chat wiring for the Telegram API.
type TelegramConfig struct {
	Token string `json:"token" env:"TELEGRAM_TOKEN"`
	// AdminChatID receives boot status and mirrored error logs when set.
	AdminChatID    int64  `json:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID"`
	APIBaseURL     string `json:"api_base_url" env:"TELEGRAM_API_BASE"`
	PollTimeoutSec int    `json:"poll_timeout_sec"`
}

// OpenAIConfig holds credentials and model identifiers for the
// OpenAI-compatible text, transcription and speech endpoints.
type OpenAIConfig struct {
	APIKey          string  `json:"api_key" env:"OPENAI_API_KEY"`
	BaseURL         string  `json:"base_url" env:"OPENAI_API_BASE"`
	ChatModel       string  `json:"chat_model"`
	TranscribeModel string  `json:"transcribe_model"`
	TTSModel        string  `json:"tts_model"`
	TTSVoice        string  `json:"tts_voice"`
	MaxTokens       int     `json:"max_tokens"`
	Temperature     float64 `json:"temperature"`
}

// STTConfig selects the speech-to-text backend.
type STTConfig struct {
	// Backend is "openai" or "google".
	Backend  string `json:"backend" env:"STT_BACKEND"`
	Language string `json:"language"`
}

// AudioConfig controls transcoding and temporary audio storage.
type AudioConfig struct {
	// TempDir holds per-run scratch files. Empty means <os temp>/golos-audio.
	TempDir             string `json:"temp_dir" env:"GOLOS_TEMP_DIR"`
	TranscodeTimeoutSec int    `json:"transcode_timeout_sec"`
	SampleRateHz        int    `json:"sample_rate_hz"`
	Channels            int    `json:"channels"`
}

// CacheConfig holds the optional Redis connection used for update offset
// persistence and run counters. An empty Addr disables the cache.
type CacheConfig struct {
	Addr     string `json:"addr" env:"GOLOS_REDIS_ADDR"`
	Username string `json:"username"`
	Password string `json:"password" env:"GOLOS_REDIS_PASSWORD"`
	DB       int    `json:"db"`
}

// WorkerConfig bounds pipeline concurrency.
type WorkerConfig struct {
	MaxWorkers int `json:"max_workers"`
	QueueSize  int `json:"queue_size"`
}

// Config is the full bot configuration.
type Config struct {
	Telegram TelegramConfig `json:"telegram"`
	OpenAI   OpenAIConfig   `json:"openai"`
	STT      STTConfig      `json:"stt"`
	Audio    AudioConfig    `json:"audio"`
	Cache    CacheConfig    `json:"cache"`
	Worker   WorkerConfig   `json:"worker"`
}

// Default returns the configuration written on first run. Credentials are
// intentionally blank; they come from the config file or the environment.
func Default() *Config {
	return &Config{
		Telegram: TelegramConfig{
			APIBaseURL:     "https://api.telegram.org",
			PollTimeoutSec: 30,
		},
		OpenAI: OpenAIConfig{
			BaseURL:         "https://api.openai.com/v1",
			ChatModel:       "gemini-2.5-flash",
			TranscribeModel: "whisper-1",
			TTSModel:        "tts-1",
			TTSVoice:        "alloy",
			MaxTokens:       512,
			Temperature:     0.7,
		},
		STT: STTConfig{
			Backend:  "openai",
			Language: "ru",
		},
		Audio: AudioConfig{
			TranscodeTimeoutSec: 30,
			SampleRateHz:        16000,
			Channels:            1,
		},
		Worker: WorkerConfig{
			MaxWorkers: 4,
			QueueSize:  64,
		},
	}
}
