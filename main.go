package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golos-labs/golos-bot/audio"
	"github.com/golos-labs/golos-bot/cache"
	"github.com/golos-labs/golos-bot/cleanup"
	"github.com/golos-labs/golos-bot/commands"
	"github.com/golos-labs/golos-bot/config"
	"github.com/golos-labs/golos-bot/events"
	"github.com/golos-labs/golos-bot/health"
	"github.com/golos-labs/golos-bot/interfaces"
	logger "github.com/golos-labs/golos-bot/log"
	"github.com/golos-labs/golos-bot/llm"
	"github.com/golos-labs/golos-bot/pipeline"
	"github.com/golos-labs/golos-bot/safety"
	"github.com/golos-labs/golos-bot/stt"
	"github.com/golos-labs/golos-bot/telegram"
	"github.com/golos-labs/golos-bot/transcode"
	"github.com/golos-labs/golos-bot/tts"
	"github.com/golos-labs/golos-bot/worker"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal error loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// 2. Initialize Telegram Session
	session, err := telegram.NewSession(cfg.Telegram.Token, cfg.Telegram.APIBaseURL)
	if err != nil {
		log.Fatalf("Error creating Telegram session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	me, err := session.GetMe(ctx)
	if err != nil {
		log.Fatalf("Error verifying Telegram token: %v", err)
	}

	// 3. Initialize Logger
	if cfg.Telegram.AdminChatID != 0 {
		adminChatID := cfg.Telegram.AdminChatID
		logger.Init(func(msg string) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = session.SendText(sendCtx, adminChatID, msg)
		})
	}
	logger.Info(fmt.Sprintf("authorized as @%s", me.Username))

	// 4. Initialize Cache
	db, err := cache.New(&cfg.Cache)
	if err != nil {
		logger.Error("Failed to initialize cache", err)
	}
	if db != nil {
		defer func() { _ = db.Close() }()
	}

	// 5. Temp Audio Store and Boot-time Cleanup
	store, err := audio.NewStore(cfg.Audio.TempDir)
	if err != nil {
		logger.Fatal("Failed to initialize temp audio store", err)
	}
	cleanup.SweepOrphanedAudio(store)

	// 6. Build Pipeline Adapters
	transcoder, err := transcode.New(cfg.Audio.SampleRateHz, cfg.Audio.Channels,
		time.Duration(cfg.Audio.TranscodeTimeoutSec)*time.Second)
	if err != nil {
		logger.Fatal("Failed to initialize transcoder", err)
	}

	var speechToText interfaces.SpeechToText
	switch cfg.STT.Backend {
	case "google":
		google, err := stt.NewGoogle(ctx, cfg.STT.Language, cfg.Audio.SampleRateHz)
		if err != nil {
			logger.Fatal("Failed to initialize Google speech client", err)
		}
		defer google.Close()
		speechToText = google
	default:
		speechToText = stt.NewOpenAI(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey,
			cfg.OpenAI.TranscribeModel, cfg.STT.Language)
	}

	generator := llm.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel,
		cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature)
	synth := tts.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.TTSModel, cfg.OpenAI.TTSVoice)

	gate := safety.NewGate()
	if keywordsPath, err := config.KeywordsPath(); err == nil {
		gate, err = safety.NewGateFromFile(keywordsPath)
		if err != nil {
			logger.Fatal("Failed to load crisis keyword override", err)
		}
	}

	var stats pipeline.Stats
	if db != nil {
		stats = db
	}
	orchestrator := &pipeline.Orchestrator{
		Platform:   session,
		Transcoder: transcoder,
		STT:        speechToText,
		Generator:  generator,
		Synth:      synth,
		Gate:       gate,
		Store:      store,
		Logger:     logger.Std{},
		Stats:      stats,
	}

	// 7. Start Worker Pool
	pool := worker.New(orchestrator, cfg.Worker.MaxWorkers, cfg.Worker.QueueSize)
	pool.Start()

	// 8. Initialize Update Routing
	handler := commands.NewHandler(session, cfg, db, speechToText)
	events.Init(ctx, pool, handler)

	// 9. Post Boot Status
	if cfg.Telegram.AdminChatID != 0 {
		report := health.BootReport(session, db, cfg, speechToText)
		if err := session.SendText(ctx, cfg.Telegram.AdminChatID, report); err != nil {
			logger.Error("Failed to post boot status", err)
		}
	}

	// 10. Poll for Updates until shutdown
	var offsets telegram.OffsetStore
	if db != nil {
		offsets = db
	}
	poller := telegram.NewPoller(session, offsets,
		time.Duration(cfg.Telegram.PollTimeoutSec)*time.Second, events.HandleUpdate)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	poller.Run(ctx)

	// Cleanly close down
	pool.Stop()
	fmt.Println("\nBot shutting down.")
}
