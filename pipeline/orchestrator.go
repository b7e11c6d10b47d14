// golos-labs/golos-bot/pipeline/orchestrator.go

// Package pipeline turns one inbound chat message into one outbound reply.
//
// Within a run the stages are strictly sequential: (voice only) download,
// transcode, transcribe, then the safety gate, reply generation and
// (voice only) speech synthesis. Every stage failure has a defined
// fallback; temporary audio artifacts are released on every exit path.
// Runs for different messages are independent and share nothing mutable.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/golos-labs/golos-bot/audio"
	"github.com/golos-labs/golos-bot/interfaces"
	"github.com/golos-labs/golos-bot/safety"
)

// Logger is the logging surface the orchestrator needs.
type Logger interface {
	Info(msg string)
	Error(context string, err error)
}

// Orchestrator sequences the pipeline stages for each inbound message.
// All fields are read-only after construction; one Orchestrator serves
// all concurrent runs.
type Orchestrator struct {
	Platform   interfaces.Platform
	Transcoder interfaces.Transcoder
	STT        interfaces.SpeechToText
	Generator  interfaces.ReplyGenerator
	Synth      interfaces.SpeechSynthesizer
	Gate       *safety.Gate
	Store      *audio.Store
	Logger     Logger
	Stats      Stats
}

// Run processes one inbound message to completion. It never returns an
// error: every failure path ends in a user-visible message and a log line.
func (o *Orchestrator) Run(ctx context.Context, msg InboundMessage) {
	switch msg.Kind {
	case KindText:
		o.runText(ctx, msg)
	case KindVoice:
		o.runVoice(ctx, msg)
	}
}

func (o *Orchestrator) runText(ctx context.Context, msg InboundMessage) {
	if o.checkSafety(ctx, msg.ChatID, msg.Text) {
		return
	}

	reply := o.respond(ctx, msg.ChatID, msg.Text)
	o.deliverText(ctx, msg.ChatID, reply.Text)
	o.count("delivered_text")
}

func (o *Orchestrator) runVoice(ctx context.Context, msg InboundMessage) {
	run := o.Store.NewRun()
	defer run.Release()

	// DOWNLOADING
	clip, err := o.Platform.FetchAudio(ctx, msg.AudioRef)
	if err != nil {
		o.abort(ctx, msg.ChatID, StageDownloading, msgFetchFailed, err)
		return
	}

	// TRANSCODING
	_ = o.Platform.SendPresence(ctx, msg.ChatID, interfaces.PresenceRecording)
	srcPath, err := run.WriteFile("source", "ogg", clip)
	if err != nil {
		o.abort(ctx, msg.ChatID, StageTranscoding, msgTranscodeFailed, err)
		return
	}
	dstPath := run.Path("transcoded", "mp3")
	if err := o.Transcoder.Transcode(ctx, srcPath, dstPath); err != nil {
		o.abort(ctx, msg.ChatID, StageTranscoding, msgTranscodeFailed, err)
		return
	}
	transcoded, err := os.ReadFile(dstPath)
	if err != nil {
		o.abort(ctx, msg.ChatID, StageTranscoding, msgTranscodeFailed, err)
		return
	}

	// TRANSCRIBING — empty transcript is the sentinel for "unavailable".
	transcript := o.STT.Transcribe(ctx, transcoded)
	if transcript == "" {
		o.abort(ctx, msg.ChatID, StageTranscribing, msgTranscribeFailed, nil)
		return
	}
	o.Logger.Info(fmt.Sprintf("transcribed voice message from %d: %s", msg.SenderID, transcript))

	// SAFETY
	if o.checkSafety(ctx, msg.ChatID, transcript) {
		return
	}

	// RESPONDING
	reply := o.respond(ctx, msg.ChatID, transcript)

	// SYNTHESIZING — empty audio degrades to text-only delivery.
	_ = o.Platform.SendPresence(ctx, msg.ChatID, interfaces.PresenceRecording)
	voice := o.Synth.Synthesize(ctx, reply.Text)
	if len(voice) == 0 {
		o.deliverText(ctx, msg.ChatID, textOnlyFallback(transcript, reply.Text))
		o.count("delivered_text_fallback")
		return
	}

	// DELIVERED
	if err := o.Platform.SendVoice(ctx, msg.ChatID, voice, voiceCaption(transcript)); err != nil {
		o.Logger.Error(fmt.Sprintf("delivering voice reply to chat %d", msg.ChatID), err)
		o.deliverText(ctx, msg.ChatID, textOnlyFallback(transcript, reply.Text))
		o.count("delivered_text_fallback")
		return
	}
	o.count("delivered_voice")
}

// checkSafety short-circuits the run with the fixed crisis message when
// the gate triggers. The reply generator is never consulted.
func (o *Orchestrator) checkSafety(ctx context.Context, chatID int64, text string) bool {
	verdict := o.Gate.Evaluate(text)
	if !verdict.Triggered {
		return false
	}
	o.Logger.Info(fmt.Sprintf("safety gate triggered on %q for chat %d", verdict.MatchedTerm, chatID))
	o.deliverText(ctx, chatID, safety.CrisisReply)
	o.count("crisis")
	return true
}

// respond asks the generator for a reply. Generation never aborts a run:
// a service failure already carries the apology text.
func (o *Orchestrator) respond(ctx context.Context, chatID int64, userText string) AssistantReply {
	_ = o.Platform.SendPresence(ctx, chatID, interfaces.PresenceTyping)
	text, ok := o.Generator.Generate(ctx, userText)
	if !ok {
		return AssistantReply{Text: text, Source: SourceErrorFallback}
	}
	return AssistantReply{Text: text, Source: SourceGenerated}
}

func (o *Orchestrator) abort(ctx context.Context, chatID int64, stage Stage, userMsg string, err error) {
	if err != nil {
		o.Logger.Error(fmt.Sprintf("pipeline aborted at %s for chat %d", stage, chatID), err)
	} else {
		o.Logger.Info(fmt.Sprintf("pipeline aborted at %s for chat %d", stage, chatID))
	}
	o.deliverText(ctx, chatID, userMsg)
	o.count("aborted_" + string(stage))
}

func (o *Orchestrator) deliverText(ctx context.Context, chatID int64, text string) {
	if err := o.Platform.SendText(ctx, chatID, text); err != nil {
		o.Logger.Error(fmt.Sprintf("delivering text reply to chat %d", chatID), err)
	}
}

func (o *Orchestrator) count(outcome string) {
	if o.Stats != nil {
		o.Stats.CountRun(outcome)
	}
}
