// golos-labs/golos-bot/pipeline/types.go
package pipeline

// Kind discriminates text and voice messages.
type Kind int

const (
	KindText Kind = iota
	KindVoice
)

// InboundMessage is one user message handed to the orchestrator. Exactly
// one of Text/AudioRef is populated, determined by Kind. Immutable once
// received.
type InboundMessage struct {
	ID       int64
	ChatID   int64
	SenderID int64
	Kind     Kind
	Text     string
	AudioRef string
}

// ReplySource records where a reply's text came from.
type ReplySource int

const (
	SourceGenerated ReplySource = iota
	SourceSafetyTemplate
	SourceErrorFallback
)

// AssistantReply is the single reply produced by a pipeline run.
type AssistantReply struct {
	Text   string
	Source ReplySource
}

// Stage names one step of the pipeline, used for abort logging and run
// counters.
type Stage string

const (
	StageDownloading  Stage = "downloading"
	StageTranscoding  Stage = "transcoding"
	StageTranscribing Stage = "transcribing"
	StageSafety       Stage = "safety"
	StageResponding   Stage = "responding"
	StageSynthesizing Stage = "synthesizing"
	StageDelivering   Stage = "delivering"
)

// Stats receives per-run outcome counters. Implementations must tolerate
// concurrent calls; counting failures never affect the run.
type Stats interface {
	CountRun(outcome string)
}
