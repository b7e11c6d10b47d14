// golos-labs/golos-bot/pipeline/orchestrator_test.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golos-labs/golos-bot/audio"
	"github.com/golos-labs/golos-bot/safety"
)

type sentText struct {
	chatID int64
	text   string
}

type sentVoice struct {
	chatID  int64
	audio   []byte
	caption string
}

type fakePlatform struct {
	mu        sync.Mutex
	texts     []sentText
	voices    []sentVoice
	presences []string

	fetchData []byte
	fetchErr  error
	voiceErr  error
}

func (p *fakePlatform) SendText(_ context.Context, chatID int64, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.texts = append(p.texts, sentText{chatID, text})
	return nil
}

func (p *fakePlatform) SendVoice(_ context.Context, chatID int64, audio []byte, caption string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.voiceErr != nil {
		return p.voiceErr
	}
	p.voices = append(p.voices, sentVoice{chatID, audio, caption})
	return nil
}

func (p *fakePlatform) SendPresence(_ context.Context, _ int64, action string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.presences = append(p.presences, action)
	return nil
}

func (p *fakePlatform) FetchAudio(_ context.Context, _ string) ([]byte, error) {
	if p.fetchErr != nil {
		return nil, p.fetchErr
	}
	return p.fetchData, nil
}

type fakeTranscoder struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (t *fakeTranscoder) Transcode(_ context.Context, srcPath, dstPath string) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	return os.WriteFile(dstPath, append([]byte("mp3:"), data...), 0o600)
}

type fakeSTT struct {
	mu    sync.Mutex
	text  string
	calls int
}

func (s *fakeSTT) Transcribe(_ context.Context, _ []byte) string {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.text
}

type fakeGenerator struct {
	mu        sync.Mutex
	reply     string
	ok        bool
	calls     int
	lastInput string
}

func (g *fakeGenerator) Generate(_ context.Context, userText string) (string, bool) {
	g.mu.Lock()
	g.calls++
	g.lastInput = userText
	g.mu.Unlock()
	return g.reply, g.ok
}

type fakeSynth struct {
	mu       sync.Mutex
	audio    []byte
	calls    int
	lastText string
}

func (s *fakeSynth) Synthesize(_ context.Context, text string) []byte {
	s.mu.Lock()
	s.calls++
	s.lastText = text
	s.mu.Unlock()
	return s.audio
}

type nopLogger struct{}

func (nopLogger) Info(string)         {}
func (nopLogger) Error(string, error) {}

type fixture struct {
	orch     *Orchestrator
	platform *fakePlatform
	trans    *fakeTranscoder
	stt      *fakeSTT
	gen      *fakeGenerator
	synth    *fakeSynth
	store    *audio.Store
}

func newFixture(t *testing.T) *fixture {
	store, err := audio.NewStore(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		platform: &fakePlatform{fetchData: []byte("ogg-bytes")},
		trans:    &fakeTranscoder{},
		stt:      &fakeSTT{text: "Как дела?"},
		gen:      &fakeGenerator{reply: "Всё отлично!", ok: true},
		synth:    &fakeSynth{audio: []byte("voice-bytes")},
		store:    store,
	}
	f.orch = &Orchestrator{
		Platform:   f.platform,
		Transcoder: f.trans,
		STT:        f.stt,
		Generator:  f.gen,
		Synth:      f.synth,
		Gate:       safety.NewGate(),
		Store:      store,
		Logger:     nopLogger{},
	}
	return f
}

func (f *fixture) assertTempEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(f.store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "temp audio artifacts must be released when the run ends")
}

func textMsg(text string) InboundMessage {
	return InboundMessage{ID: 1, ChatID: 42, SenderID: 7, Kind: KindText, Text: text}
}

func voiceMsg() InboundMessage {
	return InboundMessage{ID: 2, ChatID: 42, SenderID: 7, Kind: KindVoice, AudioRef: "file-abc"}
}

func TestTextRun_Delivered(t *testing.T) {
	f := newFixture(t)
	f.orch.Run(context.Background(), textMsg("Как дела?"))

	assert.Equal(t, 1, f.gen.calls)
	assert.Equal(t, "Как дела?", f.gen.lastInput)
	require.Len(t, f.platform.texts, 1)
	assert.Equal(t, sentText{42, "Всё отлично!"}, f.platform.texts[0])
	assert.Contains(t, f.platform.presences, "typing")
	assert.Zero(t, f.synth.calls, "text path never synthesizes")
}

func TestTextRun_CrisisShortCircuit(t *testing.T) {
	f := newFixture(t)
	f.orch.Run(context.Background(), textMsg("Мне очень плохо, я хочу умереть"))

	assert.Zero(t, f.gen.calls, "generator must never see crisis input")
	assert.Zero(t, f.synth.calls)
	require.Len(t, f.platform.texts, 1)
	assert.Equal(t, safety.CrisisReply, f.platform.texts[0].text)
}

func TestTextRun_GeneratorFallbackStillDelivers(t *testing.T) {
	f := newFixture(t)
	f.gen.reply = "Извините, произошла ошибка."
	f.gen.ok = false

	f.orch.Run(context.Background(), textMsg("Привет"))

	require.Len(t, f.platform.texts, 1)
	assert.Equal(t, "Извините, произошла ошибка.", f.platform.texts[0].text)
}

func TestVoiceRun_Delivered(t *testing.T) {
	f := newFixture(t)
	f.orch.Run(context.Background(), voiceMsg())

	assert.Equal(t, 1, f.trans.calls)
	assert.Equal(t, 1, f.stt.calls)
	assert.Equal(t, 1, f.gen.calls)
	assert.Equal(t, "Как дела?", f.gen.lastInput)
	assert.Equal(t, 1, f.synth.calls)
	assert.Equal(t, "Всё отлично!", f.synth.lastText)

	require.Len(t, f.platform.voices, 1)
	assert.Equal(t, []byte("voice-bytes"), f.platform.voices[0].audio)
	assert.Equal(t, "Ответ на: *Как дела?*", f.platform.voices[0].caption)
	assert.Empty(t, f.platform.texts, "successful voice delivery sends no extra text")

	f.assertTempEmpty(t)
}

func TestVoiceRun_FetchFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.platform.fetchErr = errors.New("telegram http 500")

	f.orch.Run(context.Background(), voiceMsg())

	assert.Zero(t, f.trans.calls)
	assert.Zero(t, f.stt.calls)
	require.Len(t, f.platform.texts, 1)
	assert.Equal(t, msgFetchFailed, f.platform.texts[0].text)
	f.assertTempEmpty(t)
}

func TestVoiceRun_TranscodeFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.trans.err = errors.New("ffmpeg failed: exit status 1")

	f.orch.Run(context.Background(), voiceMsg())

	assert.Zero(t, f.stt.calls, "transcription must not run after a transcode failure")
	assert.Zero(t, f.gen.calls)
	require.Len(t, f.platform.texts, 1)
	assert.Equal(t, msgTranscodeFailed, f.platform.texts[0].text)
	f.assertTempEmpty(t)
}

func TestVoiceRun_EmptyTranscriptAborts(t *testing.T) {
	f := newFixture(t)
	f.stt.text = ""

	f.orch.Run(context.Background(), voiceMsg())

	assert.Zero(t, f.gen.calls, "generator must not run without a transcript")
	assert.Zero(t, f.synth.calls)
	require.Len(t, f.platform.texts, 1)
	assert.Equal(t, msgTranscribeFailed, f.platform.texts[0].text)
	f.assertTempEmpty(t)
}

func TestVoiceRun_CrisisTranscriptShortCircuit(t *testing.T) {
	f := newFixture(t)
	f.stt.text = "я хочу умереть"

	f.orch.Run(context.Background(), voiceMsg())

	assert.Zero(t, f.gen.calls)
	assert.Zero(t, f.synth.calls, "crisis replies are delivered as text, never synthesized")
	require.Len(t, f.platform.texts, 1)
	assert.Equal(t, safety.CrisisReply, f.platform.texts[0].text)
	f.assertTempEmpty(t)
}

func TestVoiceRun_SynthesisFailureDegradesToText(t *testing.T) {
	f := newFixture(t)
	f.synth.audio = nil

	f.orch.Run(context.Background(), voiceMsg())

	assert.Empty(t, f.platform.voices, "no voice payload on synthesis failure")
	require.Len(t, f.platform.texts, 1)
	text := f.platform.texts[0].text
	assert.Contains(t, text, "Как дела?", "fallback text carries the transcript")
	assert.Contains(t, text, "Всё отлично!", "fallback text carries the generated reply")
	f.assertTempEmpty(t)
}

func TestVoiceRun_VoiceDeliveryFailureDegradesToText(t *testing.T) {
	f := newFixture(t)
	f.platform.voiceErr = errors.New("telegram sendVoice: ok=false")

	f.orch.Run(context.Background(), voiceMsg())

	require.Len(t, f.platform.texts, 1)
	assert.Contains(t, f.platform.texts[0].text, "Всё отлично!")
	f.assertTempEmpty(t)
}

func TestVoiceRun_LongReplyIsSynthesizedThenCaptioned(t *testing.T) {
	f := newFixture(t)
	f.stt.text = strings.Repeat("о", 40)

	f.orch.Run(context.Background(), voiceMsg())

	require.Len(t, f.platform.voices, 1)
	assert.Equal(t, fmt.Sprintf("Ответ на: *%s...*", strings.Repeat("о", 30)), f.platform.voices[0].caption)
}

func TestRunsAreIsolated(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.orch.Run(context.Background(), voiceMsg())
		}()
	}
	wg.Wait()

	assert.Len(t, f.platform.voices, 8)
	f.assertTempEmpty(t)
}
