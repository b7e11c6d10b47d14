// golos-labs/golos-bot/stt/google.go
package stt

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"

	"github.com/golos-labs/golos-bot/log"
)

// Google transcribes complete clips with the Google Cloud Speech batch
// Recognize call. It relies on Application Default Credentials.
type Google struct {
	client       *speech.Client
	language     string
	sampleRateHz int
}

// NewGoogle creates a Google Cloud Speech client.
func NewGoogle(ctx context.Context, language string, sampleRateHz int) (*Google, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &Google{
		client:       client,
		language:     bcp47(language),
		sampleRateHz: sampleRateHz,
	}, nil
}

// Close cleans up the speech client connection.
func (g *Google) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// Transcribe recognizes one MP3 clip. Empty string means "transcription
// unavailable".
func (g *Google) Transcribe(ctx context.Context, audio []byte) string {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_MP3,
			SampleRateHertz: int32(g.sampleRateHz),
			LanguageCode:    g.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		log.Error("google speech recognize", err)
		return ""
	}

	var sb strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			sb.WriteString(result.Alternatives[0].Transcript)
		}
	}
	return strings.TrimSpace(sb.String())
}

// bcp47 widens two-letter language hints into the region codes the Google
// API expects. Full codes pass through unchanged.
func bcp47(lang string) string {
	switch strings.ToLower(lang) {
	case "ru":
		return "ru-RU"
	case "en":
		return "en-US"
	case "":
		return "ru-RU"
	default:
		return lang
	}
}
