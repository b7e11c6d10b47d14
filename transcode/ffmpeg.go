// golos-labs/golos-bot/transcode/ffmpeg.go

// Package transcode converts platform voice clips (OGG/Opus) into the
// codec the transcription service expects (MP3), via an ffmpeg subprocess.
package transcode

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds one ffmpeg invocation. A clip that cannot be
// converted in this window is treated as failed, not waited on.
const DefaultTimeout = 30 * time.Second

// FFmpeg is a Transcoder backed by the ffmpeg binary.
type FFmpeg struct {
	bin          string
	sampleRateHz int
	channels     int
	timeout      time.Duration
}

// New locates ffmpeg on PATH and returns a transcoder that resamples to
// sampleRateHz and downmixes to the given channel count. Zero values keep
// the source rate/channels.
func New(sampleRateHz, channels int, timeout time.Duration) (*FFmpeg, error) {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found on PATH: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &FFmpeg{bin: bin, sampleRateHz: sampleRateHz, channels: channels, timeout: timeout}, nil
}

// Transcode converts srcPath into dstPath. The output codec is chosen by
// the destination extension, ffmpeg's native behavior. Nonzero exit and
// timeout both surface as errors carrying ffmpeg's diagnostic output.
func (f *FFmpeg) Transcode(ctx context.Context, srcPath, dstPath string) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	args := []string{"-y", "-loglevel", "error", "-i", srcPath}
	if f.channels > 0 {
		args = append(args, "-ac", strconv.Itoa(f.channels))
	}
	if f.sampleRateHz > 0 {
		args = append(args, "-ar", strconv.Itoa(f.sampleRateHz))
	}
	args = append(args, dstPath)

	cmd := exec.CommandContext(ctx, f.bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("ffmpeg timed out after %s", f.timeout)
		}
		return fmt.Errorf("ffmpeg failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
