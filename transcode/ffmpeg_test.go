// golos-labs/golos-bot/transcode/ffmpeg_test.go
package transcode

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFFmpeg writes a shell script that stands in for the ffmpeg binary.
func fakeFFmpeg(t *testing.T, body string) *FFmpeg {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return &FFmpeg{bin: path, sampleRateHz: 16000, channels: 1, timeout: DefaultTimeout}
}

func TestTranscode_Success(t *testing.T) {
	// Copies the -i argument to the final argument, like ffmpeg would.
	f := fakeFFmpeg(t, `
src=""
while [ $# -gt 1 ]; do
  if [ "$1" = "-i" ]; then src="$2"; fi
  shift
done
cp "$src" "$1"`)

	dir := t.TempDir()
	src := filepath.Join(dir, "in.ogg")
	dst := filepath.Join(dir, "out.mp3")
	require.NoError(t, os.WriteFile(src, []byte("clip"), 0o600))

	require.NoError(t, f.Transcode(context.Background(), src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("clip"), data)
}

func TestTranscode_NonzeroExit(t *testing.T) {
	f := fakeFFmpeg(t, `echo "in.ogg: invalid data found" >&2; exit 1`)

	err := f.Transcode(context.Background(), "in.ogg", "out.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ffmpeg failed")
	assert.Contains(t, err.Error(), "invalid data found", "diagnostic output must be captured")
}

func TestTranscode_Timeout(t *testing.T) {
	f := fakeFFmpeg(t, `sleep 5`)
	f.timeout = 100 * time.Millisecond

	start := time.Now()
	err := f.Transcode(context.Background(), "in.ogg", "out.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 2*time.Second, "timeout must be enforced, not waited out")
}
