// golos-labs/golos-bot/cleanup/cleanup_test.go
package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golos-labs/golos-bot/audio"
)

func TestSweepOrphanedAudio(t *testing.T) {
	dir := t.TempDir()
	store, err := audio.NewStore(dir)
	require.NoError(t, err)

	orphan := filepath.Join(dir, audio.FilePrefix+"dead-run-source.ogg")
	foreign := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(orphan, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(foreign, []byte("x"), 0o600))

	res := SweepOrphanedAudio(store)

	assert.Equal(t, 1, res.Count)
	assert.NoFileExists(t, orphan)
	assert.FileExists(t, foreign, "files without the bot prefix are never touched")
}

func TestSweepOrphanedAudio_EmptyDir(t *testing.T) {
	store, err := audio.NewStore(t.TempDir())
	require.NoError(t, err)

	res := SweepOrphanedAudio(store)
	assert.Zero(t, res.Count)
}
