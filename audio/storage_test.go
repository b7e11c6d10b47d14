// golos-labs/golos-bot/audio/storage_test.go
package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WriteAndRelease(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	run := store.NewRun()
	p, err := run.WriteFile("source", "ogg", []byte("fake-ogg"))
	require.NoError(t, err)
	assert.FileExists(t, p)

	reserved := run.Path("target", "mp3")
	require.NoError(t, os.WriteFile(reserved, []byte("fake-mp3"), 0o600))

	run.Release()

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "release must remove every scratch file of the run")
}

func TestRun_ReleaseToleratesMissingFiles(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	run := store.NewRun()
	p := run.Path("source", "ogg")
	// Never created; Release must not fail on it.
	run.Release()
	assert.NoFileExists(t, p)
}

func TestRuns_DoNotCollide(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	a := store.NewRun()
	b := store.NewRun()
	assert.NotEqual(t, a.Path("source", "ogg"), b.Path("source", "ogg"))

	pa, err := a.WriteFile("x", "mp3", []byte("a"))
	require.NoError(t, err)
	_, err = b.WriteFile("x", "mp3", []byte("b"))
	require.NoError(t, err)

	// Releasing one run leaves the other's files alone.
	b.Release()
	assert.FileExists(t, pa)
	a.Release()
}

func TestNewStore_DefaultsUnderOSTemp(t *testing.T) {
	store, err := NewStore("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.TempDir(), "golos-audio"), store.Dir())
}
