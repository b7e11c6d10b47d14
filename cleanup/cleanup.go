// golos-labs/golos-bot/cleanup/cleanup.go
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golos-labs/golos-bot/audio"
	logger "github.com/golos-labs/golos-bot/log"
)

// Result holds the outcome of a cleanup task.
type Result struct {
	Name        string
	Count       int
	Description string
}

// SweepOrphanedAudio removes scratch audio files left behind by a previous
// run that crashed before releasing them. Only files carrying the bot's
// prefix are touched; anything else in the directory is left alone.
func SweepOrphanedAudio(store *audio.Store) Result {
	res := Result{Name: "SweepOrphanedAudio", Description: store.Dir()}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		logger.Error(fmt.Sprintf("could not read temp audio directory %s", store.Dir()), err)
		return res
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), audio.FilePrefix) {
			continue
		}
		path := filepath.Join(store.Dir(), entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Error(fmt.Sprintf("could not remove orphaned audio file %s", path), err)
			continue
		}
		res.Count++
	}

	if res.Count > 0 {
		logger.Info(fmt.Sprintf("removed %d orphaned audio files from %s", res.Count, store.Dir()))
	}
	return res
}
