// golos-labs/golos-bot/audio/storage.go
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/golos-labs/golos-bot/log"
)

// FilePrefix marks every scratch file this process creates, so that a
// boot-time sweep can recognize leftovers from a crashed previous run.
const FilePrefix = "golos-"

// Store manages the temporary audio directory shared by all pipeline runs.
// Files inside it are exclusively owned by the run that created them.
type Store struct {
	dir string
}

// NewStore creates (if needed) and returns the temp audio store at dir.
// An empty dir selects <os temp>/golos-audio.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "golos-audio")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create temp audio directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the temp audio directory path.
func (s *Store) Dir() string {
	return s.dir
}

// NewRun opens a temp-audio scope for one pipeline run. Names are unique
// per run, so concurrent runs never collide.
func (s *Store) NewRun() *Run {
	return &Run{store: s, id: uuid.NewString()}
}

// Run tracks the scratch files of a single pipeline run. Release must be
// called on every exit path; the orchestrator defers it as soon as the run
// starts.
type Run struct {
	store *Store
	id    string

	mu    sync.Mutex
	paths []string
}

// ID returns the unique run identifier.
func (r *Run) ID() string {
	return r.id
}

// Path reserves a scratch file name for this run and records it for
// cleanup. The file itself is not created.
func (r *Run) Path(label, ext string) string {
	p := filepath.Join(r.store.dir, fmt.Sprintf("%s%s-%s.%s", FilePrefix, r.id, label, ext))
	r.mu.Lock()
	r.paths = append(r.paths, p)
	r.mu.Unlock()
	return p
}

// WriteFile writes data to a new scratch file and records it for cleanup.
func (r *Run) WriteFile(label, ext string, data []byte) (string, error) {
	p := r.Path(label, ext)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return "", fmt.Errorf("could not write temp audio file %s: %w", p, err)
	}
	return p, nil
}

// Release deletes every scratch file recorded for this run. A file that is
// already gone is not an error; other removal failures are logged and do
// not affect the run's outcome.
func (r *Run) Release() {
	r.mu.Lock()
	paths := r.paths
	r.paths = nil
	r.mu.Unlock()

	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Error(fmt.Sprintf("removing temp audio file %s", p), err)
		}
	}
}
