// golos-labs/golos-bot/safety/safety_test.go
package safety

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Triggers(t *testing.T) {
	g := NewGate()

	tests := []struct {
		text    string
		matched string
	}{
		{"Мне очень плохо, я хочу умереть", "хочу умереть"},
		{"Я ХОЧУ УМЕРЕТЬ", "хочу умереть"},
		{"иногда думаю про суицид...", "суицид"},
		{"I just want to die sometimes", "want to die"},
	}
	for _, tc := range tests {
		v := g.Evaluate(tc.text)
		assert.True(t, v.Triggered, "expected trigger on %q", tc.text)
		assert.Equal(t, tc.matched, v.MatchedTerm)
	}
}

func TestEvaluate_DoesNotTrigger(t *testing.T) {
	g := NewGate()

	for _, text := range []string{
		"Как дела?",
		"Расскажи анекдот про кота",
		"",
		"what is the weather today",
	} {
		v := g.Evaluate(text)
		assert.False(t, v.Triggered, "unexpected trigger on %q", text)
		assert.Empty(t, v.MatchedTerm)
	}
}

func TestNewGateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords:\n  - опасное слово\n"), 0o600))

	g, err := NewGateFromFile(path)
	require.NoError(t, err)

	assert.True(t, g.Evaluate("это Опасное Слово в тексте").Triggered)
	// Override replaces the built-in set entirely.
	assert.False(t, g.Evaluate("хочу умереть").Triggered)
}

func TestNewGateFromFile_MissingFallsBack(t *testing.T) {
	g, err := NewGateFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.True(t, g.Evaluate("хочу умереть").Triggered)
}

func TestNewGateFromFile_EmptyIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: []\n"), 0o600))

	_, err := NewGateFromFile(path)
	assert.Error(t, err, "an empty keyword file must not silently disable the gate")
}
