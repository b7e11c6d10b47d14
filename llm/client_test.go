// golos-labs/golos-bot/llm/client_test.go
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_UsesFirstChoice(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Привет! Всё хорошо."}},
				{"message": map[string]string{"role": "assistant", "content": "second candidate"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test", "gemini-2.5-flash", 512, 0.7)
	reply, ok := c.Generate(context.Background(), "Как дела?")

	assert.True(t, ok)
	assert.Equal(t, "Привет! Всё хорошо.", reply)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, systemPrompt, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "Как дела?", got.Messages[1].Content)
	assert.Equal(t, 512, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	assert.False(t, got.Stream)
}

func TestGenerate_ServiceErrorReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test", "gemini-2.5-flash", 512, 0.7)
	reply, ok := c.Generate(context.Background(), "Как дела?")

	assert.False(t, ok)
	assert.Equal(t, FallbackReply, reply)
}

func TestGenerate_EmptyChoicesReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test", "gemini-2.5-flash", 512, 0.7)
	reply, ok := c.Generate(context.Background(), "Как дела?")

	assert.False(t, ok)
	assert.Equal(t, FallbackReply, reply)
}
