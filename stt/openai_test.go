// golos-labs/golos-bot/stt/openai_test.go
package stt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAI_Transcribe(t *testing.T) {
	var gotModel, gotLanguage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-mp3"), data)

		_, _ = w.Write([]byte("Как дела?\n"))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "whisper-1", "ru")
	text := c.Transcribe(context.Background(), []byte("fake-mp3"))

	assert.Equal(t, "Как дела?", text)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "ru", gotLanguage)
}

func TestOpenAI_Transcribe_ServiceErrorIsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "sk-test", "whisper-1", "ru")
	assert.Equal(t, "", c.Transcribe(context.Background(), []byte("fake-mp3")))
}

func TestOpenAI_Transcribe_TransportErrorIsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewOpenAI(srv.URL, "sk-test", "whisper-1", "ru")
	assert.Equal(t, "", c.Transcribe(context.Background(), []byte("fake-mp3")))
}
