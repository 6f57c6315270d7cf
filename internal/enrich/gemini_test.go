package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "hello")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"world"}]}}]}`))
	}))
	defer server.Close()

	client := NewGemini("test-key", "", 5*time.Second)
	client.BaseURL = server.URL

	out, err := client.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "world", out)
}

func TestGeminiGenerateErrors(t *testing.T) {
	t.Run("api error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
		}))
		defer server.Close()

		client := NewGemini("test-key", "", 5*time.Second)
		client.BaseURL = server.URL

		_, err := client.Generate(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := NewGemini("test-key", "", 5*time.Second)
		client.BaseURL = server.URL

		_, err := client.Generate(context.Background(), "hello")
		require.Error(t, err)
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewGemini("test-key", "", time.Second)
		client.BaseURL = "http://127.0.0.1:1"

		_, err := client.Generate(context.Background(), "hello")
		require.Error(t, err)
	})
}
