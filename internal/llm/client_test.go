package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momsync/momsync/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.LLMConfig{
		APIKey:      "sk-test",
		BaseURL:     baseURL,
		Model:       "moonshot-v1-8k",
		Temperature: 0.3,
		Timeout:     5 * time.Second,
	})
}

func completionJSON(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustMarshal(content) + `}}]}`
}

func mustMarshal(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateMinutes(t *testing.T) {
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("1. **Issue:** Fix login\n   - **Assigned to:** Alice")))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	minutes, err := client.GenerateMinutes(context.Background(), "meeting transcript text")
	require.NoError(t, err)

	assert.Contains(t, minutes, "Fix login")
	assert.Equal(t, "moonshot-v1-8k", gotReq.Model)
	assert.InDelta(t, 0.3, gotReq.Temperature, 0.001)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "meeting transcript text", gotReq.Messages[1].Content)
}

func TestGenerateMinutesEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateMinutes(context.Background(), "transcript")
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "no content returned")
}

func TestGenerateMinutesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateMinutes(context.Background(), "transcript")
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateMinutesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Closed server so the call fails at the transport layer

	client := newTestClient(srv.URL)
	_, err := client.GenerateMinutes(context.Background(), "transcript")

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}
