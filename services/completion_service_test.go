package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCompletionServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *CompletionService) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewCompletionService(srv.URL, "test-key", "deepseek-chat", srv.Client(), zap.NewNop())
	return srv, svc
}

func completionEnvelope(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestCompleteSuccess(t *testing.T) {
	var captured chatRequest
	_, svc := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(completionEnvelope("hello from the model")))
	})

	out, err := svc.Complete(context.Background(), "write me a plan")
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", out)

	assert.Equal(t, "deepseek-chat", captured.Model)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "write me a plan", captured.Messages[0].Content)
	assert.Equal(t, 0.7, captured.Temperature)
}

func TestCompleteUpstreamError(t *testing.T) {
	_, svc := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	})

	_, err := svc.Complete(context.Background(), "prompt")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	assert.Contains(t, upstream.Body, "rate limited")
}

func TestCompleteEmptyChoices(t *testing.T) {
	_, svc := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestCompleteBlankContent(t *testing.T) {
	_, svc := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionEnvelope("   \n")))
	})

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestCompleteMalformedEnvelope(t *testing.T) {
	_, svc := newCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	_, err := svc.Complete(context.Background(), "prompt")
	var malformed *MalformedJSONError
	assert.ErrorAs(t, err, &malformed)
}

func TestCompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	svc := NewCompletionService(srv.URL, "test-key", "deepseek-chat",
		&http.Client{Timeout: time.Second}, zap.NewNop())
	srv.Close() // connection refused from here on

	_, err := svc.Complete(context.Background(), "prompt")
	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}
