package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/footylab/mvp-selector/internal/platform/logging"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestComplete_ReturnsVerdict(t *testing.T) {
	t.Parallel()

	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-llm-key" {
			t.Errorf("unexpected authorization header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [
				{
					"index": 0,
					"message": {"role": "assistant", "content": "MVP: Bellingham - decisive brace."},
					"finish_reason": "stop"
				}
			]
		}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		APIKey:  "test-llm-key",
		BaseURL: srv.URL,
		Model:   "gemini-1.5-flash",
		Timeout: 5 * time.Second,
		Logger:  logging.NewNop(),
	})

	verdict, err := client.Complete(context.Background(), "Who was the MVP?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != "MVP: Bellingham - decisive brace." {
		t.Fatalf("unexpected verdict: %q", verdict)
	}

	if got.Model != "gemini-1.5-flash" {
		t.Fatalf("unexpected model: %q", got.Model)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "Who was the MVP?" {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		APIKey:  "test-llm-key",
		BaseURL: srv.URL,
		Logger:  logging.NewNop(),
	})

	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected an error from a 503 response")
	}
}

func TestComplete_NoChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		APIKey:  "test-llm-key",
		BaseURL: srv.URL,
		Logger:  logging.NewNop(),
	})

	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected an error when the response carries no choices")
	}
}
