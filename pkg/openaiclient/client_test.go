package openaiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"a summary"}}],"usage":{"total_tokens":42}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	resp, err := c.Chat(context.Background(), ChatRequest{
		Model:    "gpt-4o-mini",
		Messages: []Message{{Role: "user", Content: "summarize this"}},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.Content != "a summary" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 42 {
		t.Errorf("TotalTokens = %d", resp.Usage.TotalTokens)
	}
}

func TestChatStatusError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusBadGateway, true},
		{"bad request", http.StatusBadRequest, false},
		{"unauthorized", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := New(srv.URL, "")
			_, err := c.Chat(context.Background(), ChatRequest{Model: "m"})

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("Chat() error = %v, want StatusError", err)
			}
			if statusErr.Retryable() != tt.retryable {
				t.Errorf("Retryable() = %v, want %v", statusErr.Retryable(), tt.retryable)
			}
		})
	}
}

func TestChatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	if _, err := c.Chat(context.Background(), ChatRequest{Model: "m"}); err == nil {
		t.Error("Chat() expected error for empty choices")
	}
}
