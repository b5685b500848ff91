package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"astro-observer/pkg/llm"
)

func TestChatRequiresAPIKey(t *testing.T) {
	p := NewDeepSeekProvider("http://127.0.0.1:1", "", "deepseek-chat")
	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("Chat() error = nil, want error when api key is empty")
	}
}

func TestChatSendsHistoryAndReturnsReply(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Stream bool `json:"stream"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Orion rises in the east."}}]}`))
	}))
	defer srv.Close()

	p := NewDeepSeekProvider(srv.URL, "sk-test", "deepseek-chat")
	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are a stargazing guide."},
		{Role: "model", Content: "Hello."},
		{Role: "user", Content: "Where is Orion?"},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "Orion rises in the east." {
		t.Errorf("Chat() = %q", reply)
	}

	if captured.Model != "deepseek-chat" {
		t.Errorf("model = %q, want deepseek-chat", captured.Model)
	}
	if captured.Stream {
		t.Error("stream = true, want false")
	}
	if len(captured.Messages) != 3 {
		t.Fatalf("len(messages) = %d, want 3", len(captured.Messages))
	}
	// Gemini-style "model" role must be rewritten for the OpenAI dialect.
	if captured.Messages[1].Role != "assistant" {
		t.Errorf("messages[1].role = %q, want assistant", captured.Messages[1].Role)
	}
}

func TestChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := NewDeepSeekProvider(srv.URL, "sk-test", "deepseek-chat")
	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("Chat() error = nil, want error for empty choices")
	}
}
