package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-daily-planner/pkg/deepseek"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Model != "deepseek-chat" {
			t.Errorf("request model = %q, want configured default", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(deepseek.Response{
			Model: "deepseek-chat",
			Choices: []deepseek.Choice{
				{Message: deepseek.Message{Role: "assistant", Content: `[{"task":"A","start":"09:00","end":"10:00"}]`}},
			},
			Usage: deepseek.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		})
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "test-api-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
		Messages: []deepseek.Message{
			{Role: "system", Content: "you schedule tasks"},
			{Role: "user", Content: "schedule A"},
		},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if len(resp.Choices) != 1 || !strings.Contains(resp.Choices[0].Message.Content, `"task":"A"`) {
		t.Errorf("choices = %+v", resp.Choices)
	}
	if resp.Usage.TotalTokens != 30 {
		t.Errorf("usage = %+v, want total 30", resp.Usage)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &deepseek.Request{
		Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error %q does not carry the API message", err)
	}
}

func TestGenerateContentNonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &deepseek.Request{
		Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
	})
	if err == nil || !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("error = %v, want raw body in message", err)
	}
}
