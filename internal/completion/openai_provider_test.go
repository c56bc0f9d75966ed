package completion_test

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/wordexplorer/internal/completion"
	"codeberg.org/snonux/wordexplorer/internal/testutil"
)

func TestOpenAIProviderComplete(t *testing.T) {
	fake := testutil.NewFakeOpenAI(t, func(req openai.ChatCompletionRequest) (string, int) {
		return "  - **Word:** happy\n", http.StatusOK
	})

	provider, err := completion.NewOpenAIProvider(&completion.Config{
		OpenAIKey:     "test-key",
		OpenAIBaseURL: fake.URL(),
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	got, err := provider.Complete(context.Background(), completion.Request{
		Model:       "gpt-3.5-turbo",
		System:      completion.DefaultPersona,
		Prompt:      "Describe happy",
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "  - **Word:** happy\n" {
		t.Errorf("Complete() = %q, provider must not alter the text", got)
	}

	requests := fake.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}

	req := requests[0]
	if req.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q", req.Model)
	}
	if req.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", req.Temperature)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[0].Content != completion.DefaultPersona {
		t.Errorf("unexpected system message: %+v", req.Messages[0])
	}
	if testutil.UserPrompt(req) != "Describe happy" {
		t.Errorf("unexpected user prompt: %q", testutil.UserPrompt(req))
	}
}

func TestOpenAIProviderComplete_APIError(t *testing.T) {
	fake := testutil.NewFakeOpenAI(t, func(req openai.ChatCompletionRequest) (string, int) {
		return "quota exceeded", http.StatusTooManyRequests
	})

	provider, err := completion.NewOpenAIProvider(&completion.Config{
		OpenAIKey:     "test-key",
		OpenAIBaseURL: fake.URL(),
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	_, err = provider.Complete(context.Background(), completion.Request{Model: "gpt-3.5-turbo", Prompt: "x"})
	if err == nil {
		t.Fatal("expected API error")
	}
	if !strings.Contains(err.Error(), "OpenAI API error") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected API message in error, got: %v", err)
	}
}

func TestOpenAIProviderComplete_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	config := completion.DefaultConfig()
	config.OpenAIKey = apiKey
	provider, err := completion.NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	client := completion.NewClient(provider, config)
	text, err := client.Ask(context.Background(), completion.TierFast, `Reply with the single word "ok".`)
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if text == "" {
		t.Error("Got empty completion")
	}

	t.Logf("Completion: %s", text)
}
