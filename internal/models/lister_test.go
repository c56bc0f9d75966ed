package models

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"reflect"
	"testing"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/wordexplorer/internal/completion"
	"codeberg.org/snonux/wordexplorer/internal/testutil"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", "")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestCategorize(t *testing.T) {
	ids := []string{
		"gpt-4.1",
		"tts-1",
		"gpt-4o-mini-tts",
		"gpt-3.5-turbo",
		"dall-e-3",
		"gpt-4.1-nano",
		"text-embedding-3-small",
		"o3",
		"gpt-4o-realtime-preview",
		"whisper-1",
		"gpt-4o-mini",
		"omni-moderation-latest",
	}

	got := Categorize(ids)
	want := Catalog{
		Fast:      []string{"gpt-3.5-turbo", "gpt-4.1-nano", "gpt-4o-mini"},
		Reasoning: []string{"gpt-4.1", "o3"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categorize() = %+v, want %+v", got, want)
	}
}

func TestListAvailableModels(t *testing.T) {
	fake := testutil.NewFakeOpenAI(t, func(openai.ChatCompletionRequest) (string, int) {
		return "", http.StatusOK
	})
	fake.SetModels("gpt-4.1", "gpt-4.1-nano", "tts-1")

	var out bytes.Buffer
	err := NewLister("test-key", fake.URL()).ListAvailableModels(context.Background(), &out)
	if err != nil {
		t.Fatalf("ListAvailableModels() error = %v", err)
	}

	testutil.AssertContains(t, out.String(), "Fast tier")
	testutil.AssertContains(t, out.String(), "  gpt-4.1-nano\n")
	testutil.AssertContains(t, out.String(), "  gpt-4.1\n")
	testutil.AssertNotContains(t, out.String(), "tts-1")
}

func TestListAvailableModels_Empty(t *testing.T) {
	fake := testutil.NewFakeOpenAI(t, func(openai.ChatCompletionRequest) (string, int) {
		return "", http.StatusOK
	})

	var out bytes.Buffer
	if err := NewLister("test-key", fake.URL()).ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels() error = %v", err)
	}

	testutil.AssertContains(t, out.String(), "No models found")
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, completion.ErrNoAPIKey) {
		t.Errorf("Expected ErrNoAPIKey, got: %v", err)
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	var out bytes.Buffer
	if err := NewLister(apiKey, "").ListAvailableModels(context.Background(), &out); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
