package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/wordexplorer/internal/completion"
)

// Catalog groups chat model IDs by the tier they suit
type Catalog struct {
	Fast      []string
	Reasoning []string
}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL selects the
// public OpenAI endpoint.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// Catalog fetches the model list and categorizes the chat models
func (l *Lister) Catalog(ctx context.Context) (Catalog, error) {
	if l.apiKey == "" {
		return Catalog{}, fmt.Errorf("%w: set OPENAI_API_KEY or completion.openai_key in .wordexplorer.yaml", completion.ErrNoAPIKey)
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	return Categorize(ids), nil
}

// Categorize sorts chat model IDs into fast and reasoning candidates.
// Audio, image, embedding and moderation models are dropped.
func Categorize(ids []string) Catalog {
	var catalog Catalog

	for _, id := range ids {
		if !isChatModel(id) {
			continue
		}
		if isFastModel(id) {
			catalog.Fast = append(catalog.Fast, id)
		} else {
			catalog.Reasoning = append(catalog.Reasoning, id)
		}
	}

	sort.Strings(catalog.Fast)
	sort.Strings(catalog.Reasoning)
	return catalog
}

func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "realtime", "transcribe", "search", "dall-e", "image", "embedding", "moderation", "whisper"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.HasPrefix(id, "gpt") || strings.HasPrefix(id, "chatgpt") ||
		strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4")
}

func isFastModel(id string) bool {
	return strings.Contains(id, "mini") || strings.Contains(id, "nano") || strings.Contains(id, "gpt-3.5")
}

// ListAvailableModels prints the chat models available for the API key
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	catalog, err := l.Catalog(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available OpenAI Chat Models:")
	printGroup(w, "Fast tier (level info, synonyms, similar words):", catalog.Fast)
	printGroup(w, "Reasoning tier (definitions, examples, tenses):", catalog.Reasoning)

	return nil
}

func printGroup(w io.Writer, title string, ids []string) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(ids) == 0 {
		fmt.Fprintln(w, "  No models found")
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
