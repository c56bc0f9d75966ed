package processor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/wordexplorer/internal"
	"codeberg.org/snonux/wordexplorer/internal/batch"
	"codeberg.org/snonux/wordexplorer/internal/cli"
	"codeberg.org/snonux/wordexplorer/internal/completion"
	"codeberg.org/snonux/wordexplorer/internal/lookup"
	"codeberg.org/snonux/wordexplorer/internal/models"
	"codeberg.org/snonux/wordexplorer/internal/tenses"
	"codeberg.org/snonux/wordexplorer/internal/web"
)

// Processor handles the main word processing logic
type Processor struct {
	flags       *cli.Flags
	config      *completion.Config
	client      *completion.Client
	dispatcher  *lookup.Dispatcher
	transformer *tenses.Transformer
}

// NewProcessor creates a new word processor with the completion provider
// selected by the configuration
func NewProcessor(ctx context.Context, flags *cli.Flags) (*Processor, error) {
	config := cli.CompletionConfig()

	provider, err := completion.NewProvider(ctx, config)
	if err != nil {
		return nil, err
	}

	return NewProcessorWithClient(flags, config, completion.NewClient(provider, config)), nil
}

// NewProcessorWithClient creates a processor around an existing client
func NewProcessorWithClient(flags *cli.Flags, config *completion.Config, client *completion.Client) *Processor {
	return &Processor{
		flags:       flags,
		config:      config,
		client:      client,
		dispatcher:  lookup.NewDispatcher(client),
		transformer: tenses.NewTransformer(client),
	}
}

// Language returns the configured lookup language
func (p *Processor) Language() (lookup.Language, error) {
	name := viper.GetString("language")
	if name == "" {
		name = p.flags.Language
	}
	return lookup.ParseLanguage(name)
}

// ProcessSingleWord looks up a single word from command line
func (p *Processor) ProcessSingleWord(ctx context.Context, word string) error {
	lang, err := p.Language()
	if err != nil {
		return err
	}

	_, err = p.lookupWord(ctx, word, lang)
	return err
}

func (p *Processor) lookupWord(ctx context.Context, word string, lang lookup.Language) (lookup.Bundle, error) {
	word = internal.SanitizeInput(word)

	bundle, err := p.dispatcher.FetchWordData(ctx, word, lang)
	if err != nil {
		return nil, fmt.Errorf("lookup '%s': %w", word, err)
	}

	fmt.Printf("# %s (%s)\n", word, lang)
	for _, section := range lookup.BuildSections(word, bundle, lang) {
		fmt.Printf("\n## %s\n\n%s\n", section.Title, section.Markdown)
	}

	return bundle, nil
}

// ProcessBatch looks up every word of the batch file in turn
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	defaultLang, err := p.Language()
	if err != nil {
		return err
	}

	// Track statistics
	completeCount := 0
	partialCount := 0
	errorCount := 0

	for i, entry := range entries {
		lang := entry.Language
		if lang == "" {
			lang = defaultLang
		}

		fmt.Printf("\n<!-- %d/%d -->\n", i+1, len(entries))

		bundle, err := p.lookupWord(ctx, entry.Word, lang)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Word, err)
			errorCount++
		case len(bundle.Failed()) > 0:
			partialCount++
		default:
			completeCount++
		}
	}

	// Print summary
	fmt.Printf("\n=== Batch Summary ===\n")
	fmt.Printf("Total words: %d\n", len(entries))
	fmt.Printf("Complete: %d\n", completeCount)
	if partialCount > 0 {
		fmt.Printf("Partial (some sections failed): %d\n", partialCount)
	}
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("=====================\n")

	return nil
}

// TransformSentence prints the sentence rewritten in all major tenses
func (p *Processor) TransformSentence(ctx context.Context, sentence string) error {
	lang, err := p.Language()
	if err != nil {
		return err
	}

	text, err := p.transformer.Transform(ctx, sentence, lang)
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n\n%s\n", strings.TrimSpace(sentence), text)
	return nil
}

// ListModels prints the chat models available to the OpenAI key
func (p *Processor) ListModels(ctx context.Context) error {
	lister := models.NewLister(p.config.OpenAIKey, p.config.OpenAIBaseURL)
	return lister.ListAvailableModels(ctx, os.Stdout)
}

// RunServer serves the web interface until ctx is cancelled
func (p *Processor) RunServer(ctx context.Context) error {
	config := p.ServerConfig()
	srv := web.NewServer(config, p.dispatcher, p.transformer)
	return srv.Run(ctx)
}

// ServerConfig builds the web server configuration
func (p *Processor) ServerConfig() *web.Config {
	config := web.DefaultConfig()
	config.Addr = p.flags.Addr
	if addr := viper.GetString("server.addr"); addr != "" {
		config.Addr = addr
	}
	if origins := viper.GetStringSlice("server.cors_origins"); len(origins) > 0 {
		config.CORSOrigins = origins
	}
	config.Version = internal.Version
	config.Provider = p.client.ProviderName()
	return config
}
