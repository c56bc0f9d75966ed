package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/wordexplorer/internal"
	"codeberg.org/snonux/wordexplorer/internal/completion"
)

// ErrEmptyWord is returned when the word is blank after trimming
var ErrEmptyWord = errors.New("word cannot be empty")

// Asker sends one prompt to the model of a tier.
// *completion.Client implements it.
type Asker interface {
	Ask(ctx context.Context, tier completion.Tier, prompt string) (string, error)
}

// Result is the outcome of one category fetch
type Result struct {
	Category Category
	Text     string // model output, or "Error: <message>" when Err is set
	Err      error
}

// Bundle holds exactly one result per category
type Bundle map[Category]Result

// Text returns the text of a category
func (b Bundle) Text(c Category) string {
	return b[c].Text
}

// Failed returns the categories whose fetch failed, in render order
func (b Bundle) Failed() []Category {
	var failed []Category
	for _, c := range Categories {
		if b[c].Err != nil {
			failed = append(failed, c)
		}
	}
	return failed
}

// Dispatcher fans a word lookup out to the completion endpoint
type Dispatcher struct {
	asker   Asker
	prompts []PromptSpec
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher using the standard prompts
func NewDispatcher(asker Asker) *Dispatcher {
	return &Dispatcher{
		asker:   asker,
		prompts: Prompts,
		logger:  slog.Default(),
	}
}

// FetchWordData issues all prompts for word concurrently and returns once
// every one of them has answered or failed.
//
// Only invalid input is returned as an error, before any request is made.
// Cancelling ctx does not stop requests already started; each one is bounded
// by the completion client's own timeout.
func (d *Dispatcher) FetchWordData(ctx context.Context, word string, lang Language) (Bundle, error) {
	word = internal.SanitizeInput(word)
	if word == "" {
		return nil, ErrEmptyWord
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	ctx = context.WithoutCancel(ctx)
	d.logger.Debug("fetching word data", slog.String("word", word), slog.String("language", string(lang)))
	start := time.Now()

	results := make([]Result, len(d.prompts))
	// fetch turns failures into inline results, so the goroutines always
	// return nil and one category never cancels another.
	var g errgroup.Group
	for i, ps := range d.prompts {
		g.Go(func() error {
			results[i] = d.fetch(ctx, ps, word, lang)
			return nil
		})
	}
	_ = g.Wait()

	bundle := make(Bundle, len(results))
	for _, r := range results {
		bundle[r.Category] = r
	}

	d.logger.Debug("all requests completed",
		slog.String("word", word),
		slog.Duration("duration", time.Since(start)),
		slog.Int("failed", len(bundle.Failed())),
	)
	return bundle, nil
}

func (d *Dispatcher) fetch(ctx context.Context, ps PromptSpec, word string, lang Language) Result {
	text, err := d.asker.Ask(ctx, ps.Tier, ps.Render(word, lang))
	if err != nil {
		d.logger.Warn("category fetch failed",
			slog.String("word", word),
			slog.String("category", string(ps.Category)),
			slog.Any("error", err),
		)
		return Result{Category: ps.Category, Text: completion.ErrorText(err), Err: err}
	}
	return Result{Category: ps.Category, Text: text}
}
