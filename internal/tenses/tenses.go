package tenses

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/snonux/wordexplorer/internal"
	"codeberg.org/snonux/wordexplorer/internal/completion"
	"codeberg.org/snonux/wordexplorer/internal/lookup"
)

// ErrEmptySentence is returned when the sentence is blank after trimming
var ErrEmptySentence = errors.New("sentence cannot be empty")

var englishTenses = []string{
	"Present Simple",
	"Present Continuous",
	"Past Simple",
	"Past Continuous",
	"Future Simple",
	"Present Perfect",
	"Past Perfect",
	"Future Perfect",
	"First Conditional",
	"Second Conditional",
	"Third Conditional",
}

var italianTenses = []string{
	"Presente",
	"Imperfetto",
	"Passato Prossimo",
	"Passato Remoto",
	"Trapassato Prossimo",
	"Futuro Semplice",
	"Futuro Anteriore",
	"Condizionale Presente",
	"Condizionale Passato",
	"Congiuntivo Presente",
	"Congiuntivo Imperfetto",
	"Congiuntivo Passato",
	"Congiuntivo Trapassato",
}

// List returns the tenses a sentence is rewritten into
func List(lang lookup.Language) []string {
	if lang == lookup.Italian {
		return italianTenses
	}
	return englishTenses
}

// DefaultSentence is the sentence prefilled in the tense form
func DefaultSentence(lang lookup.Language) string {
	if lang == lookup.Italian {
		return "Scrive una lettera."
	}
	return "She writes a letter."
}

// Prompt builds the tense transformation prompt
func Prompt(sentence string, lang lookup.Language) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rewrite the sentence in the major **%s** tenses listed below.\n", lang)
	b.WriteString("Add explanations for each tense (how to form it) and highlight tense constructions (e.g., **bold** the helping verbs or indicators).\n")
	b.WriteString("If needed, extend the sentence slightly.\n\n")
	fmt.Fprintf(&b, "Sentence: %q\n", sentence)
	b.WriteString("Use response language: English\n")
	b.WriteString("Include:\n")
	for _, tense := range List(lang) {
		fmt.Fprintf(&b, "- %s\n", tense)
	}
	b.WriteString(`
Format:
1. Tense Name
2. Example sentence (**highlight structure**)
3. Description
4. How to form it`)

	return b.String()
}

// Transformer rewrites sentences using the reasoning tier
type Transformer struct {
	asker lookup.Asker
}

// NewTransformer creates a new tense transformer
func NewTransformer(asker lookup.Asker) *Transformer {
	return &Transformer{asker: asker}
}

// Transform returns the markdown tense table for sentence. Endpoint failures
// are returned as inline "Error: ..." text; only a blank sentence or an
// unsupported language produce an error.
func (t *Transformer) Transform(ctx context.Context, sentence string, lang lookup.Language) (string, error) {
	sentence = internal.SanitizeInput(sentence)
	if sentence == "" {
		return "", ErrEmptySentence
	}
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", lookup.ErrUnsupportedLanguage, lang)
	}

	text, err := t.asker.Ask(context.WithoutCancel(ctx), completion.TierReasoning, Prompt(sentence, lang))
	if err != nil {
		slog.Warn("tense transformation failed", slog.String("sentence", sentence), slog.Any("error", err))
		return completion.ErrorText(err), nil
	}
	return text, nil
}
