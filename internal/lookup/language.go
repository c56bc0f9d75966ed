package lookup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned for languages other than English and Italian
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language selects the language of examples, synonyms and phonetic neighbours.
// Definitions and metadata are always requested in English.
type Language string

const (
	English Language = "English"
	Italian Language = "Italian"
)

// Languages lists the supported languages in selector order
var Languages = []Language{English, Italian}

// ParseLanguage accepts a language name or its ISO code, case-insensitively
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return English, nil
	case "italian", "it":
		return Italian, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
}

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == English || l == Italian
}

// DefaultWord is the word prefilled in the lookup form
func (l Language) DefaultWord() string {
	if l == Italian {
		return "precarietà"
	}
	return "precarious"
}
