package linkify

import (
	"strings"
)

// Section keywords whose bullets are turned into links
const (
	KeywordSynonym      = "synonym"
	KeywordPhonetically = "phonetically"
)

// linkable lists the section keywords whose bullets become links
var linkable = map[string]bool{
	KeywordSynonym:      true,
	KeywordPhonetically: true,
}

// Linkify rewrites every "- item" bullet found inside a synonym or phonetic
// section of text into "- [item](?word=item&lang=lang)".
//
// A line becomes the current section when its lowercased, trimmed form
// contains one of keywords; the first matching keyword wins. The section
// stays active until another keyword line is seen, so blank lines or prose
// do not end it. The &lang parameter is left out when lang is empty.
// Linkify is not idempotent: linkified bullets get wrapped again.
func Linkify(text string, keywords []string, lang string) string {
	lines := strings.Split(text, "\n")
	section := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		lower := strings.ToLower(trimmed)
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				section = strings.ToLower(keyword)
				break
			}
		}

		if !linkable[section] || !strings.HasPrefix(trimmed, "- ") {
			continue
		}

		phrase := strings.TrimSpace(strings.TrimLeft(trimmed, "- "))
		if phrase == "" {
			continue
		}
		lines[i] = "- [" + phrase + "](" + Query(phrase, lang) + ")"
	}

	return strings.Join(lines, "\n")
}

// Query builds the relative link target that looks up word in lang.
// Only spaces are percent-encoded.
func Query(word, lang string) string {
	q := "?word=" + strings.ReplaceAll(word, " ", "%20")
	if lang != "" {
		q += "&lang=" + lang
	}
	return q
}

// StripHeading removes the lines that consist of heading alone, ignoring
// surrounding whitespace. Callers use it to drop the model's own section
// header when the section is rendered under a separate title.
func StripHeading(text, heading string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == heading {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
