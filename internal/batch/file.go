package batch

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/wordexplorer/internal/lookup"
)

// WordEntry is one word of a batch file. An empty Language selects the
// language given on the command line.
type WordEntry struct {
	Word     string
	Language lookup.Language
}

// ReadBatchFile reads words from a file and returns WordEntry slice
// Supports formats:
// - word only: "precarious"
// - with language: "precarietà = Italian"
// Blank lines and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []WordEntry
	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, langName, hasLang := strings.Cut(line, "=")
		word = strings.TrimSpace(word)
		if word == "" {
			// "= Italian" without a word
			continue
		}

		entry := WordEntry{Word: word}
		if langName = strings.TrimSpace(langName); hasLang && langName != "" {
			lang, err := lookup.ParseLanguage(langName)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNo, err)
			}
			entry.Language = lang
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return entries, nil
}
