package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"codeberg.org/snonux/wordexplorer/internal"
	"codeberg.org/snonux/wordexplorer/internal/lookup"
	"codeberg.org/snonux/wordexplorer/internal/tenses"
)

const (
	tabWord   = "word"
	tabTenses = "tenses"
)

type renderedSection struct {
	Title string
	HTML  template.HTML
}

type pageData struct {
	Languages []lookup.Language
	Language  lookup.Language
	Tab       string
	Word      string
	Sentence  string
	Sections  []renderedSection
	Tenses    template.HTML
	Error     string
	Version   string
}

// handlePage renders the explorer page. A non-empty word runs a lookup;
// on the tenses tab a non-empty sentence runs a transformation.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := languageOrDefault(q.Get("lang"))

	data := pageData{
		Languages: lookup.Languages,
		Language:  lang,
		Tab:       tabWord,
		Word:      lang.DefaultWord(),
		Sentence:  tenses.DefaultSentence(lang),
		Version:   s.config.Version,
	}
	if q.Get("tab") == tabTenses {
		data.Tab = tabTenses
	}

	switch data.Tab {
	case tabWord:
		if word := internal.SanitizeInput(q.Get("word")); word != "" {
			data.Word = word
			bundle, err := s.fetcher.FetchWordData(r.Context(), word, lang)
			if err != nil {
				data.Error = err.Error()
				break
			}
			for _, section := range lookup.BuildSections(word, bundle, lang) {
				data.Sections = append(data.Sections, renderedSection{
					Title: section.Title,
					HTML:  s.renderMarkdown(section.Markdown),
				})
			}
		}
	case tabTenses:
		if sentence := internal.SanitizeInput(q.Get("sentence")); sentence != "" {
			data.Sentence = sentence
			text, err := s.transformer.Transform(r.Context(), sentence, lang)
			if err != nil {
				data.Error = err.Error()
				break
			}
			data.Tenses = s.renderMarkdown(text)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", slog.Any("error", err))
	}
}

type lookupResponse struct {
	Word     string           `json:"word"`
	Language lookup.Language  `json:"language"`
	Sections []lookup.Section `json:"sections"`
}

func (s *Server) handleAPILookup(w http.ResponseWriter, r *http.Request) {
	lang, err := apiLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	word := internal.SanitizeInput(r.URL.Query().Get("word"))
	bundle, err := s.fetcher.FetchWordData(r.Context(), word, lang)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Word:     word,
		Language: lang,
		Sections: lookup.BuildSections(word, bundle, lang),
	})
}

type tensesResponse struct {
	Sentence string          `json:"sentence"`
	Language lookup.Language `json:"language"`
	Markdown string          `json:"markdown"`
}

func (s *Server) handleAPITenses(w http.ResponseWriter, r *http.Request) {
	lang, err := apiLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sentence := internal.SanitizeInput(r.URL.Query().Get("sentence"))
	text, err := s.transformer.Transform(r.Context(), sentence, lang)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, tensesResponse{
		Sentence: sentence,
		Language: lang,
		Markdown: text,
	})
}

// HealthResponse is the JSON response of /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   s.config.Version,
		Provider:  s.config.Provider,
		Timestamp: time.Now(),
	})
}

// languageOrDefault parses the page language, falling back to English
func languageOrDefault(s string) lookup.Language {
	lang, err := lookup.ParseLanguage(s)
	if err != nil {
		return lookup.English
	}
	return lang
}

// apiLanguage parses the API language; an empty value means English
func apiLanguage(s string) (lookup.Language, error) {
	if s == "" {
		return lookup.English, nil
	}
	return lookup.ParseLanguage(s)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, lookup.ErrEmptyWord),
		errors.Is(err, lookup.ErrUnsupportedLanguage),
		errors.Is(err, tenses.ErrEmptySentence):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
