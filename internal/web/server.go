package web

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"codeberg.org/snonux/wordexplorer/internal/lookup"
)

// WordFetcher fetches the content bundle of a word
type WordFetcher interface {
	FetchWordData(ctx context.Context, word string, lang lookup.Language) (lookup.Bundle, error)
}

// SentenceTransformer rewrites a sentence in all tenses
type SentenceTransformer interface {
	Transform(ctx context.Context, sentence string, lang lookup.Language) (string, error)
}

// Config holds the HTTP server settings
type Config struct {
	Addr        string
	CORSOrigins []string
	Version     string
	Provider    string // completion provider name shown by /health
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Addr:        ":8501",
		CORSOrigins: []string{"*"},
	}
}

// Server serves the page, the JSON API and the health endpoint
type Server struct {
	config      Config
	fetcher     WordFetcher
	transformer SentenceTransformer
	markdown    goldmark.Markdown
	page        *template.Template
	logger      *slog.Logger
}

// NewServer creates a new server
func NewServer(config *Config, fetcher WordFetcher, transformer SentenceTransformer) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	return &Server{
		config:      *config,
		fetcher:     fetcher,
		transformer: transformer,
		markdown:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		page:        template.Must(template.ParseFS(templateFS, "templates/page.html")),
		logger:      slog.Default(),
	}
}

// Handler returns the routed handler with all middleware applied
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/health", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet},
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(c.Handler)
		r.Get("/lookup", s.handleAPILookup)
		r.Get("/tenses", s.handleAPITenses)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.config.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
