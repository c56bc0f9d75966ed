package completion

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Client is the process wide entry point to the completion endpoint.
// It is created once at startup and is read-only afterwards, so it is safe
// for concurrent use by any number of lookups.
type Client struct {
	provider Provider
	config   Config
	logger   *slog.Logger
}

// NewClient creates a client around an already constructed provider
func NewClient(provider Provider, config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	return &Client{
		provider: provider,
		config:   *config,
		logger:   slog.Default(),
	}
}

// Ask sends prompt to the model of the given tier and returns the trimmed reply
func (c *Client) Ask(ctx context.Context, tier Tier, prompt string) (string, error) {
	model := c.config.Model(tier)

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.provider.Complete(ctx, Request{
		Model:       model,
		System:      c.config.Persona,
		Prompt:      prompt,
		Temperature: c.config.Temperature,
	})
	duration := time.Since(start)

	if err != nil {
		c.logger.Debug("completion failed",
			slog.String("provider", c.provider.Name()),
			slog.String("model", model),
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("completion finished",
		slog.String("provider", c.provider.Name()),
		slog.String("model", model),
		slog.Duration("duration", duration),
	)
	return text, nil
}

// ProviderName returns the name of the underlying provider
func (c *Client) ProviderName() string {
	return c.provider.Name()
}
