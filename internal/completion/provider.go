package completion

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoAPIKey is returned when a provider is created without credentials
	ErrNoAPIKey = errors.New("API key is required")

	// ErrEmptyResponse is returned when the endpoint answers without any text
	ErrEmptyResponse = errors.New("empty response from completion endpoint")
)

// DefaultPersona is the system instruction sent with every prompt
const DefaultPersona = "You are a helpful English teacher."

// Tier selects between the cheap model and the better reasoning model
type Tier int

const (
	// TierFast is used for short, formulaic answers
	TierFast Tier = iota
	// TierReasoning is used for definitions, examples and tense rewrites
	TierReasoning
)

func (t Tier) String() string {
	switch t {
	case TierFast:
		return "fast"
	case TierReasoning:
		return "reasoning"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Request is a single prompt sent to a provider
type Request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
}

// Provider defines the interface for completion endpoints
type Provider interface {
	// Complete sends the request and returns the raw completion text
	Complete(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string
}

// Config holds the completion settings shared by all providers
type Config struct {
	Provider string // "openai" or "gemini"

	OpenAIKey     string
	OpenAIBaseURL string // optional, for OpenAI compatible endpoints
	GeminiKey     string

	FastModel      string // empty selects the provider default
	ReasoningModel string // empty selects the provider default

	Persona     string
	Temperature float32
	Timeout     time.Duration // per request, 0 disables

	// The breaker is off by default. While open it fails every request
	// without reaching the endpoint.
	BreakerEnabled  bool
	BreakerFailures uint32        // consecutive failures before the breaker opens
	BreakerHalfOpen uint32        // requests admitted while half-open, at least MinHalfOpenRequests
	BreakerCooldown time.Duration // time the breaker stays open
}

// defaultModels maps a provider to its fast and reasoning models
var defaultModels = map[string][2]string{
	"openai": {"gpt-3.5-turbo", "gpt-4.1-nano"},
	"gemini": {"gemini-2.0-flash-lite", "gemini-2.0-flash"},
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:        "openai",
		Persona:         DefaultPersona,
		Temperature:     0.7,
		Timeout:         30 * time.Second,
		BreakerEnabled:  false,
		BreakerFailures: 5,
		BreakerHalfOpen: MinHalfOpenRequests,
		BreakerCooldown: 30 * time.Second,
	}
}

// Model returns the model configured for a tier. Providers without
// defaults fall back to the OpenAI models.
func (c *Config) Model(tier Tier) string {
	defaults, ok := defaultModels[c.Provider]
	if !ok {
		defaults = defaultModels["openai"]
	}

	switch tier {
	case TierFast:
		if c.FastModel != "" {
			return c.FastModel
		}
		return defaults[0]
	default:
		if c.ReasoningModel != "" {
			return c.ReasoningModel
		}
		return defaults[1]
	}
}

// NewProvider creates the provider selected by the configuration, wrapped in
// a circuit breaker when enabled
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		provider Provider
		err      error
	)

	switch config.Provider {
	case "openai":
		provider, err = NewOpenAIProvider(config)
	case "gemini":
		provider, err = NewGeminiProvider(ctx, config)
	default:
		return nil, fmt.Errorf("unknown completion provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.BreakerEnabled {
		provider = NewBreakerProvider(provider, config.BreakerFailures, config.BreakerHalfOpen, config.BreakerCooldown)
	}
	return provider, nil
}

// ErrorText renders an error as the inline text shown in place of content
func ErrorText(err error) string {
	return "Error: " + err.Error()
}
