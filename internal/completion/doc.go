// Package completion wraps the text completion endpoints used to generate
// learning content. It provides OpenAI and Gemini providers, an optional
// circuit breaker, and a Client that maps model tiers to concrete models and
// applies the shared persona, temperature and per-request timeout.
package completion
