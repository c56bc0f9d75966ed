// Package models lists the OpenAI chat models available to an API key
// and groups them into candidates for the fast and reasoning tiers.
package models
