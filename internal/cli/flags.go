package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Language   string
	BatchFile  string
	Sentence   string
	ListModels bool

	// Server flags
	Addr string

	// Completion flags
	Provider       string
	FastModel      string
	ReasoningModel string
	Temperature    float64
	Timeout        time.Duration

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:    "English",
		Addr:        ":8501",
		Provider:    "openai",
		Temperature: 0.7,
		Timeout:     30 * time.Second,
		LogLevel:    "info",
		LogFormat:   "tint",
	}
}
