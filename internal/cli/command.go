package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordexplorer/internal"
	"codeberg.org/snonux/wordexplorer/internal/completion"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordexplorer [word]",
		Short: "English and Italian vocabulary explorer",
		Long: `wordexplorer looks up English or Italian words with a language model.

For every word it asks for the CEFR level, a definition, example sentences,
synonyms and phonetically similar words in parallel. Synonyms and similar
words become links to look them up in turn. It also rewrites a sentence in
all major tenses.

Examples:
  wordexplorer                                # Start the web interface (default)
  wordexplorer precarious                     # Look up a word via CLI
  wordexplorer --lang Italian precarietà      # Look up an Italian word
  wordexplorer --sentence "She writes."       # Rewrite a sentence in all tenses
  wordexplorer --batch words.txt              # Look up words from a file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordexplorer.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: tint, text or json")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "lang", "l", flags.Language, "Language: English or Italian")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Look up words from file (one per line, optional 'word = Italian')")
	cmd.Flags().StringVarP(&flags.Sentence, "sentence", "s", "", "Rewrite a sentence in all major tenses")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "Listen address of the web interface")

	// Completion flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Completion provider: openai or gemini")
	cmd.Flags().StringVar(&flags.FastModel, "fast-model", "", "Model for level info, synonyms and similar words (default: provider specific)")
	cmd.Flags().StringVar(&flags.ReasoningModel, "reasoning-model", "", "Model for definitions, examples and tenses (default: provider specific)")
	cmd.Flags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Sampling temperature (0.0 to 2.0)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout per completion request (0 disables)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("language", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	viper.BindPFlag("completion.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("completion.fast_model", cmd.Flags().Lookup("fast-model"))
	viper.BindPFlag("completion.reasoning_model", cmd.Flags().Lookup("reasoning-model"))
	viper.BindPFlag("completion.temperature", cmd.Flags().Lookup("temperature"))
	viper.BindPFlag("completion.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordexplorer" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordexplorer")
	}

	// Environment variables, e.g. WORDEXPLORER_COMPLETION_PROVIDER
	viper.SetEnvPrefix("WORDEXPLORER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("completion.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("completion.gemini_key")
}

// CompletionConfig builds the completion configuration from viper.
// Keys that are not set keep their defaults.
func CompletionConfig() *completion.Config {
	config := completion.DefaultConfig()
	config.OpenAIKey = GetOpenAIKey()
	config.GeminiKey = GetGeminiKey()
	config.OpenAIBaseURL = viper.GetString("completion.openai_base_url")

	if provider := viper.GetString("completion.provider"); provider != "" {
		config.Provider = strings.ToLower(provider)
	}
	config.FastModel = viper.GetString("completion.fast_model")
	config.ReasoningModel = viper.GetString("completion.reasoning_model")
	if persona := viper.GetString("completion.persona"); persona != "" {
		config.Persona = persona
	}
	if viper.IsSet("completion.temperature") {
		config.Temperature = float32(viper.GetFloat64("completion.temperature"))
	}
	if viper.IsSet("completion.timeout") {
		config.Timeout = viper.GetDuration("completion.timeout")
	}
	if viper.IsSet("completion.breaker.enabled") {
		config.BreakerEnabled = viper.GetBool("completion.breaker.enabled")
	}
	if failures := viper.GetUint32("completion.breaker.failures"); failures > 0 {
		config.BreakerFailures = failures
	}
	if halfOpen := viper.GetUint32("completion.breaker.half_open"); halfOpen > 0 {
		config.BreakerHalfOpen = halfOpen
	}
	if cooldown := viper.GetDuration("completion.breaker.cooldown"); cooldown > 0 {
		config.BreakerCooldown = cooldown
	}

	return config
}
