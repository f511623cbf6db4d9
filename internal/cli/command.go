package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jerrypanguo/Deutsch-Learning/internal"
	"github.com/jerrypanguo/Deutsch-Learning/internal/logging"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deutsch",
		Short: "German learning assistant for Chinese speakers",
		Long: `deutsch is an interactive assistant for beginner (A1) German learners.

It offers four features behind a numbered menu:
  1. translation between German and Chinese
  2. word by word grammatical analysis
  3. spelling and grammar correction
  4. pronunciation tips with audio playback

Examples:
  deutsch                              # Start the interactive menu
  deutsch --tts-provider espeak        # Speak with the local espeak-ng voice
  deutsch --no-languagetool            # Use the offline correction hints
  deutsch --list-models                # List usable OpenAI models`,
		Args:         cobra.NoArgs,
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.deutsch.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", flags.LogFile, "Log file, empty disables logging")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVar(&flags.TranslationProvider, "translation-provider", flags.TranslationProvider, "Translation service: google, mymemory, openai, gemini")
	cmd.Flags().StringVar(&flags.TTSProvider, "tts-provider", flags.TTSProvider, "Speech synthesis: google, openai, espeak")
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", "", "Audio cache directory (default is the user cache directory)")
	cmd.Flags().StringVar(&flags.LanguageToolURL, "languagetool-url", flags.LanguageToolURL, "LanguageTool server used for correction")
	cmd.Flags().BoolVar(&flags.NoLanguageTool, "no-languagetool", false, "Skip LanguageTool and use the offline correction hints")
	cmd.Flags().BoolVar(&flags.NoAudio, "no-audio", false, "Do not play audio (files are still generated)")
	cmd.Flags().BoolVar(&flags.IPA, "ipa", false, "Add an IPA breakdown to pronunciation guidance (needs OPENAI_API_KEY)")
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print results as plain text instead of tables")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("log.file", cmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("translation-provider"))
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("tts-provider"))
	viper.BindPFlag("audio.cache_dir", cmd.Flags().Lookup("cache-dir"))
	viper.BindPFlag("audio.no_playback", cmd.Flags().Lookup("no-audio"))
	viper.BindPFlag("correction.languagetool_url", cmd.Flags().Lookup("languagetool-url"))
	viper.BindPFlag("correction.disabled", cmd.Flags().Lookup("no-languagetool"))
	viper.BindPFlag("pronunciation.ipa", cmd.Flags().Lookup("ipa"))
	viper.BindPFlag("ui.plain", cmd.Flags().Lookup("plain"))
}

// SetDefaults registers defaults for the keys that have no flag
func SetDefaults() {
	logCfg := logging.DefaultConfig()
	viper.SetDefault("log.file", logCfg.File)
	viper.SetDefault("log.level", logCfg.Level)
	viper.SetDefault("log.max_size_mb", logCfg.MaxSizeMB)
	viper.SetDefault("http.timeout", "0s")
	viper.SetDefault("dictionary.enabled", true)
	viper.SetDefault("dictionary.cache_db", "")
	viper.SetDefault("analysis.udpipe_model", "german")
	viper.SetDefault("translation.openai_model", "")
	viper.SetDefault("translation.gemini_model", "gemini-2.0-flash")
	viper.SetDefault("audio.fallback_provider", "")
	viper.SetDefault("audio.language", "de")
	viper.SetDefault("audio.openai_model", "gpt-4o-mini-tts")
	viper.SetDefault("audio.openai_voice", "alloy")
	viper.SetDefault("audio.openai_speed", 1.0)
	viper.SetDefault("audio.espeak_voice", "de")
	viper.SetDefault("audio.espeak_speed", 150)
}

// InitConfig loads .env, the config file and environment variables into
// viper
func InitConfig(cfgFile string) {
	// Keys in .env become plain environment variables; real environment
	// variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
	}

	SetDefaults()

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

		// Search config in home directory with name ".deutsch" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".deutsch")
	}

	// Environment variables
	viper.SetEnvPrefix("DEUTSCH")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	return keyFromEnvOrConfig("OPENAI_API_KEY", "openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	return keyFromEnvOrConfig("GEMINI_API_KEY", "translation.gemini_key")
}

// GetMyMemoryKey retrieves the optional MyMemory key from environment or
// config
func GetMyMemoryKey() string {
	return keyFromEnvOrConfig("MYMEMORY_API_KEY", "translation.mymemory_key")
}

func keyFromEnvOrConfig(env, key string) string {
	// First check environment variable
	if v := os.Getenv(env); v != "" {
		return v
	}

	// Then check config file
	return viper.GetString(key)
}
