package audio

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// GenerateAudio generates audio from text and saves it to the specified file
	GenerateAudio(ctx context.Context, text string, outputFile string) error

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider         string // Provider name: "google", "openai" or "espeak"
	FallbackProvider string // Optional provider used when the primary fails
	Language         string // Language code sent to Google TTS

	HTTPClient *http.Client

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIModel       string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts model

	// espeak-ng settings
	ESpeakVoice string // "de", "de+m1", ...
	ESpeakSpeed int    // words per minute
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:          "google",
		Language:          "de",
		OpenAIModel:       "gpt-4o-mini-tts",
		OpenAIVoice:       "alloy",
		OpenAISpeed:       1.0,
		OpenAIInstruction: "You are speaking German (Deutsch) with standard High German pronunciation. Speak slowly and clearly for beginners learning the language.",
		ESpeakVoice:       "de",
		ESpeakSpeed:       150,
	}
}

// NewProvider creates the configured provider, wrapped with the fallback
// provider when one is set. A fallback that cannot be created is skipped.
func NewProvider(config *Config, logger zerolog.Logger) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	primary, err := newSingleProvider(config.Provider, config, logger)
	if err != nil {
		return nil, err
	}

	if config.FallbackProvider == "" || config.FallbackProvider == config.Provider {
		return primary, nil
	}

	fallback, err := newSingleProvider(config.FallbackProvider, config, logger)
	if err != nil {
		logger.Warn().Err(err).
			Str("component", "audio").
			Str("fallback", config.FallbackProvider).
			Msg("fallback audio provider unavailable")
		return primary, nil
	}

	return withFallback(primary, fallback, logger), nil
}

// withFallback pairs primary with fallback. An unavailable fallback is
// left out; an unavailable primary is replaced by the fallback.
func withFallback(primary, fallback Provider, logger zerolog.Logger) Provider {
	log := logger.With().Str("component", "audio").Logger()

	if err := fallback.IsAvailable(); err != nil {
		log.Warn().Err(err).
			Str("fallback", fallback.Name()).
			Msg("fallback audio provider unavailable")
		return primary
	}

	if err := primary.IsAvailable(); err != nil {
		log.Warn().Err(err).
			Str("primary", primary.Name()).
			Str("fallback", fallback.Name()).
			Msg("primary audio provider unavailable, using fallback")
		return fallback
	}

	return NewProviderWithFallback(primary, fallback, logger)
}

func newSingleProvider(name string, config *Config, logger zerolog.Logger) (Provider, error) {
	switch name {
	case "google", "":
		return NewGoogleProvider(config.HTTPClient, config.Language, logger), nil

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config, logger)

	case "espeak", "espeak-ng":
		return NewESpeakProvider(&ESpeakConfig{
			Voice:     config.ESpeakVoice,
			Speed:     config.ESpeakSpeed,
			Pitch:     50,
			Amplitude: 100,
		})

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", name)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	log      zerolog.Logger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider, logger zerolog.Logger) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
		log:      logger.With().Str("component", "audio").Logger(),
	}
}

// GenerateAudio tries primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	err := p.primary.GenerateAudio(ctx, text, outputFile)
	if err != nil {
		p.log.Warn().Err(err).
			Str("primary", p.primary.Name()).
			Str("fallback", p.fallback.Name()).
			Msg("primary provider failed, falling back")

		return p.fallback.GenerateAudio(ctx, text, outputFile)
	}
	return nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
