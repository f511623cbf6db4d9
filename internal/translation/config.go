package translation

import (
	"net/http"

	"github.com/rs/zerolog"
)

// ServiceConfig selects and configures a translation service
type ServiceConfig struct {
	Provider    string // google, mymemory, openai or gemini
	HTTPClient  *http.Client
	MyMemoryKey string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
}

// DefaultServiceConfig returns the default translation configuration
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Provider:    "google",
		GeminiModel: defaultGeminiModel,
	}
}

// NewService builds the named translation service wrapped in a circuit
// breaker. Unknown names fall back to google.
func NewService(cfg ServiceConfig, logger zerolog.Logger) Service {
	var svc Service
	switch cfg.Provider {
	case "mymemory":
		svc = NewMyMemoryService(cfg.HTTPClient, cfg.MyMemoryKey, logger)
	case "openai":
		svc = NewOpenAIService(cfg.OpenAIKey, cfg.OpenAIModel)
	case "gemini":
		svc = NewGeminiService(cfg.GeminiKey, cfg.GeminiModel)
	default:
		svc = NewGoogleService(cfg.HTTPClient, logger)
	}
	return NewBreakerService(svc, logger)
}
