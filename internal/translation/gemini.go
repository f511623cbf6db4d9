package translation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiService translates with the Gemini API. The client is created on
// first use so a missing key only fails translation, not startup.
type GeminiService struct {
	apiKey string
	model  string

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewGeminiService creates a new Gemini translation service
func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiService{apiKey: apiKey, model: model}
}

// Name returns the service name
func (s *GeminiService) Name() string {
	return "gemini"
}

func (s *GeminiService) getClient(ctx context.Context) (*genai.Client, error) {
	s.once.Do(func() {
		if s.apiKey == "" {
			s.clientErr = fmt.Errorf("Gemini API key not found")
			return
		}
		s.client, s.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  s.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return s.client, s.clientErr
}

// Translate translates text from one language to another
func (s *GeminiService) Translate(ctx context.Context, text, from, to string) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(translationPrompt(text, from, to)), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", ErrEmptyResult
	}
	return translated, nil
}
