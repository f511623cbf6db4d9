package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var languageNames = map[string]string{
	"de":    "German",
	"zh-CN": "Simplified Chinese",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

func translationPrompt(text, from, to string) string {
	return fmt.Sprintf(
		"Translate the following %s text to %s. Respond with only the translation, nothing else.\n\n%s",
		languageName(from), languageName(to), text)
}

// OpenAIService translates with OpenAI chat completions
type OpenAIService struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIService creates a new OpenAI translation service
func NewOpenAIService(apiKey, model string) *OpenAIService {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIService{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Name returns the service name
func (s *OpenAIService) Name() string {
	return "openai"
}

// Translate translates text from one language to another
func (s *OpenAIService) Translate(ctx context.Context, text, from, to string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(text, from, to),
			},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResult
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", ErrEmptyResult
	}
	return translated, nil
}
