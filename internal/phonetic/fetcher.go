package phonetic

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a German language expert helping Chinese speaking beginners understand pronunciation. " +
	"Provide phonetic information using the International Phonetic Alphabet (IPA). " +
	"Explain every symbol in Simplified Chinese, comparing it to Mandarin sounds when possible."

// Fetcher asks an OpenAI model for an IPA transcription of German text
type Fetcher struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewFetcher creates a new phonetic information fetcher
func NewFetcher(apiKey, model string) *Fetcher {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Fetcher{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

func ipaPrompt(text string) string {
	return fmt.Sprintf(`For the German text '%s':
1. Provide the complete IPA transcription
2. Break down EACH phonetic symbol used in the transcription
3. For EVERY symbol, explain in Chinese how it is pronounced
4. Mark the stressed syllable

Example format:
Haus: [haʊ̯s]
• /h/ - 类似汉语"哈"的声母
• /aʊ̯/ - 双元音，类似汉语"奥"
• /s/ - 清擦音，类似汉语"斯"的声母`, text)
}

// Fetch returns the IPA breakdown for text
func (f *Fetcher) Fetch(ctx context.Context, text string) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	req := openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: ipaPrompt(text),
			},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	}

	resp, err := f.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
