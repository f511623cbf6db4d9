package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// maxChatModels is how many chat models are printed before the list is
// narrowed to the gpt-4 family
const maxChatModels = 10

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Categories groups model IDs by what the assistant uses them for
type Categories struct {
	TTS  []string
	Chat []string
}

// Categorize sorts model IDs into speech and chat models. Other models
// are dropped.
func Categorize(ids []string) Categories {
	var c Categories
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"):
			c.TTS = append(c.TTS, id)
		case strings.Contains(id, "audio") || strings.Contains(id, "realtime") || strings.Contains(id, "transcribe"):
			// speech input models, not usable for synthesis
		case strings.Contains(id, "gpt") || strings.Contains(id, "chat"):
			c.Chat = append(c.Chat, id)
		}
	}
	sort.Strings(c.TTS)
	sort.Strings(c.Chat)
	return c
}

// ListAvailableModels prints the models available to the API key
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure openai.api_key in .deutsch.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}

	Print(w, Categorize(ids))
	return nil
}

// Print writes the categorized models
func Print(w io.Writer, c Categories) {
	fmt.Fprintln(w, "Available OpenAI Models:")

	fmt.Fprintln(w, "\nText-to-Speech (TTS) Models (audio.openai_model):")
	if len(c.TTS) == 0 {
		fmt.Fprintln(w, "  No TTS models found")
	}
	for _, model := range c.TTS {
		fmt.Fprintf(w, "  %s\n", model)
	}

	fmt.Fprintln(w, "\nChat Models (translation.openai_model, IPA breakdown):")
	if len(c.Chat) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return
	}
	if len(c.Chat) <= maxChatModels {
		for _, model := range c.Chat {
			fmt.Fprintf(w, "  %s\n", model)
		}
		return
	}

	// Show only relevant models
	shown := 0
	for _, model := range c.Chat {
		if strings.Contains(model, "gpt-4") {
			fmt.Fprintf(w, "  %s\n", model)
			shown++
		}
	}
	fmt.Fprintf(w, "  ... and %d more models\n", len(c.Chat)-shown)
}
