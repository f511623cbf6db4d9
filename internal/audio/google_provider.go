package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	googleTTSURL = "https://translate.google.com/translate_tts"

	// The endpoint rejects longer inputs
	maxChunkRunes = 100
)

// GoogleProvider implements Provider with the Google Translate speech
// endpoint. Long text is spoken in chunks whose MP3 streams are
// concatenated into one file.
type GoogleProvider struct {
	client   *http.Client
	baseURL  string
	language string
	log      zerolog.Logger
}

// NewGoogleProvider creates a new Google TTS provider
func NewGoogleProvider(client *http.Client, language string, logger zerolog.Logger) *GoogleProvider {
	if client == nil {
		client = http.DefaultClient
	}
	if language == "" {
		language = "de"
	}
	return &GoogleProvider{
		client:   client,
		baseURL:  googleTTSURL,
		language: language,
		log:      logger.With().Str("component", "google-tts").Logger(),
	}
}

// GenerateAudio generates an MP3 file using Google TTS
func (p *GoogleProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text); err != nil {
		return err
	}

	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write next to the target and rename, so an interrupted download
	// never leaves a truncated file in the cache
	tmp, err := os.CreateTemp(dir, ".tts-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	chunks := splitText(text, maxChunkRunes)
	for i, chunk := range chunks {
		if err := p.fetchChunk(ctx, chunk, i, len(chunks), tmp); err != nil {
			tmp.Close()
			return err
		}
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	if err := os.Rename(tmp.Name(), outputFile); err != nil {
		return fmt.Errorf("failed to move audio file: %w", err)
	}

	p.log.Debug().Int("chunks", len(chunks)).Str("file", outputFile).Msg("generated audio")
	return nil
}

func (p *GoogleProvider) fetchChunk(ctx context.Context, chunk string, idx, total int, w io.Writer) error {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("q", chunk)
	query.Set("tl", p.language)
	query.Set("client", "tw-ob")
	query.Set("idx", strconv.Itoa(idx))
	query.Set("total", strconv.Itoa(total))
	query.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch google tts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		p.log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from google tts")
		return fmt.Errorf("unsuccessful API response %v", resp.StatusCode)
	}

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if written == 0 {
		return fmt.Errorf("no audio data received from google tts")
	}
	return nil
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// IsAvailable always succeeds, the endpoint needs no credentials
func (p *GoogleProvider) IsAvailable() error {
	return nil
}

// splitText breaks text into chunks of at most max runes at word
// boundaries. Words longer than max are cut.
func splitText(text string, max int) []string {
	var chunks []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)

		for len(runes) > max {
			flush()
			chunks = append(chunks, string(runes[:max]))
			runes = runes[max:]
		}

		if len(current) > 0 && len(current)+1+len(runes) > max {
			flush()
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, runes...)
	}
	flush()

	return chunks
}
