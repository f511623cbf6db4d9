package translation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemoryService implements integration with the MyMemory translation API
// docs: https://mymemory.translated.net/doc/spec.php
type MyMemoryService struct {
	apiKey  string
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewMyMemoryService creates a MyMemory service. apiKey is optional and
// raises the daily quota when set.
func NewMyMemoryService(client *http.Client, apiKey string, logger zerolog.Logger) *MyMemoryService {
	if client == nil {
		client = http.DefaultClient
	}
	return &MyMemoryService{
		apiKey:  apiKey,
		client:  client,
		baseURL: myMemoryURL,
		log:     logger.With().Str("component", "mymemory").Logger(),
	}
}

// Name returns the service name
func (s *MyMemoryService) Name() string {
	return "mymemory"
}

// Translate translates text from one language to another
func (s *MyMemoryService) Translate(ctx context.Context, text, from, to string) (string, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", fmt.Sprintf("%s|%s", from, to))
	if s.apiKey != "" {
		query.Set("key", s.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch mymemory: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from mymemory translated API")
		return "", fmt.Errorf("unsuccessful API response %v", resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("invalid response from mymemory")
	}

	// MyMemory reports quota and language errors with HTTP 200
	if status := gjson.GetBytes(body, "responseStatus").Int(); status != 0 && status != http.StatusOK {
		details := gjson.GetBytes(body, "responseDetails").String()
		return "", fmt.Errorf("mymemory status %d: %s", status, details)
	}

	translated := strings.TrimSpace(gjson.GetBytes(body, "responseData.translatedText").String())
	if translated == "" {
		return "", ErrEmptyResult
	}
	return translated, nil
}
