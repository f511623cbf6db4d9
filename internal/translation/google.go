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

const googleTranslateURL = "https://translate.googleapis.com/translate_a/single"

// GoogleService talks to the public Google Translate web endpoint
// (client=gtx). The response is an untyped nested array:
// [[["translated","source",...],...],null,"de",...]
type GoogleService struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewGoogleService creates a Google Translate service. A nil client means
// http.DefaultClient.
func NewGoogleService(client *http.Client, logger zerolog.Logger) *GoogleService {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleService{
		client:  client,
		baseURL: googleTranslateURL,
		log:     logger.With().Str("component", "google-translate").Logger(),
	}
}

// Name returns the service name
func (s *GoogleService) Name() string {
	return "google"
}

// Translate translates text from one language to another
func (s *GoogleService) Translate(ctx context.Context, text, from, to string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", from)
	query.Set("tl", to)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch google translate: %w", err)
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
			Msg("unsuccessful response from google translate")
		return "", fmt.Errorf("unsuccessful API response %v", resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("invalid response from google translate")
	}

	var sb strings.Builder
	gjson.GetBytes(body, "0").ForEach(func(_, segment gjson.Result) bool {
		sb.WriteString(segment.Get("0").String())
		return true
	})

	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", ErrEmptyResult
	}
	return translated, nil
}
