package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/de/"

var ErrNotFound = errors.New("word not found")

// Glosser returns a short explanation for a single word
type Glosser interface {
	Gloss(ctx context.Context, word string) (string, error)
}

// Client implements integration with DictionaryAPI
// docs: https://dictionaryapi.dev/
type Client struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient creates a Client. A nil httpClient means http.DefaultClient.
func NewClient(httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		client:  httpClient,
		baseURL: defaultBaseURL,
		log:     logger.With().Str("component", "dictionary").Logger(),
	}
}

// Lookup fetches all entries for word. Unknown words return ErrNotFound.
func (c *Client) Lookup(ctx context.Context, word string) ([]Entry, error) {
	reqURL := c.baseURL + url.PathEscape(strings.ToLower(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionaryapi.dev: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		c.log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from dictionaryapi")
		return nil, fmt.Errorf("unsuccessful API response %v", resp.StatusCode)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return entries, nil
}

// Gloss looks up word and formats the result with Gloss. Unknown words
// yield an empty string and no error.
func (c *Client) Gloss(ctx context.Context, word string) (string, error) {
	entries, err := c.Lookup(ctx, word)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return Gloss(entries), nil
}
