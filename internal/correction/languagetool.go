package correction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultLanguageToolURL = "https://api.languagetool.org"
	languageToolLanguage   = "de-DE"
)

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string `json:"message"`
	ShortMessage string `json:"shortMessage"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Context struct {
		Text   string `json:"text"`
		Offset int    `json:"offset"`
		Length int    `json:"length"`
	} `json:"context"`
	Rule struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		IssueType   string `json:"issueType"`
		Category    struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"category"`
	} `json:"rule"`
}

// LanguageTool implements integration with the LanguageTool HTTP API
// docs: https://languagetool.org/http-api/
type LanguageTool struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewLanguageTool creates a checker for the server at baseURL, e.g. the
// public API or a local "java -jar languagetool-server.jar". Empty baseURL
// selects the public API.
func NewLanguageTool(client *http.Client, baseURL string, logger zerolog.Logger) *LanguageTool {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultLanguageToolURL
	}
	return &LanguageTool{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger.With().Str("component", "languagetool").Logger(),
	}
}

// Available asks the server for its language list
func (lt *LanguageTool) Available(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lt.baseURL+"/v2/languages", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := lt.client.Do(req)
	if err != nil {
		return fmt.Errorf("reach languagetool: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unsuccessful API response %v", resp.StatusCode)
	}
	return nil
}

// Check sends text to /v2/check and returns the reported matches
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]Match, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", languageToolLanguage)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, lt.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch languagetool: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		lt.log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from languagetool")
		return nil, fmt.Errorf("unsuccessful API response %v", resp.StatusCode)
	}

	var parsed ltResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	matches := make([]Match, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		replacements := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			replacements = append(replacements, r.Value)
		}
		matches = append(matches, Match{
			Message:      m.Message,
			Context:      m.Context.Text,
			Offset:       m.Offset,
			Length:       m.Length,
			Category:     m.Rule.Category.ID,
			RuleID:       m.Rule.ID,
			Replacements: replacements,
		})
	}
	return matches, nil
}
