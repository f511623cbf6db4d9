package analysis

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
	defaultUDPipeURL   = "https://lindat.mff.cuni.cz/services/udpipe/api/process"
	defaultUDPipeModel = "german"
)

type udpipeResponse struct {
	Model  string `json:"model"`
	Result string `json:"result"`
}

// UDPipeTagger tags text with the UDPipe 2 REST service
// docs: https://lindat.mff.cuni.cz/services/udpipe/api-reference.php
type UDPipeTagger struct {
	client  *http.Client
	baseURL string
	model   string
	log     zerolog.Logger
}

// NewUDPipeTagger creates a tagger. Empty model selects the default German
// model, nil client http.DefaultClient.
func NewUDPipeTagger(client *http.Client, model string, logger zerolog.Logger) *UDPipeTagger {
	if client == nil {
		client = http.DefaultClient
	}
	if model == "" {
		model = defaultUDPipeModel
	}
	return &UDPipeTagger{
		client:  client,
		baseURL: defaultUDPipeURL,
		model:   model,
		log:     logger.With().Str("component", "udpipe").Logger(),
	}
}

// Tag runs tokenizer, tagger and parser on text
func (u *UDPipeTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	form := url.Values{}
	form.Set("model", u.model)
	form.Set("tokenizer", "")
	form.Set("tagger", "")
	form.Set("parser", "")
	form.Set("data", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch udpipe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		u.log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from udpipe")
		return nil, fmt.Errorf("unsuccessful API response %v", resp.StatusCode)
	}

	var parsed udpipeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	u.log.Debug().Str("model", parsed.Model).Msg("tagged")
	return ParseCoNLLU(parsed.Result)
}
