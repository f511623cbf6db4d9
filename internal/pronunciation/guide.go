package pronunciation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jerrypanguo/Deutsch-Learning/internal/phonetic"
)

// AudioCache returns a file holding the spoken text
type AudioCache interface {
	Ensure(ctx context.Context, text string) (string, error)
}

// Player plays an audio file and reports success
type Player interface {
	Play(ctx context.Context, file string) bool
}

// IPAFetcher returns an IPA breakdown of text
type IPAFetcher interface {
	Fetch(ctx context.Context, text string) (string, error)
}

// Result is the pronunciation guidance for one input
type Result struct {
	Text      string
	AudioFile string // empty when synthesis failed
	Tips      []string
	IPA       string // empty unless an IPA fetcher is configured
}

// HasAudio reports whether an audio file was produced
func (r Result) HasAudio() bool {
	return r.AudioFile != ""
}

// Guide produces pronunciation guidance
type Guide struct {
	cache  AudioCache
	player Player
	ipa    IPAFetcher
	log    zerolog.Logger
}

// Option configures a Guide
type Option func(*Guide)

// WithIPA adds an IPA breakdown to every result
func WithIPA(fetcher IPAFetcher) Option {
	return func(g *Guide) {
		g.ipa = fetcher
	}
}

// NewGuide creates a guide. A nil player disables playback.
func NewGuide(cache AudioCache, player Player, logger zerolog.Logger, opts ...Option) *Guide {
	g := &Guide{
		cache:  cache,
		player: player,
		log:    logger.With().Str("component", "pronunciation").Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GetPronunciation returns the tips for text and the audio file speaking
// it. Failures are logged and leave the corresponding field empty.
func (g *Guide) GetPronunciation(ctx context.Context, text string) Result {
	result := Result{
		Text: text,
		Tips: phonetic.Tips(text),
	}

	if g.cache != nil {
		file, err := g.cache.Ensure(ctx, text)
		if err != nil {
			g.log.Error().Err(err).Str("text", text).Msg("failed to generate audio")
		} else {
			result.AudioFile = file
		}
	}

	if g.ipa != nil {
		ipa, err := g.ipa.Fetch(ctx, text)
		if err != nil {
			g.log.Warn().Err(err).Str("text", text).Msg("failed to fetch IPA")
		} else {
			result.IPA = ipa
		}
	}

	return result
}

// Play plays file and reports whether playback succeeded
func (g *Guide) Play(ctx context.Context, file string) bool {
	if g.player == nil {
		g.log.Debug().Str("file", file).Msg("playback disabled")
		return false
	}
	if file == "" {
		return false
	}
	return g.player.Play(ctx, file)
}

// PlaybackEnabled reports whether the guide has a player
func (g *Guide) PlaybackEnabled() bool {
	return g.player != nil
}
