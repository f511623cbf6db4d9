package player

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

// Player tries its strategies in order until one plays the file
type Player struct {
	strategies []Strategy
	log        zerolog.Logger
}

// New creates a player with the given strategies
func New(strategies []Strategy, logger zerolog.Logger) *Player {
	return &Player{
		strategies: strategies,
		log:        logger.With().Str("component", "player").Logger(),
	}
}

// NewDefault creates a player with the installed command line players of
// the current platform followed by the MP3 decoder
func NewDefault(logger zerolog.Logger) *Player {
	strategies := DefaultStrategies(runtime.GOOS, exec.LookPath)
	strategies = append(strategies, NewDecoderStrategy())

	p := New(strategies, logger)
	p.log.Debug().Strs("strategies", p.Strategies()).Msg("playback strategies")
	return p
}

// Strategies returns the strategy names in the order they are tried
func (p *Player) Strategies() []string {
	names := make([]string, 0, len(p.strategies))
	for _, s := range p.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Play plays file and reports whether any strategy succeeded
func (p *Player) Play(ctx context.Context, file string) bool {
	if _, err := os.Stat(file); err != nil {
		p.log.Error().Err(err).Str("file", file).Msg("audio file not found")
		return false
	}

	for _, s := range p.strategies {
		if !s.Supports(file) {
			continue
		}

		if err := s.Play(ctx, file); err != nil {
			p.log.Warn().Err(err).Str("strategy", s.Name()).Str("file", file).Msg("playback failed")
			if ctx.Err() != nil {
				return false
			}
			continue
		}

		p.log.Info().Str("strategy", s.Name()).Str("file", file).Msg("played audio")
		return true
	}

	p.log.Error().Str("file", file).Msg("no playback strategy could play the file")
	return false
}
