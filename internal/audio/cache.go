package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jerrypanguo/Deutsch-Learning/internal"
)

// Cache stores synthesized audio by content hash. The same text always
// maps to the same file, files are never evicted.
type Cache struct {
	dir      string
	provider Provider
	log      zerolog.Logger
}

// NewCache creates the cache directory and returns a cache that
// synthesizes misses with provider
func NewCache(dir string, provider Provider, logger zerolog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audio cache directory: %w", err)
	}
	return &Cache{
		dir:      dir,
		provider: provider,
		log:      logger.With().Str("component", "audio-cache").Logger(),
	}, nil
}

// DefaultDir returns the per-user audio cache directory
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "deutsch", "audio")
}

// Dir returns the cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// PathFor returns the file that holds the audio for text
func (c *Cache) PathFor(text string) string {
	return filepath.Join(c.dir, "pronunciation_"+internal.ContentHash(text)+".mp3")
}

// Ensure returns the audio file for text, synthesizing it only when the
// file does not exist yet
func (c *Cache) Ensure(ctx context.Context, text string) (string, error) {
	path := c.PathFor(text)

	if _, err := os.Stat(path); err == nil {
		c.log.Debug().Str("file", path).Msg("audio cache hit")
		return path, nil
	}

	if err := c.provider.GenerateAudio(ctx, text, path); err != nil {
		// Never leave a partial file behind, it would be served as a hit
		os.Remove(path)
		return "", fmt.Errorf("%s: %w", c.provider.Name(), err)
	}

	c.log.Info().Str("file", path).Str("provider", c.provider.Name()).Msg("generated audio file")
	return path, nil
}
