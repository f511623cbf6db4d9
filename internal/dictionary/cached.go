package dictionary

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Cache stores formatted glosses by lowercase word. ok is false on a miss.
type Cache interface {
	Get(word string) (gloss string, ok bool, err error)
	Put(word, gloss string) error
}

// Cached memoizes a Glosser. Empty glosses (unknown words) are cached as
// well; lookup errors are not.
type Cached struct {
	glosser Glosser
	cache   Cache
	log     zerolog.Logger
}

func NewCached(glosser Glosser, cache Cache, logger zerolog.Logger) *Cached {
	return &Cached{
		glosser: glosser,
		cache:   cache,
		log:     logger.With().Str("component", "dictionary-cache").Logger(),
	}
}

func (c *Cached) Gloss(ctx context.Context, word string) (string, error) {
	key := strings.ToLower(word)

	gloss, ok, err := c.cache.Get(key)
	if err != nil {
		c.log.Warn().Err(err).Str("word", key).Msg("cache read failed")
	} else if ok {
		return gloss, nil
	}

	gloss, err = c.glosser.Gloss(ctx, word)
	if err != nil {
		return "", err
	}

	if err := c.cache.Put(key, gloss); err != nil {
		c.log.Warn().Err(err).Str("word", key).Msg("cache write failed")
	}
	return gloss, nil
}
