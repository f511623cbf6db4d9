package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jerrypanguo/Deutsch-Learning/internal"
)

// MaxGlossWords is the longest input that still gets a per-word gloss
const MaxGlossWords = 5

// ErrEmptyResult is returned by services that answered without any text
var ErrEmptyResult = errors.New("empty translation result")

// Direction is a source/target language pair
type Direction struct {
	From string
	To   string
}

var (
	GermanToChinese = Direction{From: "de", To: "zh-CN"}
	ChineseToGerman = Direction{From: "zh-CN", To: "de"}
)

func (d Direction) String() string {
	return d.From + "→" + d.To
}

// DetectDirection chooses the language pair by script: any non-ASCII rune
// means Chinese input.
func DetectDirection(text string) Direction {
	if internal.IsASCII(text) {
		return GermanToChinese
	}
	return ChineseToGerman
}

// Service is a translation backend
type Service interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
	Name() string
}

// Glosser returns a short dictionary explanation for a single German word.
// An empty string with a nil error means the word is unknown.
type Glosser interface {
	Gloss(ctx context.Context, word string) (string, error)
}

// Result is a translation with an optional per-word gloss block
type Result struct {
	Input       string
	Translated  string
	Explanation string // "word: gloss" lines, empty when not applicable
	Direction   Direction
}

// Translator translates user input and never fails: service errors become
// a visible message.
type Translator struct {
	service Service
	glosser Glosser
	log     zerolog.Logger
}

// NewTranslator creates a new translator. glosser may be nil.
func NewTranslator(service Service, glosser Glosser, logger zerolog.Logger) *Translator {
	return &Translator{
		service: service,
		glosser: glosser,
		log:     logger.With().Str("component", "translator").Logger(),
	}
}

// Translate translates text in the direction chosen by DetectDirection
func (t *Translator) Translate(ctx context.Context, text string) string {
	dir := DetectDirection(text)

	translated, err := t.service.Translate(ctx, text, dir.From, dir.To)
	if err != nil {
		t.log.Error().Err(err).
			Str("service", t.service.Name()).
			Str("direction", dir.String()).
			Msg("translation failed")
		return fmt.Sprintf("翻译错误: %v", err)
	}

	t.log.Debug().
		Str("service", t.service.Name()).
		Str("direction", dir.String()).
		Int("chars", len([]rune(text))).
		Msg("translated")
	return translated
}

// TranslateWithExplanation translates text and, for German input of at
// most MaxGlossWords words, appends a dictionary gloss for every word.
func (t *Translator) TranslateWithExplanation(ctx context.Context, text string) Result {
	dir := DetectDirection(text)
	result := Result{
		Input:      text,
		Translated: t.Translate(ctx, text),
		Direction:  dir,
	}

	if t.glosser == nil || dir != GermanToChinese {
		return result
	}

	words := strings.Fields(text)
	if len(words) > MaxGlossWords {
		return result
	}

	var lines []string
	for _, word := range words {
		gloss, err := t.glosser.Gloss(ctx, word)
		if err != nil {
			t.log.Warn().Err(err).Str("word", word).Msg("failed to look up word")
			continue
		}
		if gloss == "" {
			continue
		}
		lines = append(lines, word+": "+gloss)
	}
	result.Explanation = strings.TrimSpace(strings.Join(lines, "\n"))

	return result
}
