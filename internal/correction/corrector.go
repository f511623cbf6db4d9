package correction

import (
	"context"

	"github.com/rs/zerolog"
)

// MaxReplacements is the number of suggestions kept per error
const MaxReplacements = 3

// ErrorRecord describes one detected problem
type ErrorRecord struct {
	Message      string
	Context      string
	Offset       int
	Length       int
	Category     string
	RuleID       string
	Replacements []string
}

// Result is the outcome of checking one text. In limited mode Corrected
// always equals Original.
type Result struct {
	Original    string
	Corrected   string
	HasChanges  bool
	Errors      []ErrorRecord
	LimitedMode bool
}

// Corrector checks a text and never fails
type Corrector interface {
	Correct(ctx context.Context, text string) Result
	Limited() bool
}

// Match is a problem reported by a Checker. Offset and Length count UTF-16
// code units, as LanguageTool does.
type Match struct {
	Message      string
	Context      string
	Offset       int
	Length       int
	Category     string
	RuleID       string
	Replacements []string
}

// Checker is a grammar checking backend
type Checker interface {
	Check(ctx context.Context, text string) ([]Match, error)
	Available(ctx context.Context) error
}

// Probe picks the corrector for the lifetime of the process. A nil checker
// or one that does not answer gives the Limited corrector.
func Probe(ctx context.Context, checker Checker, logger zerolog.Logger) Corrector {
	log := logger.With().Str("component", "corrector").Logger()
	limited := NewLimited()

	if checker == nil {
		log.Info().Msg("grammar checker disabled, using limited mode")
		return limited
	}

	if err := checker.Available(ctx); err != nil {
		log.Warn().Err(err).Msg("grammar checker unavailable, using limited mode")
		return limited
	}

	log.Info().Msg("grammar checker available")
	return NewFull(checker, limited, logger)
}
