package correction

import (
	"context"
	"sort"
	"unicode/utf16"

	"github.com/rs/zerolog"
)

// Full corrects text with a Checker and falls back to Limited when a
// check fails.
type Full struct {
	checker  Checker
	fallback *Limited
	log      zerolog.Logger
}

func NewFull(checker Checker, fallback *Limited, logger zerolog.Logger) *Full {
	if fallback == nil {
		fallback = NewLimited()
	}
	return &Full{
		checker:  checker,
		fallback: fallback,
		log:      logger.With().Str("component", "corrector").Logger(),
	}
}

func (f *Full) Limited() bool {
	return false
}

// Correct checks text and applies the first replacement of every match
func (f *Full) Correct(ctx context.Context, text string) Result {
	matches, err := f.checker.Check(ctx, text)
	if err != nil {
		f.log.Error().Err(err).Msg("grammar check failed")
		return f.fallback.Correct(ctx, text)
	}

	errs := make([]ErrorRecord, 0, len(matches))
	for _, m := range matches {
		replacements := m.Replacements
		if len(replacements) > MaxReplacements {
			replacements = replacements[:MaxReplacements]
		}
		errs = append(errs, ErrorRecord{
			Message:      m.Message,
			Context:      m.Context,
			Offset:       m.Offset,
			Length:       m.Length,
			Category:     m.Category,
			RuleID:       m.RuleID,
			Replacements: replacements,
		})
	}

	corrected := ApplyReplacements(text, matches)
	f.log.Debug().Int("matches", len(matches)).Msg("checked")

	return Result{
		Original:   text,
		Corrected:  corrected,
		HasChanges: corrected != text,
		Errors:     errs,
	}
}

// ApplyReplacements replaces every match with its first suggestion. Matches
// without suggestions, out of range or overlapping an earlier match are
// left alone.
func ApplyReplacements(text string, matches []Match) string {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	units := utf16.Encode([]rune(text))
	out := make([]uint16, 0, len(units))
	pos := 0

	for _, m := range sorted {
		if len(m.Replacements) == 0 || m.Offset < pos || m.Length < 0 || m.Offset+m.Length > len(units) {
			continue
		}
		out = append(out, units[pos:m.Offset]...)
		out = append(out, utf16.Encode([]rune(m.Replacements[0]))...)
		pos = m.Offset + m.Length
	}
	out = append(out, units[pos:]...)

	return string(utf16.Decode(out))
}
