package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const explanationSep = "，"

// TokenAnalysis is the learner facing analysis of one word
type TokenAnalysis struct {
	Word        string
	Lemma       string
	POS         string
	POSLabel    string
	Tag         string
	Dep         string
	Explanation string
	Error       string // set only on the single failure result
}

// DisplayPOS renders the tag with its Chinese label, e.g. "NOUN (名词)"
func (a TokenAnalysis) DisplayPOS() string {
	return fmt.Sprintf("%s (%s)", a.POS, a.POSLabel)
}

// Analyzer turns tagger output into TokenAnalysis values
type Analyzer struct {
	tagger Tagger
	log    zerolog.Logger
}

func NewAnalyzer(tagger Tagger, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		tagger: tagger,
		log:    logger.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze tags text and explains every token in input order. A tagger
// failure yields one result carrying the error message.
func (a *Analyzer) Analyze(ctx context.Context, text string) []TokenAnalysis {
	tokens, err := a.tagger.Tag(ctx, text)
	if err != nil {
		a.log.Error().Err(err).Msg("analysis failed")
		return []TokenAnalysis{{Word: text, Error: fmt.Sprintf("分析错误: %v", err)}}
	}

	results := make([]TokenAnalysis, 0, len(tokens))
	for _, tok := range tokens {
		results = append(results, TokenAnalysis{
			Word:        displayWord(tok),
			Lemma:       tok.Lemma,
			POS:         tok.POS,
			POSLabel:    POSLabel(tok.POS),
			Tag:         tok.Tag,
			Dep:         tok.Dep,
			Explanation: Explain(tok),
		})
	}

	tense := ClassifyTense(tokens)
	a.log.Debug().
		Int("tokens", len(tokens)).
		Str("tense", tense.String()).
		Msg("analyzed")

	return results
}

// displayWord shows a word split from a contraction as "zum (zu)"
func displayWord(tok Token) string {
	if tok.Surface == "" || tok.Surface == tok.Text {
		return tok.Text
	}
	return tok.Surface + " (" + tok.Text + ")"
}

// Explain builds the Chinese explanation for a token from its POS and
// morphology. POS without an explanation rule give "".
func Explain(tok Token) string {
	var parts []string

	switch tok.POS {
	case "NOUN":
		if gender := genderLabels[tok.Morph.Get("Gender")]; gender != "" {
			parts = append(parts, gender+"名词")
		}
		if c := caseLabels[tok.Morph.Get("Case")]; c != "" {
			parts = append(parts, c)
		}

	case "VERB":
		if tense := tenseLabels[tok.Morph.Get("Tense")]; tense != "" {
			parts = append(parts, tense)
		}
		person := personLabels[tok.Morph.Get("Person")]
		number := numberLabels[tok.Morph.Get("Number")]
		if person != "" && number != "" {
			parts = append(parts, person+number)
		}

	case "PRON":
		if c := caseLabels[tok.Morph.Get("Case")]; c != "" {
			parts = append(parts, c)
		}

	case "ADJ":
		if c := caseLabels[tok.Morph.Get("Case")]; c != "" {
			parts = append(parts, c)
		}
		// UD uses Cmp, older German models Comp
		switch {
		case tok.Morph.Has("Degree", "Cmp"), tok.Morph.Has("Degree", "Comp"):
			parts = append(parts, "比较级")
		case tok.Morph.Has("Degree", "Sup"):
			parts = append(parts, "最高级")
		}
	}

	return strings.Join(parts, explanationSep)
}
