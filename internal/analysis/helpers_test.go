package analysis

import (
	"context"
	"strings"
)

func conlluRow(cols ...string) string {
	return strings.Join(cols, "\t")
}

// perfektDoc is UDPipe output for "Ich habe das Buch gelesen."
var perfektDoc = strings.Join([]string{
	"# newdoc",
	"# newpar",
	"# sent_id = 1",
	"# text = Ich habe das Buch gelesen.",
	conlluRow("1", "Ich", "ich", "PRON", "PPER", "Case=Nom|Number=Sing|Person=1|PronType=Prs", "5", "nsubj", "_", "_"),
	conlluRow("2", "habe", "haben", "AUX", "VAFIN", "Mood=Ind|Number=Sing|Person=1|Tense=Pres|VerbForm=Fin", "5", "aux", "_", "_"),
	conlluRow("3", "das", "der", "DET", "ART", "Case=Acc|Definite=Def|Gender=Neut|Number=Sing|PronType=Art", "4", "det", "_", "_"),
	conlluRow("4", "Buch", "Buch", "NOUN", "NN", "Case=Acc|Gender=Neut|Number=Sing", "5", "obj", "_", "_"),
	conlluRow("5", "gelesen", "lesen", "VERB", "VVPP", "VerbForm=Part", "0", "root", "_", "SpaceAfter=No"),
	conlluRow("6", ".", ".", "PUNCT", "$.", "_", "5", "punct", "_", "SpacesAfter=\\n"),
	"",
}, "\n")

type fakeTagger struct {
	tokens []Token
	err    error
	calls  []string
}

func (f *fakeTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	f.calls = append(f.calls, text)
	return f.tokens, f.err
}

func tok(text, lemma, pos, feats string) Token {
	return Token{Text: text, Lemma: lemma, POS: pos, Morph: ParseFeatures(feats)}
}
