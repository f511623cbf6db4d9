package analysis

import "context"

// Token is one tagged word
type Token struct {
	Text  string
	Lemma string
	POS   string // Universal POS tag (UPOS)
	Tag   string // language specific tag (STTS for German)
	Dep   string // dependency relation
	Morph Features

	// Surface is the written contraction the word was split from, e.g.
	// "zum" for both "zu" and "dem". Empty for ordinary words.
	Surface string
}

// Tagger tokenizes and tags German text
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}
