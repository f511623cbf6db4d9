package analysis

// Tense is the tense of a whole sentence
type Tense int

const (
	Praesens Tense = iota
	Perfekt
	Plusquamperfekt
	Praeteritum
	Futur
)

var tenseNames = map[Tense]string{
	Praesens:        "Präsens",
	Perfekt:         "Perfekt",
	Plusquamperfekt: "Plusquamperfekt",
	Praeteritum:     "Präteritum",
	Futur:           "Futur",
}

var tenseChinese = map[Tense]string{
	Praesens:        "现在时",
	Perfekt:         "现在完成时",
	Plusquamperfekt: "过去完成时",
	Praeteritum:     "过去时",
	Futur:           "将来时",
}

// String returns the German name of the tense
func (t Tense) String() string {
	if name, ok := tenseNames[t]; ok {
		return name
	}
	return "unknown"
}

// Label returns the Chinese label followed by the German name,
// e.g. "现在完成时 (Perfekt)"
func (t Tense) Label() string {
	return tenseChinese[t] + " (" + t.String() + ")"
}

// ClassifyTense guesses the sentence tense from its tokens. The first
// matching rule wins:
//
//	AUX present + VERB participle  Perfekt
//	AUX + VERB participle + past   Plusquamperfekt
//	any past AUX or VERB           Präteritum
//	lemma "werden" + any VERB      Futur
//	otherwise                      Präsens
func ClassifyTense(tokens []Token) Tense {
	var hasAux, hasParticiple, hasPresent, hasPast, hasVerb, hasWerden bool

	for _, tok := range tokens {
		switch tok.POS {
		case "AUX":
			hasAux = true
			if tok.Morph.Has("Tense", "Past") {
				hasPast = true
			} else if tok.Morph.Has("Tense", "Pres") {
				hasPresent = true
			}
		case "VERB":
			hasVerb = true
			if tok.Morph.Has("VerbForm", "Part") {
				hasParticiple = true
			}
			if tok.Morph.Has("Tense", "Past") {
				hasPast = true
			}
		}
		if tok.Lemma == "werden" {
			hasWerden = true
		}
	}

	switch {
	case hasAux && hasParticiple && hasPresent:
		return Perfekt
	case hasAux && hasParticiple && hasPast:
		return Plusquamperfekt
	case hasPast:
		return Praeteritum
	case hasWerden && hasVerb:
		return Futur
	default:
		return Praesens
	}
}
