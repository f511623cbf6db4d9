package dictionary

import "strings"

const (
	maxMeanings    = 2
	maxDefinitions = 2
)

// Gloss formats the first entry as "<pos>: <def1>; <def2>" per meaning,
// joining at most two meanings with " | ". Meanings without a part of
// speech or definitions are skipped.
func Gloss(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var parts []string
	for _, meaning := range entries[0].Meanings {
		if meaning.PartOfSpeech == "" || len(meaning.Definitions) == 0 {
			continue
		}

		var defs []string
		for _, d := range meaning.Definitions {
			if len(defs) == maxDefinitions {
				break
			}
			defs = append(defs, d.Definition)
		}
		parts = append(parts, meaning.PartOfSpeech+": "+strings.Join(defs, "; "))
	}

	if len(parts) > maxMeanings {
		parts = parts[:maxMeanings]
	}
	return strings.Join(parts, " | ")
}
