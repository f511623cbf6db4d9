// Package correction checks German spelling and grammar.
//
// At startup Probe asks the LanguageTool server whether it is reachable and
// returns either the Full corrector, which applies LanguageTool's
// suggestions, or the Limited one, which only lists low confidence hints
// from a small fixed table and never changes the text.
package correction
