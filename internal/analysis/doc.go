// Package analysis explains the part of speech and morphology of every
// word in a German sentence.
//
// Tokenization, lemmatization and tagging are delegated to a Tagger; the
// default one calls the public UDPipe REST service and parses its CoNLL-U
// output. The Analyzer maps the Universal Dependencies tags it gets back to
// Chinese labels for learners.
package analysis
