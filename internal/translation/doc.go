// Package translation translates between German and Chinese.
//
// The Translator picks the direction from the script of the input and
// delegates the actual work to a Service: the public Google Translate
// endpoint, MyMemory, OpenAI chat completions or Gemini. Services are
// wrapped in a circuit breaker so a dead upstream fails fast.
//
// Short German inputs additionally get a per-word dictionary gloss through
// a Glosser.
package translation
