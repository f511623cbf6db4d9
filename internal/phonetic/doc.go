// Package phonetic explains how German text is pronounced.
//
// Tips lists the pronunciation difficulties found in a text from a fixed
// table of spellings. Fetcher optionally asks an OpenAI model for a full
// IPA transcription with a symbol by symbol explanation for Chinese
// speakers.
package phonetic
