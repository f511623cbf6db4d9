// Package dictionary looks up German words on dictionaryapi.dev and turns
// the first entry into a one-line gloss. Glosses can be memoized in an
// optional sqlite database.
package dictionary
