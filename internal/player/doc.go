// Package player plays audio files through the first strategy that can
// handle them: a platform command line player or, when none is installed,
// an in-process MP3 decoder.
package player
