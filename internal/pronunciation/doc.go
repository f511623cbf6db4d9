// Package pronunciation combines spelling based pronunciation tips, cached
// speech synthesis and audio playback for German words and sentences.
package pronunciation
