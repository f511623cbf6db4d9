// Package console implements the interactive menu: a small state machine
// reading lines from stdin and rendering each feature's results with
// colors and tables.
package console
