package player

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Strategy plays a single audio file
type Strategy interface {
	Name() string
	Supports(file string) bool
	Play(ctx context.Context, file string) error
}

// LookPathFunc resolves a command name, exec.LookPath in production
type LookPathFunc func(file string) (string, error)

// CommandStrategy plays files by running an external player
type CommandStrategy struct {
	command    string
	args       []string
	extensions []string // empty means any file type
}

// NewCommandStrategy creates a strategy that runs command with args
// followed by the file name. Extensions limit which files it accepts.
func NewCommandStrategy(command string, args []string, extensions ...string) *CommandStrategy {
	return &CommandStrategy{
		command:    command,
		args:       args,
		extensions: extensions,
	}
}

// Name returns the command name
func (s *CommandStrategy) Name() string {
	return s.command
}

// Supports reports whether the player can handle the file type
func (s *CommandStrategy) Supports(file string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(file))
	for _, e := range s.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Play runs the player and waits for it to finish
func (s *CommandStrategy) Play(ctx context.Context, file string) error {
	cmd := exec.CommandContext(ctx, s.command, s.commandArgs(file)...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", s.command, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (s *CommandStrategy) commandArgs(file string) []string {
	return append(append([]string{}, s.args...), file)
}

// linuxPlayers in order of preference. aplay and paplay only understand
// uncompressed audio.
var linuxPlayers = []struct {
	command    string
	args       []string
	extensions []string
}{
	{"aplay", []string{"-q"}, []string{".wav"}},
	{"paplay", nil, []string{".wav"}},
	{"mplayer", []string{"-really-quiet"}, nil},
	{"mpg123", []string{"-q"}, nil},
	{"mpg321", []string{"-q"}, nil},
}

// DefaultStrategies returns the command line players for goos. On linux
// every installed player is returned in order of preference, so a file
// type the first one rejects still finds a player.
func DefaultStrategies(goos string, lookPath LookPathFunc) []Strategy {
	var strategies []Strategy

	switch goos {
	case "darwin":
		strategies = append(strategies, NewCommandStrategy("afplay", nil))
	case "windows":
		// start takes its first quoted argument as the window title, so a
		// path with spaces needs an empty title in front of it
		strategies = append(strategies, NewCommandStrategy("cmd", []string{"/c", "start", "", "/min"}))
	case "linux":
		for _, p := range linuxPlayers {
			if _, err := lookPath(p.command); err == nil {
				strategies = append(strategies, NewCommandStrategy(p.command, p.args, p.extensions...))
			}
		}
	}

	return strategies
}
