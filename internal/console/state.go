package console

import "strings"

// State is a position in the menu state machine
type State int

const (
	MainMenu State = iota
	Translate
	Analyze
	Correct
	Pronounce
	Exit
)

var stateNames = map[State]string{
	MainMenu:  "main-menu",
	Translate: "translate",
	Analyze:   "analyze",
	Correct:   "correct",
	Pronounce: "pronounce",
	Exit:      "exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Step returns the state a main menu choice leads to. Anything other than
// "1" to "5" stays on the main menu.
func Step(choice string) State {
	switch strings.TrimSpace(choice) {
	case "1":
		return Translate
	case "2":
		return Analyze
	case "3":
		return Correct
	case "4":
		return Pronounce
	case "5":
		return Exit
	default:
		return MainMenu
	}
}

// isQuit reports whether a mode input asks to go back to the main menu
func isQuit(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "q")
}
