package fb

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// runeActions maps lower-case letters to actions. The upper-case form of a
// direction letter also asserts fast.
var runeActions = map[rune]core.Action{
	'i': core.ActionUp,
	'k': core.ActionDown,
	'j': core.ActionLeft,
	'l': core.ActionRight,
	'w': core.ActionUp,
	's': core.ActionDown,
	'a': core.ActionLeft,
	'd': core.ActionRight,
	'p': core.ActionPause,
	'r': core.ActionRestart,
}

var arrowActions = map[tcell.Key]core.Action{
	tcell.KeyUp:    core.ActionUp,
	tcell.KeyDown:  core.ActionDown,
	tcell.KeyLeft:  core.ActionLeft,
	tcell.KeyRight: core.ActionRight,
}

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) (action core.Action, fast, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, false, true
	case tcell.KeyEscape:
		return core.ActionPause, false, false
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	}

	if a, ok := arrowActions[ev.Key()]; ok {
		return a, ev.Modifiers()&tcell.ModShift != 0, false
	}
	return core.ActionNone, false, false
}

func mapRune(r rune) (action core.Action, fast, quit bool) {
	if r == 'q' || r == 'Q' {
		return core.ActionQuit, false, true
	}
	if r >= '1' && r <= '9' {
		return core.SpeedAction(int(r - '0')), false, false
	}

	a, ok := runeActions[unicode.ToLower(r)]
	if !ok {
		return core.ActionNone, false, false
	}
	return a, unicode.IsUpper(r) && a.IsDirection(), false
}
