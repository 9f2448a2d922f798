package gameplay

import (
	engineinput "spacemerc/pkg/engine/input"
	"spacemerc/pkg/game/state"
)

// ProcessIntent applies an in-mission intent: up and down walk, left and
// right turn, select fires. It reports whether the view changed.
func ProcessIntent(s *state.Session, intent engineinput.Intent) bool {
	if !active(s) {
		return false
	}

	switch intent.Action {
	case engineinput.ActionUp:
		MoveForward(s)
	case engineinput.ActionDown:
		MoveBack(s)
	case engineinput.ActionLeft:
		TurnPlayerLeft(s)
	case engineinput.ActionRight:
		TurnPlayerRight(s)
	case engineinput.ActionSelect:
		return FireWeapon(s)
	default:
		return false
	}
	return true
}
