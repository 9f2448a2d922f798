package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent. The game has four directional
// buttons plus select and back; what they mean depends on the screen.
type Action int

const (
	ActionNone Action = iota

	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionBack

	// Meta
	ActionQuit
	ActionMapDump    // Copy the current mission map to the clipboard (F9)
	ActionScreenshot // Save the current scene as a PNG (F12)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer drops repeats of the same code arriving faster than Interval.
// Terminals deliver auto-repeat as a burst of identical sequences; Ebiten
// reports held keys once per frame.
type Debouncer struct {
	Interval time.Duration

	last     string
	lastTime time.Time
}

// Accept converts a raw event to a debounced one. It reports false for
// events swallowed as repeats.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	if raw.Code == d.last && raw.Timestamp.Sub(d.lastTime) < d.Interval {
		return DebouncedInput{}, false
	}
	d.last, d.lastTime = raw.Code, raw.Timestamp
	return NewDebouncedInput(raw), true
}

// NewDebouncedInput converts a raw event to a debounced event without any
// repeat filtering.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Directions (arrows, WASD, Vim)
	"arrow_up":    ActionUp,
	"w":           ActionUp,
	"k":           ActionUp,
	"arrow_down":  ActionDown,
	"s":           ActionDown,
	"j":           ActionDown,
	"arrow_left":  ActionLeft,
	"a":           ActionLeft,
	"h":           ActionLeft,
	"arrow_right": ActionRight,
	"d":           ActionRight,
	"l":           ActionRight,

	// Select fires during a mission and confirms in menus
	"space": ActionSelect,
	"enter": ActionSelect,
	"f":     ActionSelect,

	"escape":    ActionBack,
	"backspace": ActionBack,

	"q":      ActionQuit,
	"ctrl_c": ActionQuit,

	"f9":  ActionMapDump,
	"f12": ActionScreenshot,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionUp,
	"gamepad_dpad_down":  ActionDown,
	"gamepad_dpad_left":  ActionLeft,
	"gamepad_dpad_right": ActionRight,
	"gamepad_a":          ActionSelect, // A button / Cross
	"gamepad_b":          ActionBack,   // B button / Circle
	"gamepad_start":      ActionBack,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionMapDump:
		return "Map Dump"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
